package pkgmgr

import (
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

var versionToken = regexp.MustCompile(`\d+(\.\d+)+`)

// ExtractVersion pulls the first dotted version token out of tool
// output such as "Python 3.12.4" or "git version 2.45.1.windows.1".
// Returns the empty string when no token is present.
func ExtractVersion(output string) string {
	return versionToken.FindString(output)
}

// MinVersionSatisfied reports whether installed is at or above min.
// Either side failing to parse counts as not satisfied so callers
// surface the discrepancy instead of silently passing.
func MinVersionSatisfied(installed, min string) bool {
	vInstalled, err := goversion.NewVersion(normalize(installed))
	if err != nil {
		return false
	}
	vMin, err := goversion.NewVersion(normalize(min))
	if err != nil {
		return false
	}
	return vInstalled.GreaterThanOrEqual(vMin)
}

func normalize(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}
