package bootstrap

import (
	"os/exec"
	"strings"
	"time"

	"github.com/dotMeeko/dotfiles/pkg/errors"
	"github.com/dotMeeko/dotfiles/pkg/logging"
	"github.com/dotMeeko/dotfiles/pkg/pkgmgr"
)

// Fixed-count poll for freshly installed interpreters: a tool that was
// just put on the PATH can take a moment to become queryable.
const (
	verifyAttempts = 5
	verifyDelay    = 2 * time.Second
)

// abstracted for testing
var (
	verifyExecCommand = exec.Command
	verifySleep       = time.Sleep
)

// ProbeResult is the outcome of one verification probe
type ProbeResult struct {
	Name    string
	OK      bool
	Version string
	Detail  string
	// Err is set when the probe never became queryable within the poll
	Err error
}

// verify runs every manifest probe, polling each up to verifyAttempts
// times. A probe passes when its command runs and, if the probe pins a
// minimum version, the reported version satisfies it.
func (s *Sequence) verify() []ProbeResult {
	logger := logging.GetLogger("bootstrap.verify")
	results := make([]ProbeResult, 0, len(s.Manifest.Verify))

	for _, probe := range s.Manifest.Verify {
		result := ProbeResult{Name: probe.Name}

		for attempt := 1; attempt <= verifyAttempts; attempt++ {
			out, err := verifyExecCommand(probe.Command, probe.Args...).CombinedOutput()
			if err != nil {
				logger.Debug().
					Str("probe", probe.Name).
					Int("attempt", attempt).
					Err(err).
					Msg("Probe not queryable yet")
				if attempt < verifyAttempts {
					verifySleep(verifyDelay)
				}
				result.Detail = strings.TrimSpace(string(out))
				if result.Detail == "" {
					result.Detail = err.Error()
				}
				if attempt == verifyAttempts {
					result.Err = errors.Newf(errors.ErrVerifyTimeout,
						"%s not queryable after %d attempts", probe.Name, verifyAttempts)
				}
				continue
			}

			result.Version = pkgmgr.ExtractVersion(string(out))
			if probe.MinVersion != "" && !pkgmgr.MinVersionSatisfied(result.Version, probe.MinVersion) {
				result.OK = false
				result.Detail = "version " + result.Version + " below required " + probe.MinVersion
				break
			}

			result.OK = true
			result.Detail = ""
			break
		}

		if result.OK {
			logger.Info().
				Str("probe", probe.Name).
				Str("version", result.Version).
				Msg("Probe verified")
		} else {
			logger.Warn().
				Str("probe", probe.Name).
				Str("detail", result.Detail).
				Msg("Probe failed verification")
		}

		results = append(results, result)
	}

	return results
}
