// pkg/pkgmgr/version_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test version token extraction and minimum-version comparison

package pkgmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"Python 3.12.4", "3.12.4"},
		{"git version 2.45.1.windows.1", "2.45.1"},
		{"v1.2", "1.2"},
		{"no version here", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractVersion(tt.output), "output %q", tt.output)
	}
}

func TestMinVersionSatisfied(t *testing.T) {
	tests := []struct {
		installed string
		min       string
		want      bool
	}{
		{"3.12.4", "3.10", true},
		{"3.12.4", "3.12.4", true},
		{"3.9.1", "3.10", false},
		{"v2.45.1", "2.40", true},
		{"garbage", "1.0", false},
		{"1.0", "garbage", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MinVersionSatisfied(tt.installed, tt.min),
			"installed=%q min=%q", tt.installed, tt.min)
	}
}
