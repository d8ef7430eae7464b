// pkg/logging/logging_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test logger setup, verbosity levels, and log file creation

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dotMeeko/dotfiles/pkg/paths"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv(paths.EnvStateDir, tempDir)

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "meeko.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv(paths.EnvStateDir, "/custom/state")

	want := filepath.Join("/custom/state", "meeko.log")
	if got := getLogFilePath(); got != want {
		t.Errorf("getLogFilePath() = %q, want %q", got, want)
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("pkgmgr")
	// make sure the component logger is usable without a prior
	// SetupLogger call
	logger.Debug().Msg("probe")
}
