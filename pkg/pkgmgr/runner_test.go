// pkg/pkgmgr/runner_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Helper process (re-executes the test binary)
// PURPOSE: Test process invocation, output capture, and result classification

package pkgmgr

import (
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/dotMeeko/dotfiles/pkg/types"
	"github.com/stretchr/testify/assert"
)

// fakeExecCommand re-executes the test binary so TestHelperProcess can
// stand in for the package manager, echoing canned output and exiting
// with a canned code.
func fakeExecCommand(output string, exitCode int) func(string, ...string) *exec.Cmd {
	return func(command string, args ...string) *exec.Cmd {
		cs := []string{"-test.run=TestHelperProcess", "--", command}
		cs = append(cs, args...)
		cmd := exec.Command(os.Args[0], cs...)
		cmd.Env = []string{
			"GO_WANT_HELPER_PROCESS=1",
			"HELPER_OUTPUT=" + output,
			fmt.Sprintf("HELPER_EXIT=%d", exitCode),
		}
		return cmd
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	fmt.Fprint(os.Stdout, os.Getenv("HELPER_OUTPUT"))
	code := 0
	fmt.Sscanf(os.Getenv("HELPER_EXIT"), "%d", &code)
	os.Exit(code)
}

func TestRunClassifiesCapturedOutput(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		exitCode int
		mode     types.InstallMode
		want     types.Outcome
		wantMsg  string
	}{
		{
			name:     "successful_install",
			output:   "Found Git [Git.Git]\nSuccessfully installed",
			exitCode: 0,
			mode:     types.ModeInstall,
			want:     types.OutcomeInstalled,
		},
		{
			name:     "already_installed_with_nonzero_exit",
			output:   "An existing package already installed",
			exitCode: 1,
			mode:     types.ModeInstall,
			want:     types.OutcomeAlreadyCurrent,
		},
		{
			name:     "installer_failure_keeps_last_line",
			output:   "Downloading...\nInstaller failed with exit code: 1603",
			exitCode: 1603,
			mode:     types.ModeInstall,
			want:     types.OutcomeFailed,
			wantMsg:  "Installer failed with exit code: 1603",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := execCommand
			execCommand = fakeExecCommand(tt.output, tt.exitCode)
			defer func() { execCommand = old }()

			r := NewRunner()
			result := r.Run(Winget(), types.PackageRequest{ID: "Git.Git", Name: "Git"}, tt.mode)

			assert.Equal(t, tt.want, result.Outcome)
			assert.Equal(t, tt.exitCode, result.ExitCode)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, result.Message)
			}
			assert.Equal(t, "Git", result.Request.DisplayName())
		})
	}
}

func TestRunMinVersionPin(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		min     string
		want    types.Outcome
		wantMsg string
	}{
		{
			name:    "reported_version_below_pin",
			output:  "git 2.40.1 already installed",
			min:     "2.45",
			want:    types.OutcomeFailed,
			wantMsg: "installed version 2.40.1 below required 2.45",
		},
		{
			name:   "reported_version_satisfies_pin",
			output: "git 2.46.0 already installed",
			min:    "2.45",
			want:   types.OutcomeAlreadyCurrent,
		},
		{
			name:   "no_version_in_output_trusts_manager",
			output: "git already installed",
			min:    "2.45",
			want:   types.OutcomeAlreadyCurrent,
		},
		{
			name:   "no_pin_skips_the_check",
			output: "git 2.40.1 already installed",
			want:   types.OutcomeAlreadyCurrent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := execCommand
			execCommand = fakeExecCommand(tt.output, 0)
			defer func() { execCommand = old }()

			r := NewRunner()
			result := r.Run(Winget(), types.PackageRequest{ID: "Git.Git", MinVersion: tt.min}, types.ModeInstall)

			assert.Equal(t, tt.want, result.Outcome)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, result.Message)
			}
		})
	}
}

func TestRunSpawnFailure(t *testing.T) {
	old := execCommand
	execCommand = func(command string, args ...string) *exec.Cmd {
		return exec.Command("/nonexistent/definitely-not-a-binary")
	}
	defer func() { execCommand = old }()

	r := NewRunner()
	result := r.Run(Winget(), types.PackageRequest{ID: "Git.Git"}, types.ModeInstall)

	assert.Equal(t, types.OutcomeFailed, result.Outcome)
	assert.Equal(t, -1, result.ExitCode)
	assert.NotEmpty(t, result.Message)
}

func TestAvailable(t *testing.T) {
	r := NewRunner()

	missing := Manager{Name: "missing", Executable: "definitely-not-a-binary-on-path"}
	assert.False(t, r.Available(missing))
}
