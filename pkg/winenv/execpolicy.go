package winenv

import (
	"os/exec"
	"strings"

	"github.com/dotMeeko/dotfiles/pkg/errors"
	"github.com/dotMeeko/dotfiles/pkg/logging"
)

// execCommand is abstracted for testing
var execCommand = exec.Command

const powershellExe = "powershell"

// EnsureExecutionPolicy sets the CurrentUser PowerShell execution
// policy to want, querying first and writing only on a mismatch.
func EnsureExecutionPolicy(want string) StepResult {
	logger := logging.GetLogger("winenv")
	result := StepResult{Name: "Execution policy"}

	out, err := execCommand(powershellExe,
		"-NoProfile", "-NonInteractive", "-Command",
		"Get-ExecutionPolicy -Scope CurrentUser",
	).CombinedOutput()
	if err != nil {
		result.Err = errors.Wrapf(err, errors.ErrPolicyQuery, "querying execution policy: %s", strings.TrimSpace(string(out)))
		return result
	}

	current := strings.TrimSpace(string(out))
	if strings.EqualFold(current, want) {
		logger.Debug().Str("policy", current).Msg("Execution policy already current")
		result.Detail = "already " + current
		return result
	}

	out, err = execCommand(powershellExe,
		"-NoProfile", "-NonInteractive", "-Command",
		"Set-ExecutionPolicy -Scope CurrentUser -ExecutionPolicy "+want+" -Force",
	).CombinedOutput()
	if err != nil {
		result.Err = errors.Wrapf(err, errors.ErrPolicySet, "setting execution policy to %s: %s", want, strings.TrimSpace(string(out)))
		return result
	}

	logger.Info().Str("from", current).Str("to", want).Msg("Execution policy updated")

	result.Changed = true
	result.Detail = current + " -> " + want
	return result
}
