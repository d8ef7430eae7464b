package pkgmgr

import (
	stderrors "errors"
	"os/exec"
	"strings"
	"time"

	"github.com/dotMeeko/dotfiles/pkg/logging"
	"github.com/dotMeeko/dotfiles/pkg/types"
	"github.com/rs/zerolog"
)

// execCommand is abstracted for testing
var execCommand = exec.Command

// Runner invokes a package manager for one package at a time and
// classifies the captured output.
type Runner struct {
	logger zerolog.Logger
}

// NewRunner creates a runner with the default logger
func NewRunner() *Runner {
	return &Runner{logger: logging.GetLogger("pkgmgr")}
}

// Available reports whether the manager's executable is on PATH
func (r *Runner) Available(m Manager) bool {
	_, err := exec.LookPath(m.Executable)
	return err == nil
}

// Run executes a single install or upgrade and returns the classified
// result. Errors never escape: a failed spawn or non-success exit is
// reported as an OutcomeFailed result so the batch can continue.
func (r *Runner) Run(m Manager, req types.PackageRequest, mode types.InstallMode) types.PackageResult {
	start := time.Now()
	args := m.Args(req.ID, mode)

	r.logger.Debug().
		Str("manager", m.Name).
		Str("package", req.ID).
		Str("mode", mode.String()).
		Strs("args", args).
		Msg("Invoking package manager")

	cmd := execCommand(m.Executable, args...)
	out, err := cmd.CombinedOutput()
	output := string(out)
	exitCode := exitCodeFrom(err)

	result := types.PackageResult{
		Request:  req,
		Outcome:  Classify(exitCode, output, mode, m.Vocab),
		ExitCode: exitCode,
		Duration: time.Since(start),
	}

	// An "already installed" answer only satisfies the request when the
	// version the manager reports meets the manifest pin. Output without
	// a version token is taken at its word.
	if result.Outcome == types.OutcomeAlreadyCurrent && req.MinVersion != "" {
		if v := ExtractVersion(output); v != "" && !MinVersionSatisfied(v, req.MinVersion) {
			result.Outcome = types.OutcomeFailed
			result.Message = "installed version " + v + " below required " + req.MinVersion
		}
	}

	if result.Outcome == types.OutcomeFailed {
		if result.Message == "" {
			result.Message = failureMessage(output, err)
		}
		r.logger.Warn().
			Str("package", req.ID).
			Int("exit_code", exitCode).
			Str("message", result.Message).
			Msg("Package operation failed")
	} else {
		r.logger.Info().
			Str("package", req.ID).
			Str("outcome", result.Outcome.String()).
			Dur("duration", result.Duration).
			Msg("Package operation finished")
	}

	return result
}

// exitCodeFrom extracts the process exit code from a CombinedOutput
// error: 0 on success, the real code for ExitError, -1 when the
// process never ran.
func exitCodeFrom(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// failureMessage picks the most useful diagnostic line: the last
// non-empty output line, or the spawn error when there was no output.
func failureMessage(output string, err error) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
