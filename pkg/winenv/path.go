package winenv

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/dotMeeko/dotfiles/pkg/errors"
	"github.com/dotMeeko/dotfiles/pkg/logging"
)

// Registry locations of the two persisted PATH scopes
const (
	MachineEnvKeyPath = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`
	UserEnvKeyPath    = `Environment`
)

// abstracted for testing
var (
	getenv = os.Getenv
	setenv = os.Setenv
)

// MergePath rebuilds a PATH string from the machine and user scopes:
// machine entries first, then user entries, duplicates removed with a
// case-insensitive comparison (Windows path semantics), first-seen
// order preserved. Empty entries are dropped.
func MergePath(machine, user string) string {
	var merged []string
	seen := make(map[string]bool)

	for _, scope := range []string{machine, user} {
		for _, entry := range strings.Split(scope, ";") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			key := strings.ToLower(strings.TrimRight(entry, `\`))
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, entry)
		}
	}

	return strings.Join(merged, ";")
}

// RefreshPath reconstructs the process PATH from the persisted machine
// and user scopes so tools installed earlier in the run become
// invokable without a new shell. The write is guarded: nothing happens
// when the rebuilt value matches the current one.
func RefreshPath(reg Registry) StepResult {
	logger := logging.GetLogger("winenv")
	result := StepResult{Name: "PATH refresh"}

	machine, err := reg.GetString(LocalMachine, MachineEnvKeyPath, "Path")
	if err != nil {
		result.Err = errors.Wrap(err, errors.ErrRegistryRead, "reading machine PATH")
		return result
	}

	user, err := reg.GetString(CurrentUser, UserEnvKeyPath, "Path")
	if err != nil {
		// A user scope without a Path value is normal on fresh machines
		if !stderrors.Is(err, ErrValueNotFound) {
			result.Err = errors.Wrap(err, errors.ErrRegistryRead, "reading user PATH")
			return result
		}
		user = ""
	}

	merged := MergePath(machine, user)
	current := getenv("PATH")
	if merged == current {
		logger.Debug().Msg("PATH already current")
		result.Detail = "already current"
		return result
	}

	if err := setenv("PATH", merged); err != nil {
		result.Err = errors.Wrap(err, errors.ErrEnvWrite, "setting process PATH")
		return result
	}

	logger.Info().
		Int("entries", strings.Count(merged, ";")+1).
		Msg("Process PATH refreshed from persisted scopes")

	result.Changed = true
	result.Detail = "rebuilt from machine and user scopes"
	return result
}
