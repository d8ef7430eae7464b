package winenv

import (
	stderrors "errors"

	"github.com/dotMeeko/dotfiles/pkg/errors"
	"github.com/dotMeeko/dotfiles/pkg/logging"
)

// Developer Mode registry location. The value permits unprivileged
// creation of symbolic links, which dotbot needs for linking.
const (
	DevModeKeyPath   = `SOFTWARE\Microsoft\Windows\CurrentVersion\AppModelUnlock`
	DevModeValueName = "AllowDevelopmentWithoutDevLicense"
)

// DeveloperModeEnabled reads the current Developer Mode state without
// modifying it. A missing value counts as disabled.
func DeveloperModeEnabled(reg Registry) (bool, error) {
	current, err := reg.GetDWord(LocalMachine, DevModeKeyPath, DevModeValueName)
	if err != nil {
		if stderrors.Is(err, ErrValueNotFound) {
			return false, nil
		}
		return false, errors.Wrap(err, errors.ErrRegistryRead, "reading developer mode value")
	}
	return current == 1, nil
}

// EnsureDeveloperMode enables Windows Developer Mode via a guarded
// registry write: the value is only written when it is missing or not
// already 1.
func EnsureDeveloperMode(reg Registry) StepResult {
	logger := logging.GetLogger("winenv")
	result := StepResult{Name: "Developer Mode"}

	enabled, err := DeveloperModeEnabled(reg)
	if err != nil {
		result.Err = err
		return result
	}

	if enabled {
		logger.Debug().Msg("Developer mode already enabled")
		result.Detail = "already enabled"
		return result
	}

	if err := reg.SetDWord(LocalMachine, DevModeKeyPath, DevModeValueName, 1); err != nil {
		result.Err = errors.Wrap(err, errors.ErrRegistryWrite, "enabling developer mode")
		return result
	}

	logger.Info().
		Str("key", DevModeKeyPath).
		Str("value", DevModeValueName).
		Msg("Developer mode enabled")

	result.Changed = true
	result.Detail = "enabled"
	return result
}
