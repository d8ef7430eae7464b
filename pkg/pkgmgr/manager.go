// Package pkgmgr wraps the system package managers (winget, choco):
// it builds non-interactive invocations, runs them with combined
// output capture, and classifies the result heuristically from the
// output text and exit code.
package pkgmgr

import (
	"github.com/dotMeeko/dotfiles/pkg/errors"
	"github.com/dotMeeko/dotfiles/pkg/types"
)

// Vocabulary holds the fixed output phrases a manager emits on the
// states we care about. Matching is a case-sensitive substring test.
//
// The phrases are the English-locale strings the tools print; on a
// non-English system classification degrades to the exit-code signal
// alone. That fragility is inherent to output scraping and kept here
// in one place so a locale table could be swapped in later.
type Vocabulary struct {
	// Success phrases indicate a completed install or upgrade
	Success []string
	// AlreadyCurrent phrases indicate no change was needed
	AlreadyCurrent []string
}

// Manager describes one system package manager.
type Manager struct {
	// Name is the short identifier used in config and flags
	Name string
	// Executable is the binary looked up on PATH
	Executable string
	// Vocab is the output vocabulary used for classification
	Vocab Vocabulary

	installArgs func(id string) []string
	upgradeArgs func(id string) []string
}

// Args builds the command-line arguments for the given package and mode
func (m Manager) Args(id string, mode types.InstallMode) []string {
	if mode == types.ModeUpgrade {
		return m.upgradeArgs(id)
	}
	return m.installArgs(id)
}

// Winget returns the descriptor for the Windows Package Manager
func Winget() Manager {
	return Manager{
		Name:       "winget",
		Executable: "winget",
		Vocab: Vocabulary{
			Success: []string{
				"Successfully installed",
				"Successfully upgraded",
			},
			AlreadyCurrent: []string{
				"already installed",
				"No available upgrade found",
				"No applicable upgrade found",
				"No newer package versions are available",
			},
		},
		installArgs: func(id string) []string {
			return []string{
				"install", "--id", id, "--exact", "--silent",
				"--accept-package-agreements", "--accept-source-agreements",
			}
		},
		upgradeArgs: func(id string) []string {
			return []string{
				"upgrade", "--id", id, "--exact", "--silent",
				"--accept-package-agreements", "--accept-source-agreements",
			}
		},
	}
}

// Choco returns the descriptor for Chocolatey
func Choco() Manager {
	return Manager{
		Name:       "choco",
		Executable: "choco",
		Vocab: Vocabulary{
			Success: []string{
				"has been installed",
				"has been upgraded",
				"Chocolatey installed 1/1 packages",
				"Chocolatey upgraded 1/1 packages",
			},
			AlreadyCurrent: []string{
				"already installed",
				"is the latest version available based on your source",
				"Chocolatey upgraded 0/1 packages",
			},
		},
		installArgs: func(id string) []string {
			return []string{"install", id, "-y", "--no-progress"}
		},
		upgradeArgs: func(id string) []string {
			return []string{"upgrade", id, "-y", "--no-progress"}
		},
	}
}

// ByName resolves a manager descriptor from its config/flag name
func ByName(name string) (Manager, error) {
	switch name {
	case "winget":
		return Winget(), nil
	case "choco", "chocolatey":
		return Choco(), nil
	default:
		return Manager{}, errors.Newf(errors.ErrInvalidInput, "unknown package manager %q", name)
	}
}
