// Package paths provides centralized path handling for meeko.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/dotMeeko/dotfiles/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the primary environment variable for dotfiles location
	EnvDotfilesRoot = "DOTFILES_ROOT"

	// EnvConfigDir overrides the XDG config directory for meeko
	EnvConfigDir = "MEEKO_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for meeko
	EnvStateDir = "MEEKO_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for meeko-specific files
	AppDirName = "meeko"

	// ManifestFileName is the name of the package manifest file
	ManifestFileName = "meeko.toml"

	// LogFileName is the name of the log file
	LogFileName = "meeko.log"

	// DotbotConfigName is the default dotbot configuration file name
	DotbotConfigName = "install.conf.yaml"

	// DefaultDotfilesDir is the default directory name for dotfiles
	DefaultDotfilesDir = "dotfiles"
)

// Paths holds the resolved directories used by meeko
type Paths struct {
	ConfigDir    string
	StateDir     string
	DotfilesRoot string
}

// New resolves all paths from the environment, falling back to
// XDG defaults and ~/dotfiles for the dotfiles root.
func New() (*Paths, error) {
	configDir := os.Getenv(EnvConfigDir)
	if configDir == "" {
		configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	stateDir := os.Getenv(EnvStateDir)
	if stateDir == "" {
		stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	dotfilesRoot := os.Getenv(EnvDotfilesRoot)
	if dotfilesRoot == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrNotFound, "cannot resolve home directory for dotfiles root")
		}
		dotfilesRoot = filepath.Join(home, DefaultDotfilesDir)
	}

	return &Paths{
		ConfigDir:    configDir,
		StateDir:     stateDir,
		DotfilesRoot: dotfilesRoot,
	}, nil
}

// ManifestFile returns the path to the user package manifest
func (p *Paths) ManifestFile() string {
	return filepath.Join(p.ConfigDir, ManifestFileName)
}

// LogFile returns the path to the log file
func (p *Paths) LogFile() string {
	return filepath.Join(p.StateDir, LogFileName)
}

// DotbotConfig returns the default dotbot configuration file path,
// relative to the dotfiles root.
func (p *Paths) DotbotConfig() string {
	return filepath.Join(p.DotfilesRoot, DotbotConfigName)
}
