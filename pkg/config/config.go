// Package config loads the meeko manifest: which packages to install,
// how to verify them, and the environment bootstrap targets. Sources
// are layered: embedded defaults, then the user manifest file, then
// MEEKO_-prefixed environment variables.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/dotMeeko/dotfiles/pkg/errors"
	"github.com/dotMeeko/dotfiles/pkg/types"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. MEEKO_MANAGER=choco.
const EnvPrefix = "MEEKO_"

// Package is one manifest entry
type Package struct {
	ID         string `koanf:"id" toml:"id"`
	Name       string `koanf:"name" toml:"name,omitempty"`
	MinVersion string `koanf:"min_version" toml:"min_version,omitempty"`
	Manager    string `koanf:"manager" toml:"manager,omitempty"`
	Hard       bool   `koanf:"hard" toml:"hard,omitempty"`
}

// Probe is one post-install verification command
type Probe struct {
	Name       string   `koanf:"name" toml:"name"`
	Command    string   `koanf:"command" toml:"command"`
	Args       []string `koanf:"args" toml:"args"`
	MinVersion string   `koanf:"min_version" toml:"min_version,omitempty"`
}

// PackageLists splits the manifest packages into the always-installed
// core list and the --skip-optional-able optional list
type PackageLists struct {
	Core     []Package `koanf:"core" toml:"core"`
	Optional []Package `koanf:"optional" toml:"optional"`
}

// Dotfiles configures the dotbot invocation
type Dotfiles struct {
	// Dir overrides the dotfiles root; empty means DOTFILES_ROOT / ~/dotfiles
	Dir string `koanf:"dir" toml:"dir,omitempty"`
	// Config is the dotbot config file, relative to the dotfiles dir
	Config string `koanf:"config" toml:"config"`
}

// Manifest is the full configuration
type Manifest struct {
	Manager         string       `koanf:"manager" toml:"manager"`
	ExecutionPolicy string       `koanf:"execution_policy" toml:"execution_policy"`
	Dotfiles        Dotfiles     `koanf:"dotfiles" toml:"dotfiles"`
	Packages        PackageLists `koanf:"packages" toml:"packages"`
	Verify          []Probe      `koanf:"verify" toml:"verify,omitempty"`
}

// Load builds the manifest from the layered sources. manifestPath may
// point at a missing file; only a present-but-unreadable file is an
// error.
func Load(manifestPath string) (*Manifest, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultManifest}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading embedded defaults")
	}

	// 2. User manifest, when present
	if manifestPath != "" {
		if _, err := os.Stat(manifestPath); err == nil {
			if err := k.Load(file.Provider(manifestPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "loading manifest from %s", manifestPath)
			}
		}
	}

	// 3. Environment overrides: MEEKO_MANAGER -> manager,
	//    MEEKO_EXECUTION_POLICY -> execution_policy
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading environment overrides")
	}

	var m Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "unmarshaling manifest")
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Manager == "" {
		return errors.New(errors.ErrConfigValid, "manifest has no package manager")
	}
	for _, p := range append(append([]Package{}, m.Packages.Core...), m.Packages.Optional...) {
		if p.ID == "" {
			return errors.New(errors.ErrConfigValid, "manifest package without id")
		}
	}
	return nil
}

// Requests converts the manifest package lists into install requests.
// skipOptional drops the optional list entirely; those packages are
// not requested rather than skipped.
func (m *Manifest) Requests(skipOptional bool) []types.PackageRequest {
	packages := m.Packages.Core
	if !skipOptional {
		packages = append(append([]Package{}, packages...), m.Packages.Optional...)
	}

	requests := make([]types.PackageRequest, 0, len(packages))
	for _, p := range packages {
		requests = append(requests, types.PackageRequest{
			ID:         p.ID,
			Name:       p.Name,
			MinVersion: p.MinVersion,
			Manager:    p.Manager,
			Hard:       p.Hard,
		})
	}
	return requests
}
