//go:build !windows

package winenv

import "github.com/dotMeeko/dotfiles/pkg/errors"

// unsupportedRegistry is the stub used on non-Windows hosts. Callers
// that only run on Windows (the bootstrap sequence) should check
// IsElevated/OS first; anything else gets a clear error.
type unsupportedRegistry struct{}

// NewSystemRegistry returns a registry stub on non-Windows hosts
func NewSystemRegistry() Registry {
	return unsupportedRegistry{}
}

func (unsupportedRegistry) GetString(root RootKey, path, name string) (string, error) {
	return "", errors.New(errors.ErrUnsupportedOS, "registry access requires Windows")
}

func (unsupportedRegistry) GetDWord(root RootKey, path, name string) (uint32, error) {
	return 0, errors.New(errors.ErrUnsupportedOS, "registry access requires Windows")
}

func (unsupportedRegistry) SetDWord(root RootKey, path, name string, value uint32) error {
	return errors.New(errors.ErrUnsupportedOS, "registry access requires Windows")
}
