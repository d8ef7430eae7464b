//go:build windows

package winenv

import (
	stderrors "errors"

	"golang.org/x/sys/windows/registry"
)

// systemRegistry implements Registry over the live Windows registry
type systemRegistry struct{}

// NewSystemRegistry returns the live Windows registry
func NewSystemRegistry() Registry {
	return systemRegistry{}
}

func hive(root RootKey) registry.Key {
	if root == CurrentUser {
		return registry.CURRENT_USER
	}
	return registry.LOCAL_MACHINE
}

func (systemRegistry) GetString(root RootKey, path, name string) (string, error) {
	k, err := registry.OpenKey(hive(root), path, registry.QUERY_VALUE)
	if err != nil {
		if stderrors.Is(err, registry.ErrNotExist) {
			return "", ErrValueNotFound
		}
		return "", err
	}
	defer k.Close()

	v, _, err := k.GetStringValue(name)
	if err != nil {
		if stderrors.Is(err, registry.ErrNotExist) {
			return "", ErrValueNotFound
		}
		return "", err
	}
	return v, nil
}

func (systemRegistry) GetDWord(root RootKey, path, name string) (uint32, error) {
	k, err := registry.OpenKey(hive(root), path, registry.QUERY_VALUE)
	if err != nil {
		if stderrors.Is(err, registry.ErrNotExist) {
			return 0, ErrValueNotFound
		}
		return 0, err
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(name)
	if err != nil {
		if stderrors.Is(err, registry.ErrNotExist) {
			return 0, ErrValueNotFound
		}
		return 0, err
	}
	return uint32(v), nil
}

func (systemRegistry) SetDWord(root RootKey, path, name string, value uint32) error {
	k, _, err := registry.CreateKey(hive(root), path, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	return k.SetDWordValue(name, value)
}
