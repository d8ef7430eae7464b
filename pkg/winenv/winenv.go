// Package winenv performs the guarded, idempotent host-state writes of
// the bootstrap: the Developer Mode registry value, the process PATH
// rebuilt from the two persisted scopes, and the PowerShell execution
// policy. Every step checks the current value first and only writes
// when it differs from the desired one.
package winenv

import (
	stderrors "errors"
)

// RootKey identifies a registry hive
type RootKey int

const (
	// LocalMachine is HKEY_LOCAL_MACHINE
	LocalMachine RootKey = iota
	// CurrentUser is HKEY_CURRENT_USER
	CurrentUser
)

// String returns the conventional short name of the hive
func (r RootKey) String() string {
	if r == CurrentUser {
		return "HKCU"
	}
	return "HKLM"
}

// ErrValueNotFound is returned when a registry value does not exist
var ErrValueNotFound = stderrors.New("registry value not found")

// Registry is the minimal registry surface this toolkit needs.
// The production implementation is build-tagged for Windows;
// MemoryRegistry backs the tests.
type Registry interface {
	GetString(root RootKey, path, name string) (string, error)
	GetDWord(root RootKey, path, name string) (uint32, error)
	SetDWord(root RootKey, path, name string, value uint32) error
}

// StepResult reports one guarded bootstrap step
type StepResult struct {
	// Name is the step's display name
	Name string
	// Changed is true when the step wrote a new value, false when the
	// host was already in the desired state
	Changed bool
	// Detail is an optional human-readable note
	Detail string
	// Err is set when the step failed
	Err error
}

// OK reports whether the step completed without error
func (s StepResult) OK() bool {
	return s.Err == nil
}
