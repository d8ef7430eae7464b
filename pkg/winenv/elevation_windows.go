//go:build windows

package winenv

import "golang.org/x/sys/windows"

// IsElevated reports whether the current process runs with
// administrator privileges.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
