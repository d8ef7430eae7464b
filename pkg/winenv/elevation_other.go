//go:build !windows

package winenv

import "os"

// IsElevated reports whether the current process runs as root. Kept so
// the bootstrap sequence compiles and tests run on developer machines.
func IsElevated() bool {
	return os.Geteuid() == 0
}
