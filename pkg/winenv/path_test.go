// pkg/winenv/path_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: MemoryRegistry
// PURPOSE: Test PATH merging semantics and the guarded refresh

package winenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePath(t *testing.T) {
	tests := []struct {
		name    string
		machine string
		user    string
		want    string
	}{
		{
			name:    "machine_then_user",
			machine: `C:\Windows;C:\Windows\System32`,
			user:    `C:\Users\meeko\bin`,
			want:    `C:\Windows;C:\Windows\System32;C:\Users\meeko\bin`,
		},
		{
			name:    "case_insensitive_dedupe",
			machine: `C:\Windows;C:\Tools`,
			user:    `c:\windows;C:\Users\meeko\bin`,
			want:    `C:\Windows;C:\Tools;C:\Users\meeko\bin`,
		},
		{
			name:    "trailing_backslash_dedupe",
			machine: `C:\Tools\`,
			user:    `C:\Tools`,
			want:    `C:\Tools\`,
		},
		{
			name:    "empty_entries_dropped",
			machine: `;C:\Windows;;`,
			user:    ``,
			want:    `C:\Windows`,
		},
		{
			name:    "both_empty",
			machine: ``,
			user:    ``,
			want:    ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergePath(tt.machine, tt.user))
		})
	}
}

func withEnvStubs(t *testing.T, current string) *[]string {
	t.Helper()
	var sets []string

	oldGetenv, oldSetenv := getenv, setenv
	getenv = func(key string) string { return current }
	setenv = func(key, value string) error {
		sets = append(sets, key+"="+value)
		return nil
	}
	t.Cleanup(func() { getenv, setenv = oldGetenv, oldSetenv })

	return &sets
}

func TestRefreshPathRebuilds(t *testing.T) {
	reg := NewMemoryRegistry()
	reg.SeedString(LocalMachine, MachineEnvKeyPath, "Path", `C:\Windows`)
	reg.SeedString(CurrentUser, UserEnvKeyPath, "Path", `C:\Users\meeko\bin`)

	sets := withEnvStubs(t, `C:\stale`)

	result := RefreshPath(reg)
	require.NoError(t, result.Err)
	assert.True(t, result.Changed)
	assert.Equal(t, []string{`PATH=C:\Windows;C:\Users\meeko\bin`}, *sets)
}

func TestRefreshPathGuarded(t *testing.T) {
	reg := NewMemoryRegistry()
	reg.SeedString(LocalMachine, MachineEnvKeyPath, "Path", `C:\Windows`)
	reg.SeedString(CurrentUser, UserEnvKeyPath, "Path", `C:\Users\meeko\bin`)

	sets := withEnvStubs(t, `C:\Windows;C:\Users\meeko\bin`)

	result := RefreshPath(reg)
	require.NoError(t, result.Err)
	assert.False(t, result.Changed, "matching PATH must not be rewritten")
	assert.Empty(t, *sets)
}

func TestRefreshPathMissingUserScope(t *testing.T) {
	// fresh machines often have no user Path value at all
	reg := NewMemoryRegistry()
	reg.SeedString(LocalMachine, MachineEnvKeyPath, "Path", `C:\Windows`)

	sets := withEnvStubs(t, ``)

	result := RefreshPath(reg)
	require.NoError(t, result.Err)
	assert.True(t, result.Changed)
	assert.Equal(t, []string{`PATH=C:\Windows`}, *sets)
}

func TestRefreshPathMissingMachineScopeFails(t *testing.T) {
	reg := NewMemoryRegistry()

	result := RefreshPath(reg)
	assert.Error(t, result.Err)
	assert.False(t, result.Changed)
}
