package winenv

import "fmt"

// MemoryRegistry is an in-memory Registry used by tests and dry runs.
type MemoryRegistry struct {
	strings map[string]string
	dwords  map[string]uint32

	// Writes records every SetDWord call for assertions
	Writes []string
	// FailWrites makes every write return an error
	FailWrites bool
}

// NewMemoryRegistry creates an empty in-memory registry
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		strings: make(map[string]string),
		dwords:  make(map[string]uint32),
	}
}

func regKey(root RootKey, path, name string) string {
	return fmt.Sprintf(`%s\%s\%s`, root, path, name)
}

// SeedString preloads a string value
func (m *MemoryRegistry) SeedString(root RootKey, path, name, value string) {
	m.strings[regKey(root, path, name)] = value
}

// SeedDWord preloads a DWORD value
func (m *MemoryRegistry) SeedDWord(root RootKey, path, name string, value uint32) {
	m.dwords[regKey(root, path, name)] = value
}

// GetString implements Registry
func (m *MemoryRegistry) GetString(root RootKey, path, name string) (string, error) {
	v, ok := m.strings[regKey(root, path, name)]
	if !ok {
		return "", ErrValueNotFound
	}
	return v, nil
}

// GetDWord implements Registry
func (m *MemoryRegistry) GetDWord(root RootKey, path, name string) (uint32, error) {
	v, ok := m.dwords[regKey(root, path, name)]
	if !ok {
		return 0, ErrValueNotFound
	}
	return v, nil
}

// SetDWord implements Registry
func (m *MemoryRegistry) SetDWord(root RootKey, path, name string, value uint32) error {
	if m.FailWrites {
		return fmt.Errorf("write rejected: %s", regKey(root, path, name))
	}
	key := regKey(root, path, name)
	m.dwords[key] = value
	m.Writes = append(m.Writes, key)
	return nil
}

// Verify interface compliance
var _ Registry = (*MemoryRegistry)(nil)
