package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/meeko.toml
var defaultManifest []byte

// DefaultManifestContent returns the embedded default manifest,
// used by genconfig as the starting point for a user manifest.
func DefaultManifestContent() string {
	return string(defaultManifest)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
