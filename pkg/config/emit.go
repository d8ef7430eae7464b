package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/dotMeeko/dotfiles/pkg/errors"
)

// Emit serializes a manifest back to TOML, used by genconfig to write
// a user manifest seeded with the effective configuration.
func Emit(m *Manifest) ([]byte, error) {
	out, err := gotoml.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "marshaling manifest")
	}
	return out, nil
}
