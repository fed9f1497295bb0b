package registry

import (
	"github.com/balwant1707/activepieces/internal/config"
	"github.com/balwant1707/activepieces/piece"
)

// FromConfig builds the registry a config describes: the plugin when one
// is set, otherwise a static catalog of the configured pieces. A nil
// config yields no registry and no error. The returned close function may
// be nil.
func FromConfig(cfg *config.Registry) (piece.Registry, func(), error) {
	if cfg == nil {
		return nil, nil, nil
	}

	if cfg.Plugin != "" {
		return Dispense(cfg.Plugin)
	}

	pieces := make([]piece.Metadata, len(cfg.Pieces))
	for i, p := range cfg.Pieces {
		pieces[i] = piece.Metadata{Name: p.Name, Versions: p.Versions}
	}

	return NewStatic(pieces), nil, nil
}
