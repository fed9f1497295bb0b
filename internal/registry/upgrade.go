package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	semverlib "github.com/Masterminds/semver/v3"

	"github.com/balwant1707/activepieces/flow"
	"github.com/balwant1707/activepieces/piece"
)

// Upgrader rewrites piece version specifiers to the newest published
// version that still satisfies them. Unknown pieces and specifiers that
// are not a version range are left untouched. Lookups are memoized, so
// one Upgrader can be shared across concurrent comparisons.
type Upgrader struct {
	Registry piece.Registry
	Logger   *slog.Logger

	mu   sync.Mutex
	memo map[string]*piece.Metadata
}

func (u *Upgrader) AutoUpgrade(ctx context.Context, version flow.Version) (flow.Version, error) {
	out := version.Clone()
	for _, step := range flow.AllSteps(out.Trigger) {
		settings, ok := step.Settings.(*flow.PieceSettings)
		if !ok {
			continue
		}

		upgraded, err := u.upgrade(settings.PieceName, settings.PieceVersion)
		if err != nil {
			return flow.Version{}, err
		}

		settings.PieceVersion = upgraded
	}

	return out, nil
}

func (u *Upgrader) upgrade(name, specifier string) (string, error) {
	constraint, err := semverlib.NewConstraint(specifier)
	if err != nil {
		return specifier, nil
	}

	meta, err := u.lookup(name)
	if err != nil {
		return "", err
	}
	if meta == nil {
		if u.Logger != nil {
			u.Logger.Debug("piece not in registry", "piece", name)
		}
		return specifier, nil
	}

	var best *semverlib.Version
	for _, published := range meta.Versions {
		v, err := semverlib.StrictNewVersion(published)
		if err != nil {
			continue
		}
		if !constraint.Check(v) {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
		}
	}
	if best == nil {
		return specifier, nil
	}

	return rangeSigil(specifier) + best.String(), nil
}

func rangeSigil(specifier string) string {
	if strings.HasPrefix(specifier, "~") || strings.HasPrefix(specifier, "^") {
		return specifier[:1]
	}

	return ""
}

func (u *Upgrader) lookup(name string) (*piece.Metadata, error) {
	u.mu.Lock()
	meta, ok := u.memo[name]
	u.mu.Unlock()
	if ok {
		return meta, nil
	}

	res, err := u.Registry.Lookup(piece.LookupRequest{Name: name})
	if err != nil {
		return nil, fmt.Errorf("looking up piece %q: %w", name, err)
	}

	if res.Found {
		m := res.Piece
		meta = &m
	}

	u.mu.Lock()
	if u.memo == nil {
		u.memo = map[string]*piece.Metadata{}
	}
	u.memo[name] = meta
	u.mu.Unlock()

	return meta, nil
}
