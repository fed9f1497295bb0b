package diff

import (
	"context"

	"github.com/balwant1707/activepieces/flow"
)

// Normalize returns a copy of version prepared for comparison, plus the
// version specifier recorded per piece step before it is blanked.
//
// Piece versions are auto-upgraded first when an upgrader is configured.
// Then every step has its sample-data cache reset to a fixed sentinel,
// and piece steps additionally have their version specifier and the auth
// entry of their input blanked. None of these may register as a flow
// change.
func (d *Differ) Normalize(ctx context.Context, version flow.Version) (flow.Version, map[string]string, error) {
	upgraded := version
	if d.upgrader != nil {
		var err error
		upgraded, err = d.upgrader.AutoUpgrade(ctx, version)
		if err != nil {
			return flow.Version{}, nil, err
		}
	}

	norm := upgraded.Clone()
	versions := map[string]string{}
	for _, step := range flow.AllSteps(norm.Trigger) {
		switch settings := step.Settings.(type) {
		case *flow.PieceSettings:
			settings.InputUIInfo = flow.DefaultSampleData()
			blankAuth(settings.Input)
			versions[step.Name] = settings.PieceVersion
			settings.PieceVersion = ""
		case *flow.CodeSettings:
			settings.InputUIInfo = flow.DefaultSampleData()
		case *flow.LoopSettings:
			settings.InputUIInfo = flow.DefaultSampleData()
		case *flow.RouterSettings:
			settings.InputUIInfo = flow.DefaultSampleData()
		case *flow.EmptySettings:
		}
	}

	return norm, versions, nil
}

func blankAuth(input map[string]any) {
	if _, ok := input["auth"]; ok {
		input["auth"] = ""
	}
}
