package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/balwant1707/activepieces/flow"
	"github.com/balwant1707/activepieces/internal/registry"
	"github.com/balwant1707/activepieces/piece"
)

func TestStatic_Lookup(t *testing.T) {
	reg := registry.NewStatic([]piece.Metadata{
		{Name: "slack", Versions: []string{"0.5.2", "0.5.9"}},
	})

	res, err := reg.Lookup(piece.LookupRequest{Name: "slack"})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, piece.Metadata{Name: "slack", Versions: []string{"0.5.2", "0.5.9"}}, res.Piece)

	res, err = reg.Lookup(piece.LookupRequest{Name: "sheets"})
	require.NoError(t, err)
	require.False(t, res.Found)
}

func TestUpgrader_AutoUpgrade(t *testing.T) {
	reg := registry.NewStatic([]piece.Metadata{
		{Name: "slack", Versions: []string{"0.5.2", "0.5.9", "0.6.0", "1.0.0"}},
		{Name: "sheets", Versions: []string{"1.0.0", "1.2.0", "2.0.0"}},
	})
	upgrader := &registry.Upgrader{Registry: reg}

	version := flow.Version{
		DisplayName: "My Flow",
		Trigger: &flow.Trigger{
			Type:     flow.TriggerTypePiece,
			Name:     "trigger",
			Settings: &flow.PieceSettings{PieceName: "sheets", PieceVersion: "^1.0.0", TriggerName: "new_row"},
			NextAction: &flow.Action{
				Type:     flow.ActionTypePiece,
				Name:     "step_1",
				Settings: &flow.PieceSettings{PieceName: "slack", PieceVersion: "~0.5.2", ActionName: "send_message"},
				NextAction: &flow.Action{
					Type:     flow.ActionTypePiece,
					Name:     "step_2",
					Settings: &flow.PieceSettings{PieceName: "unknown", PieceVersion: "~0.1.0"},
					NextAction: &flow.Action{
						Type:     flow.ActionTypePiece,
						Name:     "step_3",
						Settings: &flow.PieceSettings{PieceName: "slack", PieceVersion: "latest"},
					},
				},
			},
		},
	}

	upgraded, err := upgrader.AutoUpgrade(context.Background(), version)
	require.NoError(t, err)

	steps := flow.AllSteps(upgraded.Trigger)
	require.Equal(t, "^1.2.0", steps[0].Settings.(*flow.PieceSettings).PieceVersion)
	require.Equal(t, "~0.5.9", steps[1].Settings.(*flow.PieceSettings).PieceVersion)
	require.Equal(t, "~0.1.0", steps[2].Settings.(*flow.PieceSettings).PieceVersion)
	require.Equal(t, "latest", steps[3].Settings.(*flow.PieceSettings).PieceVersion)

	// The input version is left untouched.
	require.Equal(t, "~0.5.2", version.Trigger.NextAction.Settings.(*flow.PieceSettings).PieceVersion)
}

type countingRegistry struct {
	inner   piece.Registry
	lookups int
}

func (c *countingRegistry) Lookup(req piece.LookupRequest) (piece.LookupResponse, error) {
	c.lookups++
	return c.inner.Lookup(req)
}

func TestUpgrader_MemoizesLookups(t *testing.T) {
	counting := &countingRegistry{
		inner: registry.NewStatic([]piece.Metadata{
			{Name: "slack", Versions: []string{"0.5.2", "0.5.9"}},
		}),
	}
	upgrader := &registry.Upgrader{Registry: counting}

	version := flow.Version{
		Trigger: &flow.Trigger{
			Type:     flow.TriggerTypePiece,
			Name:     "trigger",
			Settings: &flow.PieceSettings{PieceName: "slack", PieceVersion: "~0.5.2", TriggerName: "new_message"},
			NextAction: &flow.Action{
				Type:     flow.ActionTypePiece,
				Name:     "step_1",
				Settings: &flow.PieceSettings{PieceName: "slack", PieceVersion: "~0.5.2", ActionName: "send_message"},
			},
		},
	}

	_, err := upgrader.AutoUpgrade(context.Background(), version)
	require.NoError(t, err)
	_, err = upgrader.AutoUpgrade(context.Background(), version)
	require.NoError(t, err)

	require.Equal(t, 1, counting.lookups)
}

type failingRegistry struct {
	err error
}

func (f *failingRegistry) Lookup(piece.LookupRequest) (piece.LookupResponse, error) {
	return piece.LookupResponse{}, f.err
}

func TestUpgrader_LookupErrorPropagates(t *testing.T) {
	upgrader := &registry.Upgrader{Registry: &failingRegistry{err: errors.New("registry offline")}}

	version := flow.Version{
		Trigger: &flow.Trigger{
			Type:     flow.TriggerTypePiece,
			Name:     "trigger",
			Settings: &flow.PieceSettings{PieceName: "slack", PieceVersion: "~0.5.2"},
		},
	}

	_, err := upgrader.AutoUpgrade(context.Background(), version)
	require.ErrorContains(t, err, "registry offline")
	require.ErrorContains(t, err, `looking up piece "slack"`)
}
