package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/balwant1707/activepieces/internal/config"
	"github.com/balwant1707/activepieces/internal/registry"
	"github.com/balwant1707/activepieces/piece"
)

func TestFromConfig(t *testing.T) {
	reg, closeReg, err := registry.FromConfig(nil)
	require.NoError(t, err)
	require.Nil(t, reg)
	require.Nil(t, closeReg)

	reg, closeReg, err = registry.FromConfig(&config.Registry{
		Pieces: []config.Piece{
			{Name: "slack", Versions: []string{"0.5.2"}},
		},
	})
	require.NoError(t, err)
	require.Nil(t, closeReg)

	res, err := reg.Lookup(piece.LookupRequest{Name: "slack"})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []string{"0.5.2"}, res.Piece.Versions)
}
