package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/balwant1707/activepieces/internal/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("AP_STATE_BUCKET", "prod-states")

	in := `
log_file = "activepieces.log"

registry {
  piece "slack" {
    versions = ["0.5.2", "0.5.9"]
  }

  piece "webhook" {
    versions = ["0.1.1"]
  }
}

project "prod" {
  source = "gs://${env.AP_STATE_BUCKET}/state.json"
}

project "local" {
  source = "state.json"
}
`
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(in), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	expected := config.Config{
		LogFile: "activepieces.log",
		Registry: &config.Registry{
			Pieces: []config.Piece{
				{Name: "slack", Versions: []string{"0.5.2", "0.5.9"}},
				{Name: "webhook", Versions: []string{"0.1.1"}},
			},
		},
		Projects: []config.Project{
			{Name: "prod", Source: "gs://prod-states/state.json"},
			{Name: "local", Source: "state.json"},
		},
	}
	require.Equal(t, expected, cfg)
}

func TestLoad_PluginRegistry(t *testing.T) {
	in := `
registry {
  plugin = "./bin/registry-plugin"
}
`
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(in), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Registry)
	require.Equal(t, "./bin/registry-plugin", cfg.Registry.Plugin)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Config{}, cfg)
}

func TestLoad_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`registry "too" "many" {}`), 0o600))

	_, err := config.Load(path)
	require.ErrorContains(t, err, "loading config")
}

func TestResolve(t *testing.T) {
	cfg := config.Config{
		Projects: []config.Project{
			{Name: "prod", Source: "gs://prod-states/state.json"},
		},
	}

	require.Equal(t, "gs://prod-states/state.json", cfg.Resolve("prod"))
	require.Equal(t, "local.json", cfg.Resolve("local.json"))
}
