package source_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/balwant1707/activepieces/internal/source"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		expected source.Source
		err      string
	}{
		{name: "file", ref: "state.json", expected: &source.File{Path: "state.json"}},
		{name: "gcs", ref: "gs://my-bucket/states/prod.json", expected: &source.GCS{Bucket: "my-bucket", Object: "states/prod.json"}},
		{name: "empty", ref: "", err: "state reference is required"},
		{name: "gcs without object", ref: "gs://my-bucket", err: "invalid gcs reference"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src, err := source.New(test.ref)
			if test.err != "" {
				require.ErrorContains(t, err, test.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expected, src)
		})
	}
}

func TestFile_State(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	doc := `{
	  "flows": [
	    {
	      "externalId": "welcome",
	      "version": {
	        "displayName": "Welcome",
	        "trigger": {
	          "type": "PIECE_TRIGGER",
	          "name": "trigger",
	          "displayName": "Catch Webhook",
	          "settings": {"pieceName": "webhook", "pieceVersion": "~0.1.1"}
	        }
	      }
	    }
	  ]
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	src := &source.File{Path: path}
	state, err := src.State(context.Background())
	require.NoError(t, err)

	require.Len(t, state.Flows, 1)
	require.Equal(t, "welcome", state.Flows[0].ExternalID)
	require.Equal(t, "Welcome", state.Flows[0].Version.DisplayName)
}

func TestFile_StateErrors(t *testing.T) {
	src := &source.File{Path: filepath.Join(t.TempDir(), "missing.json")}
	_, err := src.State(context.Background())
	require.ErrorContains(t, err, "reading state file")

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	src = &source.File{Path: path}
	_, err = src.State(context.Background())
	require.ErrorContains(t, err, "parsing state file")
}
