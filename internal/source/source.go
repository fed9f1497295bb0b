package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/balwant1707/activepieces/project"
)

// Source loads a project state document from somewhere.
type Source interface {
	State(ctx context.Context) (project.State, error)
}

// New picks a source for ref. References of the form gs://bucket/object
// are read from Google Cloud Storage, everything else from the local
// filesystem.
func New(ref string) (Source, error) {
	switch {
	case ref == "":
		return nil, errors.New("state reference is required")
	case strings.HasPrefix(ref, "gs://"):
		rest := strings.TrimPrefix(ref, "gs://")
		bucket, object, ok := strings.Cut(rest, "/")
		if !ok || bucket == "" || object == "" {
			return nil, fmt.Errorf("invalid gcs reference: %q", ref)
		}

		return &GCS{Bucket: bucket, Object: object}, nil
	default:
		return &File{Path: ref}, nil
	}
}
