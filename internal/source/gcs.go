package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/cenkalti/backoff/v4"
	"google.golang.org/api/option"

	"github.com/balwant1707/activepieces/project"
)

type GCS struct {
	Bucket string
	Object string
}

func (g *GCS) State(ctx context.Context) (project.State, error) {
	client, err := storage.NewClient(ctx, option.WithScopes(storage.ScopeReadOnly))
	if err != nil {
		return project.State{}, fmt.Errorf("creating storage client: %w", err)
	}
	defer client.Close()

	var data []byte
	read := func() error {
		r, err := client.Bucket(g.Bucket).Object(g.Object).NewReader(ctx)
		if err != nil {
			return err
		}
		defer r.Close()

		data, err = io.ReadAll(r)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4), ctx)
	if err := backoff.Retry(read, policy); err != nil {
		return project.State{}, fmt.Errorf("reading gs://%s/%s: %w", g.Bucket, g.Object, err)
	}

	var state project.State
	if err := json.Unmarshal(data, &state); err != nil {
		return project.State{}, fmt.Errorf("parsing gs://%s/%s: %w", g.Bucket, g.Object, err)
	}

	return state, nil
}
