package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/balwant1707/activepieces/project"
)

type File struct {
	Path string
}

func (f *File) State(_ context.Context) (project.State, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return project.State{}, fmt.Errorf("reading state file: %w", err)
	}

	var state project.State
	if err := json.Unmarshal(data, &state); err != nil {
		return project.State{}, fmt.Errorf("parsing state file %q: %w", f.Path, err)
	}

	return state, nil
}
