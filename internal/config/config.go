package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

type Config struct {
	LogFile  string    `hcl:"log_file,optional"`
	Registry *Registry `hcl:"registry,block"`
	Projects []Project `hcl:"project,block"`
}

// Registry describes where piece metadata comes from: an external plugin
// binary, or piece blocks listing versions inline.
type Registry struct {
	Plugin string  `hcl:"plugin,optional"`
	Pieces []Piece `hcl:"piece,block"`
}

type Piece struct {
	Name     string   `hcl:"name,label"`
	Versions []string `hcl:"versions"`
}

type Project struct {
	Name   string `hcl:"name,label"`
	Source string `hcl:"source"`
}

// Load reads an HCL config file. Attribute values may reference
// environment variables as env.NAME. An empty path yields a zero config.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": environment(),
		},
	}

	var cfg Config
	if err := hclsimple.DecodeFile(path, ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config %q: %w", path, err)
	}

	return cfg, nil
}

// Resolve maps a configured project name to its source reference. Refs
// that name no project pass through unchanged.
func (c Config) Resolve(ref string) string {
	for _, p := range c.Projects {
		if p.Name == ref {
			return p.Source
		}
	}

	return ref
}

func environment() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}

	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}

	return cty.ObjectVal(vars)
}
