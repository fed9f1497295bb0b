package validate

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/balwant1707/activepieces/internal/config"
	"github.com/balwant1707/activepieces/internal/flowgraph"
	"github.com/balwant1707/activepieces/internal/set"
	"github.com/balwant1707/activepieces/internal/source"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "check a project state for structural problems",
		ArgsUsage: "<ref>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to config file",
			},
		},
		Action: Action,
	}
}

func Action(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	src, err := source.New(cfg.Resolve(cmd.Args().First()))
	if err != nil {
		return err
	}

	state, err := src.State(ctx)
	if err != nil {
		return err
	}

	var problems []string
	flowIDs := set.New[string]()
	for _, f := range state.Flows {
		if !flowIDs.Add(f.ExternalID) {
			problems = append(problems, fmt.Sprintf("flow %q: duplicate external id", f.ExternalID))
		}
		if err := flowgraph.Validate(&f.Version); err != nil {
			problems = append(problems, fmt.Sprintf("flow %q: %s", f.ExternalID, err))
		}
	}

	connectionIDs := set.New[string]()
	for _, c := range state.Connections {
		if !connectionIDs.Add(c.ExternalID) {
			problems = append(problems, fmt.Sprintf("connection %q: duplicate external id", c.ExternalID))
		}
		if c.PieceName == "" {
			problems = append(problems, fmt.Sprintf("connection %q: no piece name", c.ExternalID))
		}
	}

	tableIDs := set.New[string]()
	for _, t := range state.Tables {
		if !tableIDs.Add(t.ExternalID) {
			problems = append(problems, fmt.Sprintf("table %q: duplicate external id", t.ExternalID))
		}

		fieldNames := set.New[string]()
		for _, field := range t.Fields {
			if !fieldNames.Add(field.Name) {
				problems = append(problems, fmt.Sprintf("table %q: duplicate field %q", t.ExternalID, field.Name))
			}
		}
	}

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(os.Stderr, p)
		}

		return fmt.Errorf("state is invalid: %d problems", len(problems))
	}

	fmt.Printf("state is valid: %d flows, %d connections, %d tables\n",
		len(state.Flows), len(state.Connections), len(state.Tables))
	return nil
}
