package export

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/balwant1707/activepieces/internal/config"
	"github.com/balwant1707/activepieces/internal/flowgraph"
	"github.com/balwant1707/activepieces/internal/source"
)

func NewDotCommand() *cli.Command {
	return &cli.Command{
		Name:      "dot",
		Usage:     "export a flow's step graph in Graphviz DOT format",
		ArgsUsage: "<ref>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "flow",
				Usage:    "external id of the flow to export",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "path to write to instead of stdout",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to config file",
			},
		},
		Action: DotAction,
	}
}

func DotAction(ctx context.Context, cmd *cli.Command) error {
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

	externalID := cmd.String("flow")
	var out io.Writer = os.Stdout
	if path := cmd.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	for _, f := range state.Flows {
		if f.ExternalID != externalID {
			continue
		}

		return flowgraph.WriteDOT(out, &f.Version)
	}

	return fmt.Errorf("no flow with external id %q", externalID)
}
