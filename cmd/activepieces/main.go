package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/balwant1707/activepieces/internal/cli/export"
	"github.com/balwant1707/activepieces/internal/cli/show"
	"github.com/balwant1707/activepieces/internal/cli/validate"
)

func main() {
	app := cli.Command{
		Name:  "activepieces",
		Usage: "inspect and compare project states",
		Commands: []*cli.Command{
			{
				Name: "show",
				Commands: []*cli.Command{
					show.NewDiffCommand(),
					show.NewStateCommand(),
				},
			},
			validate.NewCommand(),
			{
				Name: "export",
				Commands: []*cli.Command{
					export.NewDotCommand(),
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
