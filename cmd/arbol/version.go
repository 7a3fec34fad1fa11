package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// set with -ldflags
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func versionCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show the version",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintf(e.ui.Out, "arbol version %s (commit: %s)\n", BuildTag, BuildCommit)
			return err
		},
	}
}
