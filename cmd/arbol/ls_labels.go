package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

func lsLabelsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "ls-labels",
		Usage:     "List the labels of all documents",
		ArgsUsage: "[match]",
		Action: func(c *cli.Context) error {
			repo, err := e.repository()
			if err != nil {
				return err
			}

			labels, err := repo.Labels(c.Args().First())
			if err != nil {
				return err
			}

			if len(labels) > 0 {
				fmt.Fprintln(e.ui.Out, strings.Join(labels, ", "))
			}

			return nil
		},
	}
}
