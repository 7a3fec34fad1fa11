package main

import (
	"fmt"

	"github.com/revelaction/arbol/storage"
	"github.com/urfave/cli/v2"
)

func lsDocCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "ls-doc",
		Usage: "List the documents of the repository",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "label",
				Aliases: []string{"l"},
				Usage:   "Only docs with a label containing this string",
			},
		},
		Action: func(c *cli.Context) error {
			repo, err := e.repository()
			if err != nil {
				return err
			}

			return listDocs(repo, c.String("label"), e.ui)
		},
	}
}

func listDocs(repo storage.DocReader, labelMatch string, ui UI) error {
	docs, err := repo.List(labelMatch)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Fprintf(ui.Out, "📖 %d %s\n", doc.Id, doc.Title)
	}
	return nil
}
