package main

import (
	"fmt"
	"os"

	"github.com/revelaction/arbol/storage/filesystem"
	"github.com/revelaction/arbol/storage/sqlite/zombiezen"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func exportDocCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "export-doc",
		Usage: "Export docs from SQLite to a filesystem directory",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "Source SQLite file", Required: true},
			&cli.StringFlag{Name: "to", Usage: "Target docs directory", Required: true},
		},
		Action: func(c *cli.Context) error {
			from, to := c.String("from"), c.String("to")

			if _, err := os.Stat(from); err != nil {
				return fmt.Errorf("repository not found: %s", from)
			}

			pool, err := e.pool.Open(from)
			if err != nil {
				return err
			}
			src := zombiezen.NewDocStore(pool)

			// Ensure target directory exists
			if err := os.MkdirAll(to, 0755); err != nil {
				return fmt.Errorf("failed to create target directory: %w", err)
			}

			dst, err := filesystem.NewDocStore(to)
			if err != nil {
				return err
			}

			docs, err := src.List("")
			if err != nil {
				return err
			}

			pr := newProgress(e.ui.Err, len(docs))
			defer pr.Stop()

			count := 0
			for _, docMeta := range docs {
				doc, err := src.Read(docMeta.Id)
				if err != nil {
					return fmt.Errorf("failed to read doc %s (id %d): %w", docMeta.Title, docMeta.Id, err)
				}

				if err := dst.Write(doc); err != nil {
					return fmt.Errorf("failed to write doc %s: %w", docMeta.Title, err)
				}
				e.logger.Debug("exported doc", zap.String("title", doc.Title))
				count++
				pr.Incr(count, len(docs), doc.Title)
			}

			fmt.Fprintf(e.ui.Out, "Successfully exported %d docs from %s to %s\n", count, from, to)
			return nil
		},
	}
}
