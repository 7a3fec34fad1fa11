package main

import (
	"fmt"

	"github.com/revelaction/arbol/storage/filesystem"
	"github.com/revelaction/arbol/storage/sqlite/zombiezen"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func importDocCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "import-doc",
		Usage: "Import docs from a filesystem directory to SQLite",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "Source docs directory", Required: true},
			&cli.StringFlag{Name: "to", Usage: "Target SQLite file", Required: true},
		},
		Action: func(c *cli.Context) error {
			from, to := c.String("from"), c.String("to")

			src, err := filesystem.NewDocStore(from)
			if err != nil {
				return err
			}

			docs, err := src.List("")
			if err != nil {
				return err
			}

			fmt.Fprintf(e.ui.Out, "Reading docs from %s...\n", from)
			pr := newProgress(e.ui.Err, len(docs))
			err = src.Preload(pr.Incr)
			pr.Stop()
			if err != nil {
				return err
			}

			pool, err := e.pool.Open(to)
			if err != nil {
				return err
			}

			if err := zombiezen.CreateSchemas(pool, zombiezen.DocSchema); err != nil {
				return fmt.Errorf("failed to create docs table: %w", err)
			}

			dst := zombiezen.NewDocStore(pool)

			pr = newProgress(e.ui.Err, len(docs))
			defer pr.Stop()

			count := 0
			for _, docMeta := range docs {
				doc, err := src.Read(docMeta.Id)
				if err != nil {
					return fmt.Errorf("failed to read doc %s: %w", docMeta.Title, err)
				}

				if err := dst.Write(doc); err != nil {
					return fmt.Errorf("failed to write doc %s: %w", docMeta.Title, err)
				}
				e.logger.Debug("imported doc", zap.String("title", doc.Title), zap.Int("sentences", doc.NumSentences()))
				count++
				pr.Incr(count, len(docs), doc.Title)
			}

			fmt.Fprintf(e.ui.Out, "Successfully imported %d docs from %s to %s\n", count, from, to)
			return nil
		},
	}
}
