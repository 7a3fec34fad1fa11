package main

import (
	"github.com/revelaction/arbol/query"
	"github.com/revelaction/arbol/render"
	"github.com/revelaction/arbol/storage"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func queryCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "Enter interactive lemma query mode",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-prefix",
				Usage: "Do not print the sentence text before the tree",
			},
			&cli.StringFlag{
				Name:    "stage",
				Aliases: []string{"s"},
				Value:   string(render.StageTagged),
				Usage:   "Initial stage (tagged, parsed, dep), Ctrl+F cycles",
			},
			&cli.IntFlag{
				Name:  "limit",
				Value: query.DefaultLimit,
				Usage: "Max sentences per query (0 for all)",
			},
		},
		Action: func(c *cli.Context) error {
			st, err := render.ParseStage(c.String("stage"))
			if err != nil {
				return err
			}

			repo, err := e.repository()
			if err != nil {
				return err
			}

			// the filesystem store scans memory
			if p, ok := repo.(storage.Preloader); ok {
				docs, err := repo.List("")
				if err != nil {
					return err
				}

				pr := newProgress(e.ui.Err, len(docs))
				err = p.Preload(pr.Incr)
				pr.Stop()
				if err != nil {
					return err
				}
			}

			r := render.NewRenderer(e.ui.Out)
			r.HasColor = true
			r.HasPrefix = !c.Bool("no-prefix")
			r.NoSenses = e.cfg.NoSenses
			r.Stage = st
			r.OnError = func(err error) {
				e.logger.Error("malformed tree", zap.Error(err))
			}

			// now present the REPL
			t := query.NewHandler(repo, r, e.ui.Out)
			t.Limit = c.Int("limit")
			return t.Run()
		},
	}
}
