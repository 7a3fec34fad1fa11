package main

import (
	"fmt"

	"github.com/revelaction/arbol/render"
	sent "github.com/revelaction/arbol/sentence"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func docCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "doc",
		Usage:     "Show the analysis of a document file or repository entry",
		ArgsUsage: "[file_path|doc_id]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "stage",
				Aliases: []string{"s"},
				Usage:   "Stages to print (tagged, parsed, dep, semgraph)",
			},
			&cli.IntFlag{
				Name:  "start",
				Usage: "Index of the first sentence to show",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   -1,
				Usage:   "Number of sentences to show (-1 for all)",
			},
			&cli.BoolFlag{
				Name:  "no-senses",
				Usage: "Do not print word senses",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "Mark phrase heads in color",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatText,
				Usage:   "Output format (text, json)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 1 {
				return fmt.Errorf("doc command accepts at most one argument")
			}

			if c.NArg() == 0 {
				repo, err := e.repository()
				if err != nil {
					return err
				}
				return listDocs(repo, "", e.ui)
			}

			doc, err := e.loadDoc(c.Args().First())
			if err != nil {
				return err
			}

			start := c.Int("start")
			if start < 0 {
				start = 0
			}
			doc = doc.Slice(start, c.Int("count"))

			switch c.String("format") {
			case formatJSON:
				return render.NewJSONRenderer(e.ui.Out).Render(doc)
			case formatText:
			default:
				return fmt.Errorf("unknown format %q, allowed values are %s, %s", c.String("format"), formatText, formatJSON)
			}

			names := e.cfg.Stages
			if c.IsSet("stage") {
				names = c.StringSlice("stage")
			}

			stages, err := render.ParseStages(names)
			if err != nil {
				return err
			}

			r := e.renderer(doc)
			r.HasColor = c.Bool("color")
			r.NoSenses = e.cfg.NoSenses || c.Bool("no-senses")
			r.Sections(doc, stages)
			return nil
		},
	}
}

// renderer returns a Renderer logging tree errors of doc
func (e *env) renderer(doc sent.Doc) *render.Renderer {
	r := render.NewRenderer(e.ui.Out)
	r.HasColor = false
	r.OnError = func(err error) {
		e.logger.Error("malformed tree", zap.Int("doc", doc.Id), zap.String("title", doc.Title), zap.Error(err))
	}

	return r
}
