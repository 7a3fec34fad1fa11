package main

import (
	"fmt"
	"strconv"

	"github.com/revelaction/arbol/render"
	"github.com/urfave/cli/v2"
)

func sentenceCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "sentence",
		Usage:     "Show a specific sentence and its words",
		ArgsUsage: "<file_path|doc_id> <sentence_id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "stage",
				Aliases: []string{"s"},
				Value:   string(render.StageTagged),
				Usage:   "Stage to print (tagged, parsed, dep)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("sentence command needs exactly two arguments: <source> <sentenceId>")
			}

			sentId, err := strconv.Atoi(c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("invalid sentenceId: %v", err)
			}

			st, err := render.ParseStage(c.String("stage"))
			if err != nil {
				return err
			}

			doc, err := e.loadDoc(c.Args().First())
			if err != nil {
				return err
			}

			s, ok := doc.Sentence(sentId)
			if !ok {
				return fmt.Errorf("sentence index %d out of bounds (0-%d)", sentId, doc.NumSentences()-1)
			}

			r := e.renderer(doc)
			r.Stage = st
			r.NoSenses = e.cfg.NoSenses
			prefix := fmt.Sprintf("✍  %d ", sentId)
			r.Sentence(s, prefix)
			fmt.Fprintln(e.ui.Out)

			for _, w := range s.Words {
				fmt.Fprintf(e.ui.Out, "%20q %15q %10s %s\n", w.Form, w.Lemma, w.Tag, render.Senses(w))
			}

			return nil
		},
	}
}
