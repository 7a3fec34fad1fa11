package main

import (
	"fmt"
	"sort"
	"strconv"

	sent "github.com/revelaction/arbol/sentence"
	"github.com/revelaction/arbol/stat"
	"github.com/urfave/cli/v2"
)

func statCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "Show statistics for a document or sentence",
		ArgsUsage: "<file_path|doc_id> [sentence_id]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dist",
				Usage: "Show the words per sentence distribution",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 || c.NArg() > 2 {
				return fmt.Errorf("stat command needs a source and an optional sentence id")
			}

			doc, err := e.loadDoc(c.Args().First())
			if err != nil {
				return err
			}

			if c.NArg() == 2 {
				sentId, err := strconv.Atoi(c.Args().Get(1))
				if err != nil {
					return fmt.Errorf("invalid sentenceId: %v", err)
				}

				s, ok := doc.Sentence(sentId)
				if !ok {
					return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", sentId, doc.NumSentences())
				}

				// the semantic graph belongs to the whole doc
				doc = sent.Doc{Paragraphs: []sent.Paragraph{{Sentences: []sent.Sentence{s}}}}
			}

			hdl := stat.NewHandler()
			hdl.Aggregate(doc)

			stats := hdl.Get()
			fmt.Fprintf(e.ui.Out, "Num paragraphs %d, num sentences %d, num words %d, num words per sentence %d\n",
				stats.NumParagraphs, stats.NumSentences, stats.NumWords, stats.WordsPerSentenceMean)
			fmt.Fprintf(e.ui.Out, "Num parse trees %d, num dependency trees %d, num chunks %d, max dependency depth %d\n",
				stats.NumParseTrees, stats.NumDepTrees, stats.NumChunks, stats.MaxDepDepth)
			fmt.Fprintf(e.ui.Out, "Num words with senses %d, num entities %d, num frames %d\n",
				stats.NumSensedWords, stats.NumEntities, stats.NumFrames)

			if !c.Bool("dist") {
				return nil
			}

			lengths := make([]int, 0, len(stats.WordsPerSentenceDis))
			for l := range stats.WordsPerSentenceDis {
				lengths = append(lengths, l)
			}
			sort.Ints(lengths)

			for _, l := range lengths {
				fmt.Fprintf(e.ui.Out, "%4d words: %d\n", l, stats.WordsPerSentenceDis[l])
			}

			return nil
		},
	}
}
