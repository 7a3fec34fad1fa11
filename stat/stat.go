package stat

import (
	sent "github.com/revelaction/arbol/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumParagraphs        int
	NumSentences         int
	NumWords             int
	WordsPerSentenceMean int
	WordsPerSentenceDis  map[int]int

	// annotations
	NumParseTrees  int
	NumDepTrees    int
	NumChunks      int
	MaxDepDepth    int
	NumSensedWords int
	NumEntities    int
	NumFrames      int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{WordsPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the counts of doc to the stats. It can be called for
// several docs.
func (h *Handler) Aggregate(doc sent.Doc) {
	h.stats.NumParagraphs += len(doc.Paragraphs)

	for _, sentence := range doc.Sentences() {
		h.stats.NumSentences++
		h.stats.NumWords += len(sentence.Words)
		h.stats.WordsPerSentenceDis[len(sentence.Words)]++

		for _, w := range sentence.Words {
			if len(w.Senses) > 0 {
				h.stats.NumSensedWords++
			}
		}

		if sentence.ParseTree != nil {
			h.stats.NumParseTrees++
		}

		if sentence.DepTree != nil {
			h.stats.NumDepTrees++
			if d := sentence.DepTree.Depth(); d > h.stats.MaxDepDepth {
				h.stats.MaxDepDepth = d
			}

			sentence.DepTree.Walk(func(n *sent.DepNode) {
				if n.Kind() == sent.ChunkChild {
					h.stats.NumChunks++
				}
			})
		}
	}

	if doc.SemGraph != nil {
		h.stats.NumEntities += len(doc.SemGraph.Entities)
		h.stats.NumFrames += len(doc.SemGraph.Frames)
	}

	if h.stats.NumSentences > 0 {
		h.stats.WordsPerSentenceMean = h.stats.NumWords / h.stats.NumSentences
	}
}
