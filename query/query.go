package query

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/revelaction/arbol/render"
	"github.com/revelaction/arbol/storage"
)

const (
	// batchSize is the number of candidates fetched per storage call
	batchSize = 500

	// DefaultLimit caps the sentences printed per query
	DefaultLimit = 2000

	quit = "quit"
)

var errNoLemmas = errors.New("no lemmas given")

type Handler struct {
	DocRepo  storage.DocReader
	Renderer *render.Renderer
	Out      io.Writer

	// Limit caps the sentences printed per query, below 1 there is no cap
	Limit int

	// lemmas seen in results, for completion
	lemmas map[string]bool
}

func NewHandler(dr storage.DocReader, r *render.Renderer, out io.Writer) *Handler {
	return &Handler{
		DocRepo:  dr,
		Renderer: r,
		Out:      out,
		Limit:    DefaultLimit,
		lemmas:   map[string]bool{},
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Out, "🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Stage, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔖 ", h.completer,
			prompt.OptionTitle("arbol query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextStage()
					fmt.Fprintln(h.Out, "Stage set to: "+string(h.Renderer.Stage))
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintln(h.Out, "Prefix set to "+fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		if strings.TrimSpace(in) == quit {
			return nil
		}

		history = append(history, in)

		n, err := h.Query(in)
		if err != nil {
			if !errors.Is(err, errNoLemmas) {
				fmt.Fprintf(h.Out, "Error fetching candidates: %v\n", err)
			}
			continue
		}

		fmt.Fprintf(h.Out, "🔍 %d sentences\n", n)
	}
}

// Query renders every sentence containing all lemmas of the input line,
// up to Limit. A Limit below 1 renders all of them. It returns the number of
// sentences rendered.
func (h *Handler) Query(in string) (int, error) {
	lemmas := strings.Fields(in)
	if len(lemmas) == 0 {
		return 0, errNoLemmas
	}

	cursor := storage.Cursor(0)
	fetched := 0
	for h.Limit <= 0 || fetched < h.Limit {
		size := batchSize
		if rest := h.Limit - fetched; h.Limit > 0 && rest < size {
			size = rest
		}

		newCursor, err := h.DocRepo.FindCandidates(lemmas, cursor, size, func(res storage.SentenceResult) error {
			fetched++
			for _, l := range res.Sentence.Lemmas() {
				h.lemmas[l] = true
			}

			prefix := fmt.Sprintf("✍  %d %s ", res.DocID, res.DocTitle)
			h.Renderer.Sentence(res.Sentence, prefix)
			return nil
		})
		if err != nil {
			return fetched, err
		}

		if cursor == newCursor {
			break // No more progress
		}
		cursor = newCursor
	}

	return fetched, nil
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{}

	word := in.GetWordBeforeCursor()
	if word == "" {
		return s
	}

	if strings.HasPrefix(quit, word) && strings.TrimSpace(in.TextBeforeCursor()) == word {
		s = append(s, prompt.Suggest{Text: quit, Description: "🔧 exit"})
	}

	return append(s, h.completeLemma(word)...)
}

func (h *Handler) completeLemma(token string) []prompt.Suggest {
	var names []string
	for l := range h.lemmas {
		if strings.HasPrefix(l, token) {
			names = append(names, l)
		}
	}

	sort.Strings(names)

	s := make([]prompt.Suggest, 0, len(names))
	for _, l := range names {
		s = append(s, prompt.Suggest{Text: l, Description: "🔖 lemma"})
	}

	return s
}
