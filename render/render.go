package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	sent "github.com/revelaction/arbol/sentence"
)

var (
	Yellow256 = "\033[1;38;5;130m"
	Green256  = "\033[1;38;5;70m"
	Off       = "\033[0m"
)

var (
	// ErrNullChild is reported when a tree node has a nil entry among its
	// children.
	ErrNullChild = errors.New("unexpected NULL child")

	// ErrMissingWord is reported when a node that must carry a word does not.
	ErrMissingWord = errors.New("node without word")
)

type Renderer struct {
	Out io.Writer

	// Err receives the structural errors when OnError is nil
	Err io.Writer

	// OnError is called for each structural error found in a tree. The
	// subtree is skipped and rendering goes on with its siblings.
	OnError func(error)

	HasColor bool

	HasPrefix bool

	// NoSenses suppresses the sense suffix of words
	NoSenses bool

	// Stage used by Sentence
	Stage Stage

	// written is set after the first byte reaches Out
	written bool
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		Out:       out,
		Err:       os.Stderr,
		HasPrefix: true,
		Stage:     StageTagged,
	}
}

// Sections renders the doc for each of the given stages. Duplicates are
// ignored and the sections follow the SupportedStages order.
func (r *Renderer) Sections(doc sent.Doc, stages []Stage) {
	for _, st := range SupportedStages() {
		for _, requested := range stages {
			if requested == st {
				r.Section(doc, st)
				break
			}
		}
	}
}

// Section writes the report section of one stage: the header and, for every
// sentence of every paragraph, the stage output. Sentences lacking the
// annotation of the stage are skipped.
func (r *Renderer) Section(doc sent.Doc, st Stage) {
	if r.written {
		r.write("\n")
	}
	r.write(st.Header() + "\n")

	if st == StageSemGraph {
		r.write(r.SemGraphString(doc.SemGraph))
		return
	}

	for _, p := range doc.Paragraphs {
		for _, s := range p.Sentences {
			r.write(r.sentenceString(s, st))
		}
	}
}

// Sentence renders one sentence with the Renderer Stage. The sentence text,
// preceded by prefix, is written first if HasPrefix is set.
func (r *Renderer) Sentence(s sent.Sentence, prefix string) {
	if r.HasPrefix {
		r.write(fmt.Sprintf("%s%s\n", prefix, s.Text()))
	}

	st := r.Stage
	if st == StageSemGraph {
		st = StageTagged
	}

	r.write(r.sentenceString(s, st))
}

func (r *Renderer) sentenceString(s sent.Sentence, st Stage) string {
	switch st {
	case StageTagged:
		return r.TaggedString(s)
	case StageParsed:
		if s.ParseTree == nil {
			return ""
		}
		return r.ParseTreeString(s.ParseTree, 0)
	case StageDep:
		if s.DepTree == nil {
			return ""
		}
		return r.DepTreeString(s.DepTree, 0)
	}

	return ""
}

// TaggedString returns one line per word and a blank line after the
// sentence.
func (r *Renderer) TaggedString(s sent.Sentence) string {
	var str strings.Builder
	for _, w := range s.Words {
		str.WriteString(w.Form + " " + w.Lemma + " " + w.Tag)
		str.WriteString(r.senses(w))
		str.WriteString("\n")
	}

	str.WriteString("\n")
	return str.String()
}

// SemGraphString lists the entities and then the frames with their
// arguments, in the order of the graph.
func (r *Renderer) SemGraphString(g *sent.SemGraph) string {
	if g == nil {
		return ""
	}

	var str strings.Builder
	for _, e := range g.Entities {
		fmt.Fprintf(&str, "ENTITY %s : %s\n", e.ID, e.Lemma)
	}

	for _, f := range g.Frames {
		fmt.Fprintf(&str, "FRAME %s : %s\n", f.ID, f.Lemma)
		for _, a := range f.Args {
			fmt.Fprintf(&str, "     ARG %s : %s\n", a.Role, a.Entity)
		}
	}

	return str.String()
}

// NextStage sets the Renderer Stage to the next sentence level stage,
// following the SentenceStages() order.
func (r *Renderer) NextStage() {

	supported := SentenceStages()
	for i, st := range supported {
		if st == r.Stage {
			switch i {
			case len(supported) - 1:
				r.Stage = supported[0]
			default:
				r.Stage = supported[i+1]
			}

			return
		}
	}

	r.Stage = supported[0]
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}

func (r *Renderer) write(s string) {
	if s == "" {
		return
	}

	r.written = true
	io.WriteString(r.Out, s)
}

func (r *Renderer) report(err error) {
	if r.OnError != nil {
		r.OnError(err)
		return
	}

	if r.Err != nil {
		fmt.Fprintf(r.Err, "ERROR: %v\n", err)
	}
}

// word renders the parenthesized analysis of a word: (form lemma tag senses)
func (r *Renderer) word(w sent.Word) string {
	return "(" + w.Form + " " + w.Lemma + " " + w.Tag + r.senses(w) + ")"
}

func (r *Renderer) senses(w sent.Word) string {
	if r.NoSenses {
		return ""
	}

	return Senses(w)
}

func (r *Renderer) color(s, color string) string {
	if !r.HasColor {
		return s
	}

	return color + s + Off
}

func (r *Renderer) headMark(isHead bool) string {
	if !isHead {
		return ""
	}

	return r.color("+", Green256)
}

func indent(str *strings.Builder, depth int) {
	str.WriteString(strings.Repeat("  ", depth))
}
