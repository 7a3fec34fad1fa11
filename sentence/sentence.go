package sentence

// Doc is an analyzed document as handed over by the external analyzer.
type Doc struct {
	Id int `json:"id"`

	Title string `json:"title"`

	Labels     []string    `json:"labels,omitempty"`
	Paragraphs []Paragraph `json:"paragraphs"`

	// SemGraph is only present after semantic graph extraction
	SemGraph *SemGraph `json:"semgraph,omitempty"`
}

// Library is a collection of Doc
type Library []Doc

type Paragraph struct {
	Sentences []Sentence `json:"sentences"`
}

// Sentence holds the words of a sentence in surface order and the optional
// trees built by the chunker and the dependency parser.
type Sentence struct {
	Id    int    `json:"id"`
	DocId int    `json:"doc,omitempty"`
	Words []Word `json:"words"`

	ParseTree *ParseNode `json:"parse_tree,omitempty"`
	DepTree   *DepNode   `json:"dep_tree,omitempty"`
}

// Word represents a token of the sentence, with its morphological analysis
// and its ranked senses.
type Word struct {
	// The unmodified word
	Form string `json:"form"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// A string containing the morphosyntactic tag (f.ex. VMIP3S0)
	Tag string `json:"tag"`

	// Senses in ranking order, possibly empty
	Senses []Sense `json:"senses,omitempty"`
}

// Sense is a word sense identifier with its rank (f.ex. UKB page rank)
type Sense struct {
	ID   string  `json:"id"`
	Rank float64 `json:"rank"`
}

// Sentences returns all sentences of the doc, paragraph after paragraph.
func (d Doc) Sentences() []Sentence {
	var all []Sentence
	for _, p := range d.Paragraphs {
		all = append(all, p.Sentences...)
	}

	return all
}

// NumSentences counts the sentences of all paragraphs.
func (d Doc) NumSentences() int {
	n := 0
	for _, p := range d.Paragraphs {
		n += len(p.Sentences)
	}

	return n
}

// Sentence returns the i-th sentence of the doc, counting across paragraphs.
func (d Doc) Sentence(i int) (Sentence, bool) {
	if i < 0 {
		return Sentence{}, false
	}

	for _, p := range d.Paragraphs {
		if i < len(p.Sentences) {
			return p.Sentences[i], true
		}
		i -= len(p.Sentences)
	}

	return Sentence{}, false
}

// Slice returns a copy of the doc keeping only count sentences starting at
// start. A negative count keeps all sentences until the end. Paragraph
// boundaries are preserved; paragraphs left empty are dropped.
func (d Doc) Slice(start, count int) Doc {
	out := d
	out.Paragraphs = nil

	idx := 0
	for _, p := range d.Paragraphs {
		var kept []Sentence
		for _, s := range p.Sentences {
			if idx >= start && (count < 0 || idx < start+count) {
				kept = append(kept, s)
			}
			idx++
		}

		if len(kept) > 0 {
			out.Paragraphs = append(out.Paragraphs, Paragraph{Sentences: kept})
		}
	}

	return out
}

// Lemmas returns the unique non empty lemmas of the sentence, in surface order.
func (s Sentence) Lemmas() []string {
	seen := map[string]bool{}
	lemmas := []string{}
	for _, w := range s.Words {
		if w.Lemma == "" || seen[w.Lemma] {
			continue
		}
		seen[w.Lemma] = true
		lemmas = append(lemmas, w.Lemma)
	}

	return lemmas
}

// HasLemmas reports whether all lemmas occur in the sentence.
func (s Sentence) HasLemmas(lemmas []string) bool {
OUTER:
	for _, l := range lemmas {
		for _, w := range s.Words {
			if w.Lemma == l {
				continue OUTER
			}
		}
		return false
	}

	return true
}

// Text returns the word forms joined by a space.
func (s Sentence) Text() string {
	n := 0
	for _, w := range s.Words {
		n += len(w.Form) + 1
	}

	b := make([]byte, 0, n)
	for i, w := range s.Words {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, w.Form...)
	}

	return string(b)
}
