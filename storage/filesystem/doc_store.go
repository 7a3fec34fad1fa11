package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	sent "github.com/revelaction/arbol/sentence"
	"github.com/revelaction/arbol/storage"
)

// DocStore is a directory of JSON documents. Document ids are the position
// of the file in the (sorted) directory listing; the title is the file name.
type DocStore struct {
	docDir string

	// In-memory cache
	docs   []sent.Doc
	loaded bool
}

var _ storage.DocRepository = (*DocStore)(nil)
var _ storage.Preloader = (*DocStore)(nil)

// NewDocStore creates a filesystem document handler.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	docs := make([]sent.Doc, 0, len(files))

	idx := 0
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}

		docs = append(docs, sent.Doc{
			Id:    idx,
			Title: file.Name(),
		})
		idx++
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
	}, nil
}

// Preload loads the contents of all docs into memory.
// The callback is called for each file loaded (current, total, name).
func (h *DocStore) Preload(cb func(current, total int, name string)) error {
	if h.loaded {
		return nil
	}

	total := len(h.docs)
	for i := range h.docs {
		doc := &h.docs[i] // pointer to modify in place

		if cb != nil {
			cb(i+1, total, doc.Title)
		}

		fullDoc, err := ReadDoc(filepath.Join(h.docDir, doc.Title))
		if err != nil {
			return fmt.Errorf("doc %s: %w", doc.Title, err)
		}

		// Copy loaded content into existing metadata struct
		doc.Labels = fullDoc.Labels
		doc.Paragraphs = fullDoc.Paragraphs
		doc.SemGraph = fullDoc.SemGraph
		// Title and Id are already set
	}

	h.loaded = true
	return nil
}

func (h *DocStore) List(labelMatch string) ([]sent.Doc, error) {
	// labels live inside the files
	if labelMatch != "" {
		if err := h.Preload(nil); err != nil {
			return nil, err
		}
	}

	docs := make([]sent.Doc, 0, len(h.docs))
	for _, doc := range h.docs {
		if !storage.HasLabel(doc.Labels, labelMatch) {
			continue
		}

		docs = append(docs, sent.Doc{Id: doc.Id, Title: doc.Title, Labels: doc.Labels})
	}

	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("doc id %d: %w", id, storage.ErrNotFound)
	}

	if h.loaded {
		return h.docs[id], nil
	}

	doc, err := ReadDoc(filepath.Join(h.docDir, h.docs[id].Title))
	if err != nil {
		return sent.Doc{}, err
	}

	doc.Id = id
	doc.Title = h.docs[id].Title
	return doc, nil
}

// FindCandidates scans the sentences of all docs in memory. Row ids are the
// position of the sentence across all docs, starting at 1.
func (h *DocStore) FindCandidates(lemmas []string, after storage.Cursor, limit int, onCandidate func(storage.SentenceResult) error) (storage.Cursor, error) {
	if len(lemmas) == 0 {
		return after, nil
	}

	if err := h.Preload(nil); err != nil {
		return after, err
	}

	cursor := after
	found := 0
	var rowID int64
	for _, doc := range h.docs {
		for _, s := range doc.Sentences() {
			rowID++
			if storage.Cursor(rowID) <= after {
				continue
			}

			if !s.HasLemmas(lemmas) {
				continue
			}

			s.DocId = doc.Id
			err := onCandidate(storage.SentenceResult{
				RowID:    rowID,
				DocID:    doc.Id,
				DocTitle: doc.Title,
				Sentence: s,
			})
			if err != nil {
				return cursor, err
			}

			cursor = storage.Cursor(rowID)
			found++
			if limit > 0 && found >= limit {
				return cursor, nil
			}
		}
	}

	return cursor, nil
}

func (h *DocStore) Labels(pattern string) ([]string, error) {
	if err := h.Preload(nil); err != nil {
		return nil, err
	}

	return uniqueLabels(h.docs, pattern), nil
}

// Write stores the doc as <title>.json in the directory, replacing a doc
// with the same title.
func (h *DocStore) Write(doc sent.Doc) error {
	name := doc.Title
	if filepath.Ext(name) != ".json" {
		name += ".json"
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(h.docDir, name), data, 0644); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	for i := range h.docs {
		if h.docs[i].Title == name {
			doc.Id = h.docs[i].Id
			doc.Title = name
			h.docs[i] = doc
			return nil
		}
	}

	doc.Id = len(h.docs)
	doc.Title = name
	h.docs = append(h.docs, doc)
	return nil
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	return doc, nil
}

func uniqueLabels(docs []sent.Doc, pattern string) []string {
	seen := map[string]bool{}
	labels := []string{}
	for _, doc := range docs {
		for _, l := range doc.Labels {
			if seen[l] || !storage.HasLabel([]string{l}, pattern) {
				continue
			}
			seen[l] = true
			labels = append(labels, l)
		}
	}

	sort.Strings(labels)
	return labels
}
