package storage

import (
	"errors"
	"strings"

	sent "github.com/revelaction/arbol/sentence"
)

// ErrNotFound is returned when a document does not exist in the repository.
var ErrNotFound = errors.New("not found")

// Cursor for paginated lemma-based queries
type Cursor int64

// SentenceResult is a sentence found by FindCandidates
type SentenceResult struct {
	RowID    int64
	DocID    int
	DocTitle string
	Sentence sent.Sentence
}

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// If labelMatch is not empty, only documents with at least one label containing the string are returned.
	// Content (Paragraphs, SemGraph) is not loaded.
	List(labelMatch string) ([]sent.Doc, error)

	// Read returns a document by ID
	Read(id int) (sent.Doc, error)

	// FindCandidates returns sentences containing ALL given lemmas, resuming
	// after the given cursor. It calls onCandidate for each result.
	// Returns the new cursor and any error.
	FindCandidates(lemmas []string, after Cursor, limit int, onCandidate func(SentenceResult) error) (Cursor, error)

	// Labels returns all unique labels found across all documents, sorted alphabetically.
	// If pattern is not empty, it returns labels that contain the pattern.
	Labels(pattern string) ([]string, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document and its sentences/lemmas to storage
	Write(doc sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// Preloader defines an optional capability for repositories that require
// or support eager loading of data into memory.
type Preloader interface {
	Preload(cb func(current, total int, name string)) error
}

// HasLabel reports whether at least one of labels contains match. An empty
// match is always satisfied.
func HasLabel(labels []string, match string) bool {
	if match == "" {
		return true
	}

	for _, l := range labels {
		if strings.Contains(l, match) {
			return true
		}
	}

	return false
}
