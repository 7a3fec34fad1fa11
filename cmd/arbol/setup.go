package main

import (
	"fmt"
	"os"
	"strconv"

	sent "github.com/revelaction/arbol/sentence"
	"github.com/revelaction/arbol/storage"
	"github.com/revelaction/arbol/storage/filesystem"
	"github.com/revelaction/arbol/storage/sqlite/zombiezen"
)

// NewDocRepository returns a filesystem store for a directory and a SQLite
// store for a file.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

func (e *env) repository() (storage.DocRepository, error) {
	path, err := e.docPath()
	if err != nil {
		return nil, err
	}

	return NewDocRepository(&e.pool, path)
}

// loadDoc reads source as a JSON doc file if it exists, otherwise as a doc
// id of the repository.
func (e *env) loadDoc(source string) (sent.Doc, error) {
	if info, err := os.Stat(source); err == nil && !info.IsDir() {
		doc, err := filesystem.ReadDoc(source)
		if err != nil {
			return sent.Doc{}, fmt.Errorf("filesystem document %q: %w", source, err)
		}
		return doc, nil
	}

	id, err := strconv.Atoi(source)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("file not found and not a valid doc id: %s", source)
	}

	repo, err := e.repository()
	if err != nil {
		return sent.Doc{}, err
	}

	return repo.Read(id)
}
