package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	sent "github.com/revelaction/arbol/sentence"
	"github.com/revelaction/arbol/storage"
)

func testDoc(title string, labels []string, lemmas ...string) sent.Doc {
	var words []sent.Word
	for _, l := range lemmas {
		words = append(words, sent.Word{Form: l, Lemma: l, Tag: "NC"})
	}

	return sent.Doc{
		Title:  title,
		Labels: labels,
		Paragraphs: []sent.Paragraph{
			{Sentences: []sent.Sentence{{Words: words}}},
			{Sentences: []sent.Sentence{{Words: []sent.Word{{Form: "fin", Lemma: "fin", Tag: "NC"}}}}},
		},
	}
}

func newStore(t *testing.T) *DocStore {
	t.Helper()

	dir := t.TempDir()
	// not a doc
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	st, err := NewDocStore(dir)
	if err != nil {
		t.Fatalf("NewDocStore: %v", err)
	}

	if err := st.Write(testDoc("a", []string{"novel", "es"}, "perro", "comer")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := st.Write(testDoc("b.json", []string{"poem"}, "perro", "dormir")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	return st
}

func TestWriteAndRead(t *testing.T) {
	st := newStore(t)

	// a fresh store sees the files on disk
	fresh, err := NewDocStore(st.docDir)
	if err != nil {
		t.Fatal(err)
	}

	docs, err := fresh.List("")
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 || docs[0].Title != "a.json" || docs[1].Title != "b.json" {
		t.Fatalf("unexpected docs %+v", docs)
	}

	doc, err := fresh.Read(1)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if doc.Id != 1 || doc.Title != "b.json" || len(doc.Paragraphs) != 2 {
		t.Errorf("unexpected doc %+v", doc)
	}
	if doc.Paragraphs[0].Sentences[0].Words[1].Lemma != "dormir" {
		t.Errorf("unexpected words %+v", doc.Paragraphs[0].Sentences[0].Words)
	}

	if _, err := fresh.Read(2); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListLabelMatch(t *testing.T) {
	st := newStore(t)

	docs, err := st.List("poe")
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || docs[0].Title != "b.json" {
		t.Fatalf("unexpected docs %+v", docs)
	}

	if docs[0].Paragraphs != nil {
		t.Errorf("List must not return content")
	}
}

func TestLabels(t *testing.T) {
	st := newStore(t)

	labels, err := st.Labels("")
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"es", "novel", "poem"}
	if len(labels) != len(expected) {
		t.Fatalf("got %v, expected %v", labels, expected)
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("got %v, expected %v", labels, expected)
		}
	}

	labels, _ = st.Labels("o")
	if len(labels) != 2 {
		t.Errorf("got %v", labels)
	}
}

func TestFindCandidates(t *testing.T) {
	st := newStore(t)

	var found []storage.SentenceResult
	cursor, err := st.FindCandidates([]string{"perro"}, 0, 1, func(r storage.SentenceResult) error {
		found = append(found, r)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 || found[0].DocTitle != "a.json" || cursor != 1 {
		t.Fatalf("unexpected first page %+v cursor %d", found, cursor)
	}

	// rows: a.json has 1 and 2, b.json has 3 and 4
	cursor, err = st.FindCandidates([]string{"perro"}, cursor, 10, func(r storage.SentenceResult) error {
		found = append(found, r)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 2 || found[1].DocTitle != "b.json" || found[1].Sentence.DocId != 1 || cursor != 3 {
		t.Fatalf("unexpected second page %+v cursor %d", found, cursor)
	}

	n := 0
	_, err = st.FindCandidates([]string{"perro", "comer"}, 0, 10, func(storage.SentenceResult) error {
		n++
		return nil
	})
	if err != nil || n != 1 {
		t.Errorf("expected 1 sentence with both lemmas, got %d (%v)", n, err)
	}
}

func TestWriteReplacesSameTitle(t *testing.T) {
	st := newStore(t)

	if err := st.Write(testDoc("a", []string{"other"}, "gato")); err != nil {
		t.Fatal(err)
	}

	docs, _ := st.List("")
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}

	doc, err := st.Read(0)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Labels[0] != "other" {
		t.Errorf("doc not replaced: %+v", doc)
	}
}

func TestReadDocErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadDoc(path); err == nil {
		t.Error("expected JSON decoding error")
	}

	if _, err := ReadDoc(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected IO error")
	}
}
