package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sent "github.com/revelaction/arbol/sentence"
)

const docJSON = `{
  "title": "juan.json",
  "labels": ["es", "test"],
  "paragraphs": [{"sentences": [{
    "words": [
      {"form": "Juan", "lemma": "juan", "tag": "NP00000"},
      {"form": "come", "lemma": "comer", "tag": "VMIP3S0", "senses": [{"id": "S1", "rank": 0.7}]}
    ],
    "parse_tree": {"label": "S", "children": [
      {"word": {"form": "Juan", "lemma": "juan", "tag": "NP00000"}},
      null
    ]},
    "dep_tree": {"label": "top", "link": "top",
      "word": {"form": "come", "lemma": "comer", "tag": "VMIP3S0", "senses": [{"id": "S1", "rank": 0.7}]},
      "children": [
        {"label": "subj", "link": "subj", "word": {"form": "Juan", "lemma": "juan", "tag": "NP00000"}, "chunk": true, "chunk_ord": 1}
      ]}
  }]}],
  "semgraph": {"entities": [{"id": "E1", "lemma": "juan"}], "frames": [{"id": "F1", "lemma": "comer", "args": [{"role": "A0", "entity": "E1"}]}]}
}`

// fixture writes a docs directory with one doc and returns it
func fixture(t *testing.T) string {
	t.Helper()
	t.Setenv("ARBOL_DOC_PATH", "")
	t.Setenv("ARBOL_LOG_LEVEL", "")

	dir := filepath.Join(t.TempDir(), "docs")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "juan.json"), []byte(docJSON), 0644); err != nil {
		t.Fatal(err)
	}

	return dir
}

// run executes the app without any config file
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}

	cfg := filepath.Join(t.TempDir(), "none.yaml")
	full := append([]string{"arbol", "--config", cfg}, args...)
	err := newApp(ui).Run(full)
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}

	if out != "arbol version dev (commit: none)\n" {
		t.Errorf("got %q", out)
	}
}

func TestDocFileDepStage(t *testing.T) {
	dir := fixture(t)

	out, _, err := run(t, "doc", "--stage", "dep", filepath.Join(dir, "juan.json"))
	if err != nil {
		t.Fatal(err)
	}

	expected := "-------- DEPENDENCY PARSER results -----------\n" +
		"top/top/(come comer VMIP3S0 S1:0.7) [\n" +
		"  subj/subj/(Juan juan NP00000)\n" +
		"]\n"

	if out != expected {
		t.Errorf("\ngot:\n%s\nexpected:\n%s", out, expected)
	}
}

func TestDocNoSenses(t *testing.T) {
	dir := fixture(t)

	out, _, err := run(t, "-d", dir, "doc", "--stage", "tagged", "--no-senses", "0")
	if err != nil {
		t.Fatal(err)
	}

	expected := "-------- TAGGER results -----------\n" +
		"Juan juan NP00000\n" +
		"come comer VMIP3S0\n" +
		"\n"

	if out != expected {
		t.Errorf("\ngot:\n%q\nexpected:\n%q", out, expected)
	}
}

func TestDocNullChildIsLogged(t *testing.T) {
	dir := fixture(t)

	out, errOut, err := run(t, "doc", "--stage", "parsed", filepath.Join(dir, "juan.json"))
	if err != nil {
		t.Fatal(err)
	}

	expected := "-------- CHUNKER results -----------\n" +
		"S_[\n" +
		"  (Juan juan NP00000)\n" +
		"]\n"

	if out != expected {
		t.Errorf("\ngot:\n%s\nexpected:\n%s", out, expected)
	}

	if !strings.Contains(errOut, "unexpected NULL child") || !strings.Contains(errOut, "juan.json") {
		t.Errorf("expected logged error, got %q", errOut)
	}
}

func TestDocJSON(t *testing.T) {
	dir := fixture(t)

	out, _, err := run(t, "doc", "--format", "json", filepath.Join(dir, "juan.json"))
	if err != nil {
		t.Fatal(err)
	}

	var doc sent.Doc
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid json output: %v", err)
	}

	if doc.NumSentences() != 1 || doc.SemGraph == nil {
		t.Errorf("unexpected doc %+v", doc)
	}
}

func TestDocUnknownStage(t *testing.T) {
	dir := fixture(t)

	if _, _, err := run(t, "doc", "--stage", "morfo", filepath.Join(dir, "juan.json")); err == nil {
		t.Error("expected error for unknown stage")
	}
}

func TestDocNoDocPath(t *testing.T) {
	fixture(t)

	_, _, err := run(t, "doc", "3")
	if !errors.Is(err, errNoDocPath) {
		t.Errorf("expected errNoDocPath, got %v", err)
	}
}

func TestLsDocAndLabels(t *testing.T) {
	dir := fixture(t)

	out, _, err := run(t, "-d", dir, "ls-doc")
	if err != nil {
		t.Fatal(err)
	}
	if out != "📖 0 juan.json\n" {
		t.Errorf("got %q", out)
	}

	out, _, err = run(t, "-d", dir, "ls-doc", "--label", "nothing")
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("expected no docs, got %q", out)
	}

	out, _, err = run(t, "-d", dir, "ls-labels")
	if err != nil {
		t.Fatal(err)
	}
	if out != "es, test\n" {
		t.Errorf("got %q", out)
	}
}

func TestSentence(t *testing.T) {
	dir := fixture(t)

	out, _, err := run(t, "sentence", filepath.Join(dir, "juan.json"), "0")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(out, "✍  0 Juan come\nJuan juan NP00000\n") {
		t.Errorf("unexpected output %q", out)
	}

	if !strings.Contains(out, `"comer"`) || !strings.Contains(out, "S1:0.7") {
		t.Errorf("word table missing, got %q", out)
	}

	if _, _, err := run(t, "sentence", filepath.Join(dir, "juan.json"), "1"); err == nil {
		t.Error("expected out of bounds error")
	}
}

func TestStat(t *testing.T) {
	dir := fixture(t)

	out, _, err := run(t, "stat", filepath.Join(dir, "juan.json"))
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Num paragraphs 1, num sentences 1, num words 2, num words per sentence 2\n",
		"Num parse trees 1, num dependency trees 1, num chunks 1, max dependency depth 2\n",
		"Num words with senses 1, num entities 1, num frames 1\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestImportExportDoc(t *testing.T) {
	dir := fixture(t)
	db := filepath.Join(t.TempDir(), "arbol.db")

	out, _, err := run(t, "import-doc", "--from", dir, "--to", db)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out, "Successfully imported 1 docs") {
		t.Errorf("got %q", out)
	}

	// sqlite ids start at 1
	out, _, err = run(t, "-d", db, "doc", "--stage", "semgraph", "1")
	if err != nil {
		t.Fatalf("doc: %v", err)
	}
	expected := "-------- SEMANTIC GRAPH results -----------\n" +
		"ENTITY E1 : juan\n" +
		"FRAME F1 : comer\n" +
		"     ARG A0 : E1\n"
	if out != expected {
		t.Errorf("\ngot:\n%q\nexpected:\n%q", out, expected)
	}

	target := filepath.Join(t.TempDir(), "exported")
	out, _, err = run(t, "export-doc", "--from", db, "--to", target)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "Successfully exported 1 docs") {
		t.Errorf("got %q", out)
	}

	out, _, err = run(t, "doc", "--stage", "dep", filepath.Join(target, "juan.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "  subj/subj/(Juan juan NP00000)\n") {
		t.Errorf("exported doc lost its dependency tree: %q", out)
	}
}

func TestBash(t *testing.T) {
	out, _, err := run(t, "bash")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "complete -o default -F _arbol_autocomplete arbol") {
		t.Errorf("unexpected script %q", out)
	}
}
