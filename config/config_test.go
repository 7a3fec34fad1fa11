package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.LogLevel != "warn" || len(c.Stages) != 4 {
		t.Errorf("expected defaults, got %+v", c)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arbol.yaml")
	data := "doc_path: /var/docs\nstages: [tagged, dep]\nno_senses: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.DocPath != "/var/docs" || !c.NoSenses {
		t.Errorf("unexpected config %+v", c)
	}

	if len(c.Stages) != 2 || c.Stages[1] != "dep" {
		t.Errorf("unexpected stages %v", c.Stages)
	}

	// not in the file
	if c.LogLevel != "warn" {
		t.Errorf("expected default log level, got %q", c.LogLevel)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arbol.yaml")
	if err := os.WriteFile(path, []byte("stages: {"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
