package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file read when no path is given
const DefaultFile = "arbol.yaml"

// Config holds the defaults of the command line flags. Flags and
// environment variables override them.
type Config struct {
	// Path to a docs directory or a SQLite file
	DocPath string `yaml:"doc_path"`

	// Stages printed by the doc command
	Stages []string `yaml:"stages"`

	NoSenses bool   `yaml:"no_senses"`
	LogLevel string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		Stages:   []string{"tagged", "parsed", "dep", "semgraph"},
		LogLevel: "warn",
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return c, nil
}
