package render

import (
	"encoding/json"
	"io"

	sent "github.com/revelaction/arbol/sentence"
)

// JSONRenderer writes documents as indented JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the doc, trees and semantic graph included.
func (r *JSONRenderer) Render(doc sent.Doc) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
