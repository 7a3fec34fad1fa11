package render

import (
	"strings"
	"testing"

	sent "github.com/revelaction/arbol/sentence"
)

func TestSenses(t *testing.T) {
	tests := []struct {
		name     string
		senses   []sent.Sense
		expected string
	}{
		{"empty", nil, ""},
		{"one", []sent.Sense{{ID: "S1", Rank: 1}}, " S1:1"},
		{"two", []sent.Sense{{ID: "S1", Rank: 0.7}, {ID: "S2", Rank: 0.3}}, " S1:0.7/S2:0.3"},
		{"order kept", []sent.Sense{{ID: "B", Rank: 0.1}, {ID: "A", Rank: 0.9}}, " B:0.1/A:0.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Senses(sent.Word{Form: "x", Senses: tt.senses})
			if got != tt.expected {
				t.Errorf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSensesEmptyHasNoSeparator(t *testing.T) {
	got := Senses(sent.Word{Form: "x", Senses: []sent.Sense{}})
	if strings.Contains(got, "/") || got != "" {
		t.Errorf("expected empty suffix, got %q", got)
	}
}

func TestFormatRank(t *testing.T) {
	tests := map[float64]string{
		0.7:         "0.7",
		1:           "1",
		0:           "0",
		0.123456789: "0.123457",
		0.00001:     "1e-05",
		1234567:     "1.23457e+06",
	}

	for rank, expected := range tests {
		if got := FormatRank(rank); got != expected {
			t.Errorf("FormatRank(%v): got %q, expected %q", rank, got, expected)
		}
	}
}
