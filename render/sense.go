package render

import (
	"strconv"
	"strings"

	sent "github.com/revelaction/arbol/sentence"
)

// Senses returns the sense suffix of a word: a space followed by the senses
// in ranking order, as sense:rank pairs separated by "/". A word without
// senses has an empty suffix.
//
//	[("S1",0.7),("S2",0.3)] -> " S1:0.7/S2:0.3"
func Senses(w sent.Word) string {
	if len(w.Senses) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(w.Senses))
	for _, s := range w.Senses {
		pairs = append(pairs, s.ID+":"+FormatRank(s.Rank))
	}

	return " " + strings.Join(pairs, "/")
}

// FormatRank formats a rank like a default C++ output stream does (%g with
// six significant digits), independently of the locale.
func FormatRank(rank float64) string {
	return strconv.FormatFloat(rank, 'g', 6, 64)
}
