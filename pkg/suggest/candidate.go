package suggest

import (
	"fmt"
	"sort"
)

// Candidate is one ranked completion: a word and how often it was seen.
type Candidate struct {
	Word       string
	Confidence int
}

// Ranks reports whether c sorts before other.
// Higher confidence comes first; equal confidence falls back to the
// lexicographically greater word.
func (c Candidate) Ranks(other Candidate) bool {
	if c.Confidence != other.Confidence {
		return c.Confidence > other.Confidence
	}
	return c.Word > other.Word
}

// String renders the candidate as `"word" (confidence)`.
func (c Candidate) String() string {
	return fmt.Sprintf("\"%s\" (%d)", c.Word, c.Confidence)
}

// SortCandidates orders candidates in place by rank.
func SortCandidates(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Ranks(candidates[j])
	})
}
