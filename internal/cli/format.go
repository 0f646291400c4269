package cli

import (
	"strings"

	"github.com/timhillgit/asymmetrik/pkg/suggest"
)

// FormatCandidates joins the first limit candidates as
// `"word" (confidence), "word" (confidence)`. A limit below 1 keeps them all.
func FormatCandidates(candidates []suggest.Candidate, limit int) string {
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	parts := make([]string, len(candidates))
	for i, c := range candidates {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
