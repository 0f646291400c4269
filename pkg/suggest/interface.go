// Package suggest is the core, keeping word frequencies in a Patricia trie and
// ranking every word under a typed prefix.
package suggest

// ICompleter defines the interface for frequency-ranked word completion
type ICompleter interface {
	// Train folds the words of a passage into the index
	Train(passage string)

	// GetWords returns every trained word starting with fragment, ranked
	GetWords(fragment string) []Candidate

	// Trained reports whether at least one word has been indexed
	Trained() bool

	// Stats returns statistics about the indexed words
	Stats() map[string]int
}
