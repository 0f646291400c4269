package suggest

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

var _ ICompleter = (*AutocompleteProvider)(nil)

// AutocompleteProvider trains a FrequencyIndex and answers prefix queries
// against it.
type AutocompleteProvider struct {
	index *FrequencyIndex
}

// NewProvider creates an untrained provider.
func NewProvider() *AutocompleteProvider {
	return &AutocompleteProvider{
		index: NewFrequencyIndex(),
	}
}

// NewProviderFrom creates a provider and trains it once on everything
// read from source.
func NewProviderFrom(source io.Reader) (*AutocompleteProvider, error) {
	p := NewProvider()
	if source == nil {
		return p, nil
	}
	data, err := io.ReadAll(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read training source: %w", err)
	}
	p.Train(string(data))
	return p, nil
}

// Train adds the words of passage to the index. Repeated calls accumulate.
func (p *AutocompleteProvider) Train(passage string) {
	counts := CountWords(passage)
	if len(counts) == 0 {
		log.Debug("Training passage had no words")
		return
	}
	p.index.Add(counts)
	log.Debugf("Trained %d distinct words (%d indexed)", len(counts), p.index.Len())
}

// GetWords returns the trained words starting with fragment, highest
// confidence first. Fragment matching is case-insensitive.
func (p *AutocompleteProvider) GetWords(fragment string) []Candidate {
	candidates := p.index.Search(NormalizeFragment(fragment))
	SortCandidates(candidates)
	return candidates
}

// Trained reports whether any word has been indexed yet.
func (p *AutocompleteProvider) Trained() bool {
	return p.index.Len() > 0
}

// Stats returns statistics about the indexed words.
func (p *AutocompleteProvider) Stats() map[string]int {
	return p.index.Stats()
}
