package suggest

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// FrequencyIndex maps normalized words to the number of times they were
// trained, keyed by a Patricia trie so prefix subtrees are cheap to walk.
type FrequencyIndex struct {
	trie          *patricia.Trie
	words         int
	tokens        int
	maxConfidence int
	mu            sync.RWMutex
}

// NewFrequencyIndex creates an empty index.
func NewFrequencyIndex() *FrequencyIndex {
	return &FrequencyIndex{
		trie: patricia.NewTrie(),
	}
}

// Add folds already counted words into the index. Existing counts are
// increased, never replaced. The whole batch is applied under one write lock.
func (fi *FrequencyIndex) Add(counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	fi.mu.Lock()
	defer fi.mu.Unlock()

	for word, count := range counts {
		if word == "" || count < 1 {
			continue
		}
		key := patricia.Prefix(word)
		current := confidenceOf(fi.trie.Get(key))
		if current == 0 {
			fi.words++
		}
		total := current + count
		fi.trie.Set(key, total)
		fi.tokens += count
		if total > fi.maxConfidence {
			fi.maxConfidence = total
		}
	}
}

// Confidence returns the count stored for an exact normalized word.
func (fi *FrequencyIndex) Confidence(word string) int {
	fi.mu.RLock()
	defer fi.mu.RUnlock()
	return confidenceOf(fi.trie.Get(patricia.Prefix(word)))
}

// Search collects every word that starts with lowerPrefix, the prefix
// itself included, unsorted. An empty prefix matches nothing.
func (fi *FrequencyIndex) Search(lowerPrefix string) []Candidate {
	candidates := []Candidate{}
	if lowerPrefix == "" {
		return candidates
	}

	fi.mu.RLock()
	defer fi.mu.RUnlock()

	err := fi.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		candidates = append(candidates, Candidate{
			Word:       string(p),
			Confidence: confidenceOf(item),
		})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
	return candidates
}

// Len returns the number of distinct words.
func (fi *FrequencyIndex) Len() int {
	fi.mu.RLock()
	defer fi.mu.RUnlock()
	return fi.words
}

// Stats returns word, token and peak confidence counts.
func (fi *FrequencyIndex) Stats() map[string]int {
	fi.mu.RLock()
	defer fi.mu.RUnlock()
	return map[string]int{
		"words":         fi.words,
		"tokens":        fi.tokens,
		"maxConfidence": fi.maxConfidence,
	}
}

func confidenceOf(item patricia.Item) int {
	switch v := item.(type) {
	case nil:
		return 0
	case int:
		return v
	default:
		log.Errorf("Unknown item type in index: %T", item)
		return 0
	}
}
