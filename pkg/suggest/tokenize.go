package suggest

import "strings"

// Punctuation is the set stripped from both ends of every trained word.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// NormalizeWord lowercases a raw token and trims surrounding punctuation.
// Punctuation inside the word is kept, so "don't" stays "don't".
func NormalizeWord(token string) string {
	return strings.Trim(strings.ToLower(token), Punctuation)
}

// NormalizeFragment lowercases a typed prefix. It is matched literally, so
// punctuation is left alone.
func NormalizeFragment(fragment string) string {
	return strings.ToLower(fragment)
}

// Tokenize splits a passage on whitespace and returns its normalized words
// in order. Tokens that are nothing but punctuation are dropped.
func Tokenize(passage string) []string {
	fields := strings.Fields(passage)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		if word := NormalizeWord(field); word != "" {
			words = append(words, word)
		}
	}
	return words
}

// CountWords groups the words of a passage and counts each one.
func CountWords(passage string) map[string]int {
	counts := make(map[string]int)
	for _, word := range Tokenize(passage) {
		counts[word]++
	}
	return counts
}
