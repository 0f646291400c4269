// Package corpus reads training text from disk for the autocomplete provider.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Loader reads a training source fully into memory
type Loader struct {
	pattern  string
	maxBytes int
}

// Stats describes what the last Load read
type Stats struct {
	Kind  SourceKind
	Files int
	Bytes int
}

// NewLoader creates a loader. Directory sources read the files matching
// pattern; maxBytes caps the total corpus size, 0 disables the cap.
func NewLoader(pattern string, maxBytes int) *Loader {
	if pattern == "" {
		pattern = "*.txt"
	}
	return &Loader{
		pattern:  pattern,
		maxBytes: maxBytes,
	}
}

// Load returns the text of the source at path. A directory yields its
// matching files in name order, separated by newlines.
func (l *Loader) Load(path string) (string, Stats, error) {
	kind, err := Detect(path, l.pattern)
	if err != nil {
		return "", Stats{}, err
	}

	files := []string{path}
	if kind == KindDir {
		files, err = filepath.Glob(filepath.Join(path, l.pattern))
		if err != nil {
			return "", Stats{}, fmt.Errorf("failed to scan %s: %w", path, err)
		}
		sort.Strings(files)
	}

	stats := Stats{Kind: kind}
	var sb strings.Builder
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", Stats{}, fmt.Errorf("failed to read training file %s: %w", file, err)
		}
		if l.maxBytes > 0 && stats.Bytes+len(data) > l.maxBytes {
			return "", Stats{}, fmt.Errorf("training corpus %s exceeds %d bytes", path, l.maxBytes)
		}
		if stats.Files > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(data)
		stats.Files++
		stats.Bytes += len(data)
		log.Debugf("Read %d bytes from %s", len(data), file)
	}

	return sb.String(), stats, nil
}
