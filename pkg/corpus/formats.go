package corpus

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// SourceKind tells how a training source is read
type SourceKind int

const (
	KindUnknown SourceKind = iota
	KindFile               // a single text file
	KindDir                // a directory of text files
)

func (k SourceKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "unknown"
	}
}

// sniffSize is how much of a file is checked for text content
const sniffSize = 512

// Detect reports the kind of the source at path.
// Directories must contain at least one file matching pattern.
func Detect(path, pattern string) (SourceKind, error) {
	info, err := os.Stat(path)
	if err != nil {
		return KindUnknown, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if info.IsDir() {
		matches, err := filepath.Glob(filepath.Join(path, pattern))
		if err != nil {
			return KindUnknown, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return KindUnknown, fmt.Errorf("no %s files found in %s", pattern, path)
		}
		return KindDir, nil
	}

	if !info.Mode().IsRegular() {
		return KindUnknown, fmt.Errorf("%s is not a regular file", path)
	}
	if err := validateText(path); err != nil {
		return KindUnknown, err
	}
	return KindFile, nil
}

// validateText checks that the head of a file is readable UTF-8 without NUL bytes
func validateText(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	buf := make([]byte, sniffSize)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if n == 0 {
		log.Debugf("Training file %s is empty", path)
		return nil
	}

	head := buf[:n]
	if bytes.IndexByte(head, 0) >= 0 {
		return fmt.Errorf("%s looks like a binary file", path)
	}
	// the sniff window may end inside a multi-byte rune
	if n == sniffSize {
		for i := 0; i < utf8.UTFMax-1 && !utf8.Valid(head); i++ {
			head = head[:len(head)-1]
		}
	}
	if !utf8.Valid(head) {
		return fmt.Errorf("%s is not valid UTF-8 text", path)
	}

	log.Debugf("Text file %s validated", path)
	return nil
}
