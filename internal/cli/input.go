// Package cli runs the interactive loop: one fragment per line in, the top
// ranked candidates per line out.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/timhillgit/asymmetrik/pkg/suggest"
)

// InputHandler reads fragments line by line and writes the best
// candidates for each one.
type InputHandler struct {
	completer    suggest.ICompleter
	suggestLimit int
	prompt       bool
	requestCount int
}

// NewInputHandler creates a handler printing at most limit candidates per
// line. With prompt set, a "> " prompt is logged before every read.
func NewInputHandler(completer suggest.ICompleter, limit int, prompt bool) *InputHandler {
	return &InputHandler{
		completer:    completer,
		suggestLimit: limit,
		prompt:       prompt,
	}
}

// Run loops until in is exhausted. Every input line produces exactly one
// output line, which is empty when nothing matches. EOF ends the loop
// without error.
func (h *InputHandler) Run(in io.Reader, out io.Writer) error {
	if h.prompt {
		log.Print("type a fragment and press Enter to see completions (Ctrl+D to exit):")
	}
	reader := bufio.NewReader(in)

	for {
		if h.prompt {
			log.Print("> ")
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if line != "" {
			if werr := h.handleInput(out, strings.TrimSpace(line)); werr != nil {
				return werr
			}
		}
		if err != nil {
			log.Debugf("Input closed after %d requests", h.requestCount)
			return nil
		}
	}
}

// handleInput answers a single fragment.
func (h *InputHandler) handleInput(out io.Writer, fragment string) error {
	h.requestCount++
	start := time.Now()

	candidates := h.completer.GetWords(fragment)

	log.Debugf("Took [ %v ] for fragment '%s', %d matches", time.Since(start), fragment, len(candidates))

	if _, err := fmt.Fprintln(out, FormatCandidates(candidates, h.suggestLimit)); err != nil {
		return fmt.Errorf("failed to write completions: %w", err)
	}
	return nil
}
