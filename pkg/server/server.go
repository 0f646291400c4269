package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/timhillgit/asymmetrik/pkg/config"
	"github.com/timhillgit/asymmetrik/pkg/suggest"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	ActionComplete = "complete"
	ActionTrain    = "train"
	ActionStats    = "stats"
	ActionHealth   = "health"
)

// Server handles msgpack IPC for word completions
type Server struct {
	completer    suggest.ICompleter
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates a server reading requests from in and writing
// responses to out.
func NewServer(completer suggest.ICompleter, cfg *config.Config, in io.Reader, out io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		completer: completer,
		config:    cfg,
		decoder:   msgpack.NewDecoder(in),
		encoder:   msgpack.NewEncoder(out),
	}
}

// Start sends the ready message and serves requests until the input ends.
// A message that cannot be decoded is answered with an error and stops the
// server, since the stream can't be resynchronised.
func (s *Server) Start() error {
	log.Debug("Starting server")
	if err := s.encoder.Encode(StatusResponse{Status: "ready"}); err != nil {
		return fmt.Errorf("failed to send ready message: %w", err)
	}

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Client closed input after %d requests", s.requestCount)
				return nil
			}
			s.sendError("", "invalid msgpack request", 400)
			return fmt.Errorf("failed to decode request: %w", err)
		}
		s.requestCount++
		s.handleRequest(request)
	}
}

// handleRequest dispatches on the request action
func (s *Server) handleRequest(request Request) {
	switch request.Action {
	case "", ActionComplete:
		s.handleComplete(request)
	case ActionTrain:
		s.handleTrain(request)
	case ActionStats:
		s.sendStats(request.ID)
	case ActionHealth:
		s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("unknown action: %s", request.Action), 400)
	}
}

// handleComplete validates the prefix, clamps the limit and returns the
// ranked candidates. An empty prefix is valid and matches nothing.
func (s *Server) handleComplete(request Request) {
	if len(request.Prefix) > s.config.Server.MaxPrefix {
		s.sendError(request.ID, fmt.Sprintf("prefix exceeds maximum length of %d", s.config.Server.MaxPrefix), 400)
		log.Debugf("Prefix too long in request %s", request.ID)
		return
	}

	limit := request.Limit
	if limit < 1 {
		limit = s.config.CLI.Limit
	}
	if limit > s.config.Server.MaxLimit {
		limit = s.config.Server.MaxLimit
	}

	start := time.Now()
	candidates := s.completer.GetWords(request.Prefix)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	elapsed := time.Since(start)

	suggestions := make([]CompletionSuggestion, len(candidates))
	for i, c := range candidates {
		suggestions[i] = CompletionSuggestion{Word: c.Word, Confidence: c.Confidence}
	}

	s.sendResponse(CompletionResponse{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// handleTrain folds the request text into the index when training is allowed
func (s *Server) handleTrain(request Request) {
	if !s.config.Server.AllowTrain {
		s.sendError(request.ID, "training is disabled", 403)
		return
	}
	s.completer.Train(request.Text)
	s.sendStats(request.ID)
}

func (s *Server) sendStats(id string) {
	stats := s.completer.Stats()
	s.sendResponse(StatsResponse{
		ID:            id,
		Status:        "ok",
		Words:         stats["words"],
		Tokens:        stats["tokens"],
		MaxConfidence: stats["maxConfidence"],
	})
}

// sendResponse encodes a response onto the output stream
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(CompletionError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
