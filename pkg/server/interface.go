/*
Package server implements msgpack IPC for keyboard completions.

Clients write msgpack-encoded requests to the server's input and read one
msgpack-encoded response per request from its output. The server sends a
ready message first and stops cleanly when the input is closed.

# Requests

Every request carries an ID that is echoed back, and an action. An empty
action means "complete":

	{"id": "req_001", "p": "thi", "l": 4}

The response lists the ranked candidates with their confidence, the count
and the time taken in microseconds:

	{"id": "req_001", "s": [{"w": "thing", "c": 2}, {"w": "this", "c": 1}], "n": 2, "t": 12}

Training text can be sent at runtime when the config allows it; counts add
to what is already indexed:

	{"id": "req_002", "action": "train", "text": "another passage"}

The "stats" action returns index statistics, "health" returns {"status": "ok"}.
Failures are answered with an error message and an HTTP-like code:

	{"id": "req_003", "e": "unknown action: drop", "c": 400}
*/
package server

// Request is the envelope for every client message
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
	Text   string `msgpack:"text,omitempty"`
}

// CompletionSuggestion is one ranked word
type CompletionSuggestion struct {
	Word       string `msgpack:"w"`
	Confidence int    `msgpack:"c"`
}

// CompletionResponse answers a complete request
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"n"`
	TimeTaken   int64                  `msgpack:"t"`
}

// StatsResponse answers train and stats requests
type StatsResponse struct {
	ID            string `msgpack:"id"`
	Status        string `msgpack:"status"`
	Words         int    `msgpack:"words"`
	Tokens        int    `msgpack:"tokens"`
	MaxConfidence int    `msgpack:"max"`
}

// StatusResponse is sent on startup and for health checks
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// CompletionError holds basic error information for failed requests
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
