// Package agent provides the model backend client used by the session loop.
// The default implementation speaks the OpenAI-compatible chat-completions
// protocol over HTTP. Backend failures are reported through sentinel errors
// so callers can render them as distinct, legible text instead of crashing
// the loop.
package agent

import (
	"context"
	"errors"

	"github.com/tailored-agentic-units/shellagent/core/protocol"
)

// Agent is a chat-completion backend. Chat sends the full working transcript
// and returns the generated assistant text.
type Agent interface {
	Chat(ctx context.Context, messages []protocol.Message) (string, error)
}

// Sentinel errors distinguishing backend failure kinds.
var (
	// ErrUnreachable wraps transport-level failures: connection refused,
	// DNS errors, request timeouts.
	ErrUnreachable = errors.New("backend unreachable")
	// ErrProtocol wraps unexpected responses: non-2xx status, malformed
	// body, missing choices.
	ErrProtocol = errors.New("backend protocol error")
)

// ErrNoEndpoint is returned by New when the configuration names no endpoint.
var ErrNoEndpoint = errors.New("agent endpoint is required")

// New creates an Agent from configuration.
func New(cfg *Config) (Agent, error) {
	if cfg.Endpoint == "" {
		return nil, ErrNoEndpoint
	}
	return newChatClient(cfg), nil
}
