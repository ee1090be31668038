// Package session manages the persisted conversation history for the
// interactive loop. The history holds user-visible turns only; per-turn
// system instructions and tool observations are composed into a fresh
// working transcript by the loop each turn and never stored here.
package session

import (
	"github.com/tailored-agentic-units/shellagent/core/protocol"
)

// Session holds an ordered sequence of conversation messages. Implementations
// must be safe for concurrent use.
type Session interface {
	// ID returns the unique session identifier.
	ID() string
	// AddMessage appends a message to the conversation history.
	AddMessage(msg protocol.Message)
	// Messages returns a defensive copy of the conversation history.
	Messages() []protocol.Message
	// Clear resets the conversation history.
	Clear()
}
