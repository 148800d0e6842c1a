// Package projection builds local timelines from observed events.
// Handles ordering and replay; does not emit events or interact with transports.
package projection

import (
	"recipe-live/domain/chat"
)

// History is the process-lifetime chat log replayed to newcomers.
// It is not safe for concurrent use: its owner serializes access.
type History struct {
	limit    int
	messages []chat.Message
}

// NewHistory keeps every message when limit is 0, otherwise the limit most recent ones.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Append stores a valid message at the end of the log.
// An invalid message is rejected and leaves the log untouched.
func (h *History) Append(message chat.Message) error {
	if err := message.Validate(0); err != nil {
		return err
	}
	h.messages = append(h.messages, message)
	if h.limit > 0 && len(h.messages) > h.limit {
		h.messages = append([]chat.Message(nil), h.messages[len(h.messages)-h.limit:]...)
	}
	return nil
}

// Snapshot returns a copy of the log in append order.
func (h *History) Snapshot() []chat.Message {
	snapshot := make([]chat.Message, len(h.messages))
	copy(snapshot, h.messages)
	return snapshot
}

func (h *History) Len() int {
	return len(h.messages)
}
