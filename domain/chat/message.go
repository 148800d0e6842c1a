// Package chat contains the live chat concepts shared by the hub and its transports.
// Messages are immutable once appended and validated by the domain.
package chat

import (
	"fmt"
	"recipe-live/errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Message is a chat line as seen by every participant.
type Message struct {
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Typing signals that Author is composing a message. It is never stored.
type Typing struct {
	Author string `json:"author"`
}

// Normalize trims the author and text and stamps the message if the client did not.
func (m Message) Normalize(now time.Time) Message {
	m.Author = strings.TrimSpace(m.Author)
	m.Text = strings.TrimSpace(m.Text)
	if m.Timestamp.IsZero() {
		m.Timestamp = now.UTC()
	}
	return m
}

// Validate rejects messages without an author or a text.
// maxLength is expressed in runes, 0 disables the check.
func (m Message) Validate(maxLength int) error {
	if strings.TrimSpace(m.Author) == "" {
		return fmt.Errorf("%w: missing author", errors.ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Text) == "" {
		return fmt.Errorf("%w: missing text", errors.ErrInvalidMessage)
	}
	if maxLength > 0 && utf8.RuneCountInString(m.Text) > maxLength {
		return fmt.Errorf("%w: text longer than %d characters", errors.ErrInvalidMessage, maxLength)
	}
	return nil
}

func (t Typing) Validate() error {
	if strings.TrimSpace(t.Author) == "" {
		return fmt.Errorf("%w: missing author", errors.ErrInvalidMessage)
	}
	return nil
}
