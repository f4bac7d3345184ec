package conversation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// rawMessage is the wire shape of one message. Both "text" and "message" are
// accepted for the body, and "sender" accepts common aliases for the agent
// side ("ai", "assistant", "bot").
type rawMessage struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// rawEnvelope is the wrapped wire shape: {"title": ..., "messages": [...]}.
type rawEnvelope struct {
	Title    string       `json:"title"`
	Messages []rawMessage `json:"messages"`
}

// Parse decodes a conversation from JSON. Two shapes are accepted: a bare
// message array, or an envelope with title and messages. The returned
// conversation has a fresh UUID identity. Malformed input fails with an
// error wrapping ErrInvalid.
func Parse(data []byte, title string) (Conversation, error) {
	var raws []rawMessage

	// Try the bare array shape first, then the envelope.
	if err := json.Unmarshal(data, &raws); err != nil {
		var env rawEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			return Conversation{}, fmt.Errorf("%w: decoding JSON: %v", ErrInvalid, err)
		}
		raws = env.Messages
		if title == "" {
			title = env.Title
		}
	}

	if len(raws) == 0 {
		return Conversation{}, fmt.Errorf("%w: no messages", ErrInvalid)
	}

	conv := Conversation{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
		Messages:  make([]Message, 0, len(raws)),
	}

	for i, r := range raws {
		m, err := r.toMessage()
		if err != nil {
			return Conversation{}, fmt.Errorf("message %d: %w", i, err)
		}
		conv.Messages = append(conv.Messages, m)
	}

	return conv, nil
}

func (r rawMessage) toMessage() (Message, error) {
	sender, err := parseSender(r.Sender)
	if err != nil {
		return Message{}, err
	}

	text := r.Text
	if text == "" {
		text = r.Message
	}
	if strings.TrimSpace(text) == "" {
		return Message{}, fmt.Errorf("%w: empty text", ErrInvalid)
	}

	m := Message{Sender: sender, Text: text}

	// Timestamps are optional on the wire; analysis degrades without them.
	if r.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339, r.Timestamp)
		if err != nil {
			return Message{}, fmt.Errorf("%w: bad timestamp %q", ErrInvalid, r.Timestamp)
		}
		m.Timestamp = ts
	}

	return m, nil
}

// parseSender maps wire sender strings onto the Sender enum.
func parseSender(s string) (Sender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user", "human", "customer":
		return SenderUser, nil
	case "agent", "ai", "assistant", "bot":
		return SenderAgent, nil
	case "":
		return "", fmt.Errorf("%w: missing sender", ErrInvalid)
	default:
		return "", fmt.Errorf("%w: unknown sender %q", ErrInvalid, s)
	}
}
