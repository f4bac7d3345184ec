package analyzer

import (
	"fmt"
	"strings"
	"time"

	"github.com/blackwell-systems/chatlens/internal/conversation"
)

// message is the normalized view of one turn used by the scorers: the
// original text preserved for length heuristics, plus a lowercased trimmed
// copy for phrase matching.
type message struct {
	sender    conversation.Sender
	text      string
	match     string
	timestamp time.Time
}

func (m message) isUser() bool  { return m.sender == conversation.SenderUser }
func (m message) isAgent() bool { return m.sender == conversation.SenderAgent }

// normalize validates and cleans the message list. An empty list or a message
// without a sender or text fails with conversation.ErrInvalid; everything
// else is a degraded-input condition handled downstream.
func normalize(msgs []conversation.Message) ([]message, error) {
	if len(msgs) == 0 {
		return nil, fmt.Errorf("%w: no messages", conversation.ErrInvalid)
	}

	out := make([]message, 0, len(msgs))
	for i, m := range msgs {
		text := strings.TrimSpace(m.Text)
		if text == "" {
			return nil, fmt.Errorf("%w: message %d has no text", conversation.ErrInvalid, i)
		}
		switch m.Sender {
		case conversation.SenderUser, conversation.SenderAgent:
		default:
			return nil, fmt.Errorf("%w: message %d has sender %q", conversation.ErrInvalid, i, m.Sender)
		}
		out = append(out, message{
			sender:    m.Sender,
			text:      text,
			match:     strings.ToLower(text),
			timestamp: m.Timestamp,
		})
	}
	return out, nil
}
