// Package conversation defines the conversation data model and JSON ingest.
package conversation

import (
	"errors"
	"time"
)

// ErrInvalid is returned when a conversation is structurally unusable:
// no messages, an unknown sender, or a message with no text.
var ErrInvalid = errors.New("invalid conversation")

// Sender identifies which side of the exchange produced a message.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

// Message is a single turn in a conversation. Messages are immutable once
// ingested; conversation order is the slice order.
type Message struct {
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is an ordered exchange between one user and one agent.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Messages  []Message `json:"messages"`
}

// UserMessages returns the messages sent by the user, in order.
func (c Conversation) UserMessages() []Message {
	return c.bySender(SenderUser)
}

// AgentMessages returns the messages sent by the agent, in order.
func (c Conversation) AgentMessages() []Message {
	return c.bySender(SenderAgent)
}

func (c Conversation) bySender(s Sender) []Message {
	var out []Message
	for _, m := range c.Messages {
		if m.Sender == s {
			out = append(out, m)
		}
	}
	return out
}
