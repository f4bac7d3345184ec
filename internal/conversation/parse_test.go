package conversation

import (
	"errors"
	"testing"
	"time"
)

func TestParse_BareArray(t *testing.T) {
	data := []byte(`[
		{"sender": "user", "text": "Where is my order?", "timestamp": "2026-03-10T09:00:00Z"},
		{"sender": "agent", "text": "Let me check that for you.", "timestamp": "2026-03-10T09:00:15Z"}
	]`)

	conv, err := Parse(data, "order status")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if conv.ID == "" {
		t.Error("expected a generated ID")
	}
	if conv.Title != "order status" {
		t.Errorf("Title = %q", conv.Title)
	}
	if len(conv.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(conv.Messages))
	}
	if conv.Messages[0].Sender != SenderUser || conv.Messages[1].Sender != SenderAgent {
		t.Error("senders out of order")
	}
	if len(conv.UserMessages()) != 1 || len(conv.AgentMessages()) != 1 {
		t.Errorf("side splits = %d user / %d agent, want 1/1",
			len(conv.UserMessages()), len(conv.AgentMessages()))
	}
	want := time.Date(2026, 3, 10, 9, 0, 15, 0, time.UTC)
	if !conv.Messages[1].Timestamp.Equal(want) {
		t.Errorf("timestamp = %v, want %v", conv.Messages[1].Timestamp, want)
	}
}

func TestParse_Envelope(t *testing.T) {
	data := []byte(`{
		"title": "billing question",
		"messages": [
			{"sender": "customer", "message": "I was charged twice."},
			{"sender": "assistant", "message": "I've refunded the duplicate charge."}
		]
	}`)

	conv, err := Parse(data, "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if conv.Title != "billing question" {
		t.Errorf("Title = %q, want envelope title", conv.Title)
	}
	if conv.Messages[0].Sender != SenderUser {
		t.Errorf("customer alias: Sender = %q", conv.Messages[0].Sender)
	}
	if conv.Messages[1].Sender != SenderAgent {
		t.Errorf("assistant alias: Sender = %q", conv.Messages[1].Sender)
	}
	if conv.Messages[0].Text != "I was charged twice." {
		t.Errorf(`"message" body key not honored: %q`, conv.Messages[0].Text)
	}
	if !conv.Messages[0].Timestamp.IsZero() {
		t.Error("missing timestamp should stay zero")
	}
}

func TestParse_ExplicitTitleWinsOverEnvelope(t *testing.T) {
	data := []byte(`{"title": "from file", "messages": [{"sender": "user", "text": "hi"}]}`)

	conv, err := Parse(data, "from flag")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if conv.Title != "from flag" {
		t.Errorf("Title = %q, want explicit title to win", conv.Title)
	}
}

func TestParse_FreshIdentityPerCall(t *testing.T) {
	data := []byte(`[{"sender": "user", "text": "hi"}]`)

	a, err := Parse(data, "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := Parse(data, "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a.ID == b.ID {
		t.Error("two parses of the same payload should not share an ID")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not JSON", `these are not the messages you are looking for`},
		{"empty array", `[]`},
		{"envelope without messages", `{"title": "empty"}`},
		{"missing sender", `[{"text": "hi"}]`},
		{"unknown sender", `[{"sender": "supervisor", "text": "hi"}]`},
		{"blank text", `[{"sender": "user", "text": "   "}]`},
		{"bad timestamp", `[{"sender": "user", "text": "hi", "timestamp": "yesterday"}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), "")
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}
