package analyzer

import (
	"testing"
	"time"

	"github.com/blackwell-systems/chatlens/internal/config"
	"github.com/blackwell-systems/chatlens/internal/conversation"
)

// normalized is a test helper that normalizes or fails the test.
func normalized(t *testing.T, msgs []conversation.Message) []message {
	t.Helper()
	out, err := normalize(msgs)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return out
}

func TestExtract_Counts(t *testing.T) {
	msgs := normalized(t, []conversation.Message{
		msg(conversation.SenderUser, "My payment failed twice.", at(0)),
		msg(conversation.SenderAgent, "Sorry about that, let me look into it.", at(5)),
		msg(conversation.SenderUser, "Thanks.", at(15)),
		msg(conversation.SenderAgent, "All set, the payment has been retried.", at(25)),
	})

	fs := extract(msgs, config.DefaultLexicon)

	if fs.TotalMessages != 4 {
		t.Errorf("TotalMessages = %d, want 4", fs.TotalMessages)
	}
	if fs.UserTurns != 2 || fs.AgentTurns != 2 {
		t.Errorf("turns = %d/%d, want 2/2", fs.UserTurns, fs.AgentTurns)
	}
	if fs.UserWords != 5 {
		t.Errorf("UserWords = %d, want 5", fs.UserWords)
	}
	if fs.EmpathicAgentTurns != 1 {
		t.Errorf("EmpathicAgentTurns = %d, want 1", fs.EmpathicAgentTurns)
	}
	if !fs.FinalAgentClosing {
		t.Error("expected FinalAgentClosing for \"all set\"")
	}
	if fs.AnsweredUserTurns != 2 {
		t.Errorf("AnsweredUserTurns = %d, want 2", fs.AnsweredUserTurns)
	}
}

func TestExtract_ResponseGaps(t *testing.T) {
	tests := []struct {
		name string
		msgs []conversation.Message
		want []float64
	}{
		{
			name: "adjacent pairs only",
			msgs: []conversation.Message{
				msg(conversation.SenderUser, "Question one.", at(0)),
				msg(conversation.SenderAgent, "Answer one.", at(30)),
				msg(conversation.SenderUser, "Question two.", at(40)),
				msg(conversation.SenderAgent, "Answer two.", at(100)),
			},
			want: []float64{30, 60},
		},
		{
			name: "unanswered trailing user message excluded",
			msgs: []conversation.Message{
				msg(conversation.SenderUser, "First question.", at(0)),
				msg(conversation.SenderAgent, "First answer.", at(20)),
				msg(conversation.SenderUser, "Anyone there?", at(30)),
			},
			want: []float64{20},
		},
		{
			name: "consecutive user messages skip the unreplied one",
			msgs: []conversation.Message{
				msg(conversation.SenderUser, "First part.", at(0)),
				msg(conversation.SenderUser, "Second part.", at(5)),
				msg(conversation.SenderAgent, "Reply.", at(15)),
			},
			want: []float64{10},
		},
		{
			name: "missing timestamp excluded",
			msgs: []conversation.Message{
				msg(conversation.SenderUser, "No clock here.", time.Time{}),
				msg(conversation.SenderAgent, "Reply anyway.", at(10)),
			},
			want: nil,
		},
		{
			name: "negative gap excluded",
			msgs: []conversation.Message{
				msg(conversation.SenderUser, "Out of order.", at(50)),
				msg(conversation.SenderAgent, "Earlier reply.", at(10)),
			},
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := extract(normalized(t, tc.msgs), config.DefaultLexicon)
			if len(fs.ResponseGaps) != len(tc.want) {
				t.Fatalf("gaps = %v, want %v", fs.ResponseGaps, tc.want)
			}
			for i, g := range fs.ResponseGaps {
				if g != tc.want[i] {
					t.Errorf("gap[%d] = %v, want %v", i, g, tc.want[i])
				}
			}
		})
	}
}

func TestExtract_LexiconHits(t *testing.T) {
	msgs := normalized(t, []conversation.Message{
		msg(conversation.SenderUser, "This is broken and I want to speak to a human.", at(0)),
		msg(conversation.SenderAgent, "I'm not sure I can help with that.", at(10)),
		msg(conversation.SenderUser, "Terrible. Get me a manager.", at(20)),
	})

	fs := extract(msgs, config.DefaultLexicon)

	if fs.FallbackTurns != 1 {
		t.Errorf("FallbackTurns = %d, want 1", fs.FallbackTurns)
	}
	if fs.EscalationHits < 2 {
		t.Errorf("EscalationHits = %d, want at least 2", fs.EscalationHits)
	}
	if fs.NegativeUserTurns != 2 {
		t.Errorf("NegativeUserTurns = %d, want 2", fs.NegativeUserTurns)
	}
}

func TestHasPhrase_WordBoundaries(t *testing.T) {
	tests := []struct {
		text   string
		phrase string
		want   bool
	}{
		{"the item is broken", "broken", true},
		{"an unbroken streak", "broken", false},
		{"i don't understand the question", "i don't understand", true},
		{"please escalate", "escalate", true},
		{"escalation procedures", "escalate", false},
		{"", "broken", false},
	}

	for _, tc := range tests {
		if got := hasPhrase(tc.text, tc.phrase); got != tc.want {
			t.Errorf("hasPhrase(%q, %q) = %v, want %v", tc.text, tc.phrase, got, tc.want)
		}
	}
}
