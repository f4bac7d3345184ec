package analyzer

import (
	"strings"
	"unicode"

	"github.com/blackwell-systems/chatlens/internal/config"
)

// FeatureSet holds the lexical signals extracted once per run and shared
// read-only by every scorer. It is owned by a single analysis and discarded
// after the report is assembled.
type FeatureSet struct {
	TotalMessages int
	UserTurns     int
	AgentTurns    int
	UserWords     int
	AgentWords    int

	// ResponseGaps are the seconds between each user message and the agent
	// message immediately following it, in conversation order. A user
	// message with no agent reply contributes no gap.
	ResponseGaps []float64

	// FallbackTurns counts agent turns containing a fallback phrase.
	FallbackTurns int

	// EscalationHits counts escalation-phrase matches across all turns.
	EscalationHits int

	PositiveUserTurns int
	NegativeUserTurns int

	// EmpathicAgentTurns counts agent turns containing an empathy marker.
	EmpathicAgentTurns int

	// ClosingAgentTurns counts agent turns containing a closing or
	// confirmation phrase.
	ClosingAgentTurns int

	// FinalAgentClosing is true when the last agent turn contains a
	// closing or confirmation phrase.
	FinalAgentClosing bool

	// AnsweredUserTurns counts user turns followed (anywhere later) by at
	// least one agent turn.
	AnsweredUserTurns int
}

// extract walks the normalized messages once and derives the FeatureSet.
func extract(msgs []message, lex config.Lexicon) *FeatureSet {
	fs := &FeatureSet{TotalMessages: len(msgs)}

	lastAgentIdx := -1
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].isAgent() {
			lastAgentIdx = i
			break
		}
	}

	for i, m := range msgs {
		words := wordCount(m.text)

		fs.EscalationHits += countMatches(m.match, lex.Escalation)

		switch {
		case m.isUser():
			fs.UserTurns++
			fs.UserWords += words

			if matchesAny(m.match, lex.Positive) {
				fs.PositiveUserTurns++
			}
			if matchesAny(m.match, lex.Negative) {
				fs.NegativeUserTurns++
			}
			if lastAgentIdx > i {
				fs.AnsweredUserTurns++
			}

			// Response gap: only a directly following agent message with
			// usable timestamps counts. Missing replies are excluded, not
			// zero-filled.
			if i+1 < len(msgs) && msgs[i+1].isAgent() {
				next := msgs[i+1]
				if !m.timestamp.IsZero() && !next.timestamp.IsZero() {
					gap := next.timestamp.Sub(m.timestamp).Seconds()
					if gap >= 0 {
						fs.ResponseGaps = append(fs.ResponseGaps, gap)
					}
				}
			}

		case m.isAgent():
			fs.AgentTurns++
			fs.AgentWords += words

			if matchesAny(m.match, lex.Fallback) {
				fs.FallbackTurns++
			}
			if matchesAny(m.match, lex.Empathy) {
				fs.EmpathicAgentTurns++
			}
			if matchesAny(m.match, lex.Closing) {
				fs.ClosingAgentTurns++
				if i == lastAgentIdx {
					fs.FinalAgentClosing = true
				}
			}
		}
	}

	return fs
}

// matchesAny reports whether the lowercased text contains any lexicon entry.
// Multi-word entries match as substrings; single words match on word
// boundaries so "broken" does not hit inside "unbroken".
func matchesAny(match string, phrases []string) bool {
	for _, p := range phrases {
		if hasPhrase(match, p) {
			return true
		}
	}
	return false
}

// countMatches counts how many lexicon entries appear in the text.
func countMatches(match string, phrases []string) int {
	n := 0
	for _, p := range phrases {
		if hasPhrase(match, p) {
			n++
		}
	}
	return n
}

func hasPhrase(match, phrase string) bool {
	if phrase == "" {
		return false
	}
	if strings.ContainsRune(phrase, ' ') {
		return strings.Contains(match, phrase)
	}
	for _, tok := range tokens(match) {
		if tok == phrase {
			return true
		}
	}
	return false
}

// tokens splits lowercased text into word tokens, stripping punctuation but
// keeping inner apostrophes ("don't").
func tokens(match string) []string {
	return strings.FieldsFunc(match, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
