package analyzer

import "strings"

// Conversation-quality scorers: clarity, relevance, accuracy, completeness.
// Each is a pure function of the normalized messages and the FeatureSet.

// scoreClarity rates how readable the agent's turns are. Long or vague
// sentences are penalized; well-punctuated, reasonably sized replies gain.
func (e *Engine) scoreClarity(msgs []message, fs *FeatureSet) Result {
	if fs.AgentTurns == 0 {
		return Numeric(MetricClarity, 0)
	}

	var total float64
	for _, m := range msgs {
		if m.isAgent() {
			total += e.clarityOf(m)
		}
	}
	return Numeric(MetricClarity, round2(total/float64(fs.AgentTurns)))
}

func (e *Engine) clarityOf(m message) float64 {
	score := 50.0

	if n := len(m.text); n >= 20 && n <= 200 {
		score += 20
	}
	if strings.ContainsAny(m.text, ".!?") {
		score += 10
	}
	if !matchesAny(m.match, e.lexicon.Filler) {
		score += 10
	}
	if wordCount(m.text) >= 5 {
		score += 10
	}
	if avgSentenceWords(m.text) > float64(e.thresholds.LongSentenceWords) {
		score -= 20
	}
	if matchesAny(m.match, e.lexicon.Vague) {
		score -= 10
	}

	return clamp(score, 0, 100)
}

// avgSentenceWords returns the mean words per sentence, splitting on
// terminal punctuation. Text without any terminator is one sentence.
func avgSentenceWords(text string) float64 {
	var words, sentences int
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if w := wordCount(text[start:i]); w > 0 {
				words += w
				sentences++
			}
			start = i + 1
		}
	}
	if w := wordCount(text[start:]); w > 0 {
		words += w
		sentences++
	}
	if sentences == 0 {
		return 0
	}
	return float64(words) / float64(sentences)
}

// scoreRelevance measures topic keyword overlap between what the user asked
// and what the agent said. Keywords are word tokens of four or more
// characters.
func (e *Engine) scoreRelevance(msgs []message, fs *FeatureSet) Result {
	if fs.AgentTurns == 0 {
		return Numeric(MetricRelevance, 0)
	}

	userKW := make(map[string]bool)
	for _, m := range msgs {
		if m.isUser() {
			for _, kw := range keywords(m.match) {
				userKW[kw] = true
			}
		}
	}

	var sum float64
	var scored int
	for _, m := range msgs {
		if !m.isAgent() {
			continue
		}
		kws := keywords(m.match)
		if len(kws) == 0 {
			continue
		}
		shared := 0
		for _, kw := range kws {
			if userKW[kw] {
				shared++
			}
		}
		sum += float64(shared) / float64(len(kws))
		scored++
	}

	if scored == 0 {
		// Agent turns exist but carry no topical words to compare.
		return Numeric(MetricRelevance, 50)
	}
	return Numeric(MetricRelevance, round2(sum/float64(scored)*100))
}

// keywords returns the distinct tokens of four or more characters.
func keywords(match string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range tokens(match) {
		if len(tok) >= 4 && !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return out
}

// scoreAccuracy starts each agent turn at full score and penalizes hedging
// and uncertainty markers. There is no fact checking here; uncertainty is a
// lexical proxy.
func (e *Engine) scoreAccuracy(msgs []message, fs *FeatureSet) Result {
	if fs.AgentTurns == 0 {
		return Numeric(MetricAccuracy, 0)
	}

	var total float64
	for _, m := range msgs {
		if !m.isAgent() {
			continue
		}
		score := 100.0
		score -= 15 * float64(countMatches(m.match, e.lexicon.Uncertainty))
		if matchesAny(m.match, e.lexicon.Certainty) {
			score += 5
		}
		total += clamp(score, 0, 100)
	}
	return Numeric(MetricAccuracy, round2(total/float64(fs.AgentTurns)))
}

// scoreCompleteness rates whether the user's turns got answered and whether
// the agent signalled completion anywhere in the conversation.
func (e *Engine) scoreCompleteness(msgs []message, fs *FeatureSet) Result {
	if fs.AgentTurns == 0 {
		return Numeric(MetricCompleteness, 0)
	}
	if fs.UserTurns == 0 {
		// Agent monologue: nothing was asked, nothing went unanswered.
		return Numeric(MetricCompleteness, 70)
	}

	ratio := float64(fs.AnsweredUserTurns) / float64(fs.UserTurns)
	score := 80 * ratio
	if fs.ClosingAgentTurns > 0 {
		score += 20
	}
	return Numeric(MetricCompleteness, round2(clamp(score, 0, 100)))
}
