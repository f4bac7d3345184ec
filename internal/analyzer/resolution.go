package analyzer

// Resolution scorers: resolution and escalation need.

// scoreResolution checks the final agent turn for a closing or confirmation
// phrase. A conversation the agent never closed out is unresolved, as is one
// with no agent turns at all.
func (e *Engine) scoreResolution(msgs []message, fs *FeatureSet) Result {
	if fs.FinalAgentClosing {
		return Category(MetricResolution, ResolutionResolved)
	}
	return Category(MetricResolution, ResolutionUnresolved)
}

// scoreEscalation flags the conversation when any escalation phrase appears,
// or when the user turned negative repeatedly (threshold configurable).
func (e *Engine) scoreEscalation(msgs []message, fs *FeatureSet) Result {
	if fs.EscalationHits > 0 {
		return Category(MetricEscalation, EscalationNeeded)
	}
	if e.thresholds.EscalationNegativeTurns > 0 &&
		fs.NegativeUserTurns >= e.thresholds.EscalationNegativeTurns {
		return Category(MetricEscalation, EscalationNeeded)
	}
	return Category(MetricEscalation, EscalationNotNeeded)
}
