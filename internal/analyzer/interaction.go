package analyzer

// Interaction scorers: sentiment, empathy, response time.

// scoreSentiment labels the majority polarity of the user's turns. Ties and
// conversations without polar language come out neutral.
func (e *Engine) scoreSentiment(msgs []message, fs *FeatureSet) Result {
	switch {
	case fs.PositiveUserTurns > fs.NegativeUserTurns:
		return Category(MetricSentiment, SentimentPositive)
	case fs.NegativeUserTurns > fs.PositiveUserTurns:
		return Category(MetricSentiment, SentimentNegative)
	default:
		return Category(MetricSentiment, SentimentNeutral)
	}
}

// scoreEmpathy is the proportion of agent turns carrying an empathy marker.
func (e *Engine) scoreEmpathy(msgs []message, fs *FeatureSet) Result {
	if fs.AgentTurns == 0 {
		return Numeric(MetricEmpathy, 0)
	}
	ratio := float64(fs.EmpathicAgentTurns) / float64(fs.AgentTurns)
	return Numeric(MetricEmpathy, round2(ratio*100))
}

// scoreResponseTime is the mean of the extracted user→agent gaps in seconds.
// With no valid gaps the average is reported as zero rather than invented.
func (e *Engine) scoreResponseTime(msgs []message, fs *FeatureSet) Result {
	if len(fs.ResponseGaps) == 0 {
		return Numeric(MetricResponseTime, 0)
	}
	var total float64
	for _, g := range fs.ResponseGaps {
		total += g
	}
	return Numeric(MetricResponseTime, round2(total/float64(len(fs.ResponseGaps))))
}
