package analyzer

// scoreFallback counts agent turns containing a stock fallback phrase
// ("I don't understand", "I'm not sure", ...). The count is the metric
// value; the per-agent-turn rate rides along in the report.
func (e *Engine) scoreFallback(msgs []message, fs *FeatureSet) Result {
	return Numeric(MetricFallback, float64(fs.FallbackTurns))
}

// fallbackRate is the fallback count divided by total agent turns.
func fallbackRate(fs *FeatureSet) float64 {
	if fs.AgentTurns == 0 {
		return 0
	}
	return round2(float64(fs.FallbackTurns) / float64(fs.AgentTurns))
}
