package analyzer

import (
	"fmt"
	"time"
)

// assemble packages the metric results into an immutable Report. A report is
// valid only when every one of the eleven slots is populated with the right
// shape; a gap means a scorer defect and fails with ErrIncomplete.
func assemble(conversationID string, createdAt time.Time, results map[Metric]Result, fs *FeatureSet) (Report, error) {
	for _, m := range allMetrics {
		if _, ok := results[m]; !ok {
			return Report{}, fmt.Errorf("%w: no result for %s", ErrIncomplete, m)
		}
	}

	num := func(m Metric) (float64, error) {
		r := results[m]
		if r.Kind != KindNumeric {
			return 0, fmt.Errorf("%w: %s is not numeric", ErrIncomplete, m)
		}
		return r.Value, nil
	}
	cat := func(m Metric) (string, error) {
		r := results[m]
		if r.Kind != KindCategory || r.Label == "" {
			return "", fmt.Errorf("%w: %s is not categorical", ErrIncomplete, m)
		}
		return r.Label, nil
	}

	rep := Report{
		ConversationID: conversationID,
		CreatedAt:      createdAt,
		FallbackRate:   fallbackRate(fs),
	}

	var err error
	if rep.Clarity, err = num(MetricClarity); err != nil {
		return Report{}, err
	}
	if rep.Relevance, err = num(MetricRelevance); err != nil {
		return Report{}, err
	}
	if rep.Accuracy, err = num(MetricAccuracy); err != nil {
		return Report{}, err
	}
	if rep.Completeness, err = num(MetricCompleteness); err != nil {
		return Report{}, err
	}
	if rep.Sentiment, err = cat(MetricSentiment); err != nil {
		return Report{}, err
	}
	if rep.Empathy, err = num(MetricEmpathy); err != nil {
		return Report{}, err
	}
	if rep.ResponseTimeAvg, err = num(MetricResponseTime); err != nil {
		return Report{}, err
	}
	if rep.Resolution, err = cat(MetricResolution); err != nil {
		return Report{}, err
	}
	if rep.EscalationNeed, err = cat(MetricEscalation); err != nil {
		return Report{}, err
	}

	fallback, err := num(MetricFallback)
	if err != nil {
		return Report{}, err
	}
	rep.FallbackFrequency = int(fallback)

	if rep.Overall, err = num(MetricOverall); err != nil {
		return Report{}, err
	}

	return rep, nil
}

// Results explodes a report back into the tagged-variant form, keyed by
// metric name. Useful for rendering and for shape checks in tests.
func (r Report) Results() map[Metric]Result {
	return map[Metric]Result{
		MetricClarity:      Numeric(MetricClarity, r.Clarity),
		MetricRelevance:    Numeric(MetricRelevance, r.Relevance),
		MetricAccuracy:     Numeric(MetricAccuracy, r.Accuracy),
		MetricCompleteness: Numeric(MetricCompleteness, r.Completeness),
		MetricSentiment:    Category(MetricSentiment, r.Sentiment),
		MetricEmpathy:      Numeric(MetricEmpathy, r.Empathy),
		MetricResponseTime: Numeric(MetricResponseTime, r.ResponseTimeAvg),
		MetricResolution:   Category(MetricResolution, r.Resolution),
		MetricEscalation:   Category(MetricEscalation, r.EscalationNeed),
		MetricFallback:     Numeric(MetricFallback, float64(r.FallbackFrequency)),
		MetricOverall:      Numeric(MetricOverall, r.Overall),
	}
}
