// Package analyzer computes quality metrics for finished conversations.
//
// One analysis run is a pure function of a conversation's message list:
// messages are normalized, lexical features are extracted once, independent
// scorers consume them, and an aggregator joins the results into a report.
package analyzer

import (
	"errors"
	"time"
)

// ErrIncomplete is returned when a scorer failed to produce a value and the
// assembled report would be missing a metric slot. It signals a defect, not
// bad input.
var ErrIncomplete = errors.New("incomplete analysis")

// ErrBadWeights is returned at engine construction when the configured
// aggregation weights do not sum to 1.0 or contain a negative entry.
var ErrBadWeights = errors.New("bad aggregation weights")

// Metric names the report slots. The string values are the serialization
// contract consumed by the storage layer and must not change.
type Metric string

const (
	MetricClarity      Metric = "clarity_score"
	MetricRelevance    Metric = "relevance_score"
	MetricAccuracy     Metric = "accuracy_score"
	MetricCompleteness Metric = "completeness_score"
	MetricSentiment    Metric = "sentiment"
	MetricEmpathy      Metric = "empathy_score"
	MetricResponseTime Metric = "response_time_avg"
	MetricResolution   Metric = "resolution"
	MetricEscalation   Metric = "escalation_need"
	MetricFallback     Metric = "fallback_frequency"
	MetricOverall      Metric = "overall_score"
)

// allMetrics lists every slot a complete report must fill.
var allMetrics = []Metric{
	MetricClarity, MetricRelevance, MetricAccuracy, MetricCompleteness,
	MetricSentiment, MetricEmpathy, MetricResponseTime, MetricResolution,
	MetricEscalation, MetricFallback, MetricOverall,
}

// Kind distinguishes numeric results from categorical ones.
type Kind int

const (
	KindNumeric Kind = iota
	KindCategory
)

// Categorical labels.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"

	ResolutionResolved   = "resolved"
	ResolutionUnresolved = "unresolved"

	EscalationNeeded    = "needed"
	EscalationNotNeeded = "not_needed"
)

// Result is one metric value: either a number or a category label.
type Result struct {
	Metric Metric  `json:"metric"`
	Kind   Kind    `json:"-"`
	Value  float64 `json:"value,omitempty"`
	Label  string  `json:"label,omitempty"`
}

// Numeric builds a numeric result.
func Numeric(m Metric, v float64) Result {
	return Result{Metric: m, Kind: KindNumeric, Value: v}
}

// Category builds a categorical result.
func Category(m Metric, label string) Result {
	return Result{Metric: m, Kind: KindCategory, Label: label}
}

// Report is the immutable bundle of all eleven metric results for one
// conversation at one point in time. The JSON field names are the contract
// the surrounding service serializes; they match the legacy report schema
// byte for byte.
type Report struct {
	ConversationID string    `json:"conversation_id"`
	CreatedAt      time.Time `json:"created_at"`

	Clarity           float64 `json:"clarity_score"`
	Relevance         float64 `json:"relevance_score"`
	Accuracy          float64 `json:"accuracy_score"`
	Completeness      float64 `json:"completeness_score"`
	Sentiment         string  `json:"sentiment"`
	Empathy           float64 `json:"empathy_score"`
	ResponseTimeAvg   float64 `json:"response_time_avg"`
	Resolution        string  `json:"resolution"`
	EscalationNeed    string  `json:"escalation_need"`
	FallbackFrequency int     `json:"fallback_frequency"`
	FallbackRate      float64 `json:"fallback_rate"`
	Overall           float64 `json:"overall_score"`
}

// Resolved reports whether the conversation was scored as resolved.
func (r Report) Resolved() bool {
	return r.Resolution == ResolutionResolved
}
