package analyzer

import (
	"errors"
	"testing"
	"time"
)

func completeResults() map[Metric]Result {
	results := fullResults(true)
	results[MetricOverall] = Numeric(MetricOverall, 75.5)
	return results
}

func TestAssemble_AllSlots(t *testing.T) {
	fs := &FeatureSet{AgentTurns: 4, FallbackTurns: 2}
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	rep, err := assemble("conv-1", created, completeResults(), fs)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if rep.ConversationID != "conv-1" {
		t.Errorf("ConversationID = %q", rep.ConversationID)
	}
	if !rep.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v", rep.CreatedAt)
	}
	if rep.Overall != 75.5 {
		t.Errorf("Overall = %v, want 75.5", rep.Overall)
	}
	if rep.FallbackFrequency != 0 {
		t.Errorf("FallbackFrequency = %d, want 0", rep.FallbackFrequency)
	}
	if rep.FallbackRate != 0.5 {
		t.Errorf("FallbackRate = %v, want 0.5", rep.FallbackRate)
	}
	if got := rep.Results(); len(got) != len(allMetrics) {
		t.Errorf("Results() has %d entries, want %d", len(got), len(allMetrics))
	}
}

func TestAssemble_MissingSlot(t *testing.T) {
	for _, m := range allMetrics {
		results := completeResults()
		delete(results, m)

		_, err := assemble("conv-1", time.Now(), results, &FeatureSet{})
		if !errors.Is(err, ErrIncomplete) {
			t.Errorf("%s missing: expected ErrIncomplete, got %v", m, err)
		}
	}
}

func TestAssemble_WrongShape(t *testing.T) {
	results := completeResults()
	results[MetricSentiment] = Numeric(MetricSentiment, 1)

	_, err := assemble("conv-1", time.Now(), results, &FeatureSet{})
	if !errors.Is(err, ErrIncomplete) {
		t.Errorf("numeric sentiment: expected ErrIncomplete, got %v", err)
	}

	results = completeResults()
	results[MetricClarity] = Category(MetricClarity, "high")

	_, err = assemble("conv-1", time.Now(), results, &FeatureSet{})
	if !errors.Is(err, ErrIncomplete) {
		t.Errorf("categorical clarity: expected ErrIncomplete, got %v", err)
	}
}
