package analyzer

import (
	"fmt"
	"math"

	"github.com/blackwell-systems/chatlens/internal/config"
)

// weightTolerance is how far the weight sum may drift from 1.0 before the
// configuration is rejected.
const weightTolerance = 1e-9

// validateWeights enforces the aggregation contract at construction time:
// weights sum to 1.0 and none is negative. Violations are configuration
// errors, never runtime ones.
func validateWeights(w config.Weights) error {
	for name, v := range map[string]float64{
		"clarity":      w.Clarity,
		"relevance":    w.Relevance,
		"accuracy":     w.Accuracy,
		"completeness": w.Completeness,
		"empathy":      w.Empathy,
		"resolution":   w.Resolution,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s weight is negative (%.3f)", ErrBadWeights, name, v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("%w: weights sum to %.3f, want 1.0", ErrBadWeights, sum)
	}
	return nil
}

// aggregate is the join point: it blocks on nothing itself but requires every
// weighted input to be present. The overall score is the weighted sum of the
// five numeric quality metrics plus a resolution bonus, clamped to [0,100].
func (e *Engine) aggregate(results map[Metric]Result) (Result, error) {
	numeric := func(m Metric) (float64, error) {
		r, ok := results[m]
		if !ok || r.Kind != KindNumeric {
			return 0, fmt.Errorf("%w: missing numeric %s", ErrIncomplete, m)
		}
		return r.Value, nil
	}

	clarity, err := numeric(MetricClarity)
	if err != nil {
		return Result{}, err
	}
	relevance, err := numeric(MetricRelevance)
	if err != nil {
		return Result{}, err
	}
	accuracy, err := numeric(MetricAccuracy)
	if err != nil {
		return Result{}, err
	}
	completeness, err := numeric(MetricCompleteness)
	if err != nil {
		return Result{}, err
	}
	empathy, err := numeric(MetricEmpathy)
	if err != nil {
		return Result{}, err
	}

	res, ok := results[MetricResolution]
	if !ok || res.Kind != KindCategory {
		return Result{}, fmt.Errorf("%w: missing %s", ErrIncomplete, MetricResolution)
	}
	resolutionBonus := 0.0
	if res.Label == ResolutionResolved {
		resolutionBonus = 100.0
	}

	w := e.weights
	overall := clarity*w.Clarity +
		relevance*w.Relevance +
		accuracy*w.Accuracy +
		completeness*w.Completeness +
		empathy*w.Empathy +
		resolutionBonus*w.Resolution

	return Numeric(MetricOverall, round2(clamp(overall, 0, 100))), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
