package analyzer

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/chatlens/internal/config"
	"github.com/blackwell-systems/chatlens/internal/conversation"
)

// Engine runs the analysis pipeline. It holds only configuration; every run
// is stateless and two engines with the same configuration score a
// conversation identically.
type Engine struct {
	weights    config.Weights
	lexicon    config.Lexicon
	thresholds config.Thresholds
}

// New builds an engine, rejecting a misconfigured weight table up front with
// ErrBadWeights.
func New(w config.Weights, lex config.Lexicon, th config.Thresholds) (*Engine, error) {
	if err := validateWeights(w); err != nil {
		return nil, err
	}
	return &Engine{weights: w, lexicon: lex, thresholds: th}, nil
}

// FromConfig builds an engine from a loaded configuration.
func FromConfig(cfg *config.Config) (*Engine, error) {
	return New(cfg.Weights, cfg.Lexicon, cfg.Thresholds)
}

// scorer is a pure function from the normalized messages and shared
// FeatureSet to one metric result. Scorers are independent of each other
// and never fail; sparse input degrades to a minimum or neutral value.
type scorer func(msgs []message, fs *FeatureSet) Result

// Analyze runs the full pipeline on one conversation: normalize, extract
// features, fan the independent scorers out, join in the aggregator, and
// assemble the report. It fails only on structurally invalid input
// (conversation.ErrInvalid) or an internal slot gap (ErrIncomplete).
func (e *Engine) Analyze(ctx context.Context, conv conversation.Conversation) (Report, error) {
	msgs, err := normalize(conv.Messages)
	if err != nil {
		return Report{}, err
	}

	fs := extract(msgs, e.lexicon)

	scorers := []scorer{
		e.scoreClarity,
		e.scoreRelevance,
		e.scoreAccuracy,
		e.scoreCompleteness,
		e.scoreSentiment,
		e.scoreEmpathy,
		e.scoreResponseTime,
		e.scoreResolution,
		e.scoreEscalation,
		e.scoreFallback,
	}

	// Fan out: each scorer writes only its own slot, so no locking is
	// needed. The group wait is the join point before aggregation.
	results := make([]Result, len(scorers))
	g, _ := errgroup.WithContext(ctx)
	for i, fn := range scorers {
		i, fn := i, fn
		g.Go(func() error {
			results[i] = fn(msgs, fs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	byMetric := make(map[Metric]Result, len(results)+1)
	for _, r := range results {
		byMetric[r.Metric] = r
	}

	overall, err := e.aggregate(byMetric)
	if err != nil {
		return Report{}, err
	}
	byMetric[overall.Metric] = overall

	return assemble(conv.ID, time.Now().UTC(), byMetric, fs)
}
