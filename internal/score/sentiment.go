// Package score holds the signal aggregators: sentiment, bias,
// credibility and top-word extraction. Each consumes annotations and
// lexicons and produces a bounded composite score with its supporting
// evidence.
package score

import (
	"context"

	"github.com/pvoronin/newsgauge/internal/annotate"
	"github.com/pvoronin/newsgauge/internal/model"
)

// SentimentScorer republishes the polarity scorer's components unchanged.
// It re-derives nothing; its only responsibilities are field naming and
// error isolation.
type SentimentScorer struct {
	polarity annotate.PolarityScorer
}

// NewSentimentScorer creates the passthrough scorer.
func NewSentimentScorer(polarity annotate.PolarityScorer) *SentimentScorer {
	return &SentimentScorer{polarity: polarity}
}

// Calculate returns the four polarity components for the text.
func (s *SentimentScorer) Calculate(ctx context.Context, text string) (model.Sentiment, error) {
	p, err := s.polarity.Polarity(ctx, text)
	if err != nil {
		return model.Sentiment{}, err
	}
	return model.Sentiment{
		Positive: p.Positive,
		Negative: p.Negative,
		Neutral:  p.Neutral,
		Compound: p.Compound,
	}, nil
}
