// Package analyze orchestrates the signal aggregators over one article and
// assembles the unified report.
package analyze

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pvoronin/newsgauge/internal/annotate"
	"github.com/pvoronin/newsgauge/internal/geo"
	"github.com/pvoronin/newsgauge/internal/lexicon"
	"github.com/pvoronin/newsgauge/internal/model"
	"github.com/pvoronin/newsgauge/internal/score"
)

// ErrEmptyText is the caller-input error for a missing article body. It is
// distinct from analysis failures: no aggregator runs when it is returned.
var ErrEmptyText = errors.New("text is required")

// classifierUnavailable is the in-band error value for a missing
// classification model.
const classifierUnavailable = "Classifier model not loaded"

// Analyzer runs the full analysis. It is stateless across calls and safe
// for concurrent use: the only shared state is read-only lexicons and
// model handles.
type Analyzer struct {
	provider    annotate.Provider
	sentiment   *score.SentimentScorer
	bias        *score.BiasScorer
	credibility *score.CredibilityScorer
	topWords    *score.TopWordsExtractor
	phrases     *score.PhraseExtractor
	geo         *geo.Aggregator
	cfg         model.AnalysisConfig
}

// New wires an analyzer. The geocoder may be nil to disable coordinate
// lookups; logw receives per-location geocoding warnings (nil silences
// them).
func New(provider annotate.Provider, geocoder geo.Geocoder, cfg model.AnalysisConfig, logw io.Writer) *Analyzer {
	stops := lexicon.NewStopwords()
	return &Analyzer{
		provider:    provider,
		sentiment:   score.NewSentimentScorer(provider.Polarity),
		bias:        score.NewBiasScorer(provider.Annotator, provider.Polarity),
		credibility: score.NewCredibilityScorer(provider.Annotator, lexicon.NewSourceTable()),
		topWords:    score.NewTopWordsExtractor(provider.Annotator, stops),
		phrases:     score.NewPhraseExtractor(stops),
		geo:         geo.NewAggregator(geocoder, logw),
		cfg:         cfg,
	}
}

// Analyze runs every aggregator over the article. Aggregator failures are
// isolated: each lands in its own report field as an in-band error while
// every sibling field is still computed.
func (a *Analyzer) Analyze(ctx context.Context, article model.Article) (*model.Report, error) {
	body := article.Body()
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyText
	}
	combined := article.Combined()
	source := article.SourceName()

	// The combined text is annotated once and shared by the stages that
	// read entities from it.
	combinedDoc, annotateErr := a.provider.Annotator.Annotate(ctx, combined)

	report := &model.Report{}
	var wg sync.WaitGroup
	stage := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	stage(func() {
		report.Sentiment = a.sentimentResult(ctx, combined)
	})
	stage(func() {
		report.Entities = a.entitiesResult(combinedDoc, annotateErr)
	})
	stage(func() {
		report.Classification = a.classifyResult(ctx, combined)
	})
	stage(func() {
		report.GeographicInfo = a.geographicResult(ctx, combinedDoc, annotateErr)
	})
	stage(func() {
		report.Summary = a.summaryResult(ctx, body)
	})
	stage(func() {
		report.BiasAnalysis = a.biasResult(ctx, combined, source)
	})
	stage(func() {
		if words, err := capture(func() ([]model.WordCount, error) {
			return a.topWords.Calculate(ctx, body, a.cfg.TopWords)
		}); err == nil {
			report.TopWords = model.WordStats{Words: words}
		} else {
			report.TopWords = model.WordStats{Error: err.Error()}
		}
		report.TopPhrases = a.phrasesResult(body)
	})
	stage(func() {
		var preExtracted []annotate.Entity
		if annotateErr == nil {
			preExtracted = combinedDoc.Entities
		}
		report.Credibility = a.credibilityResult(ctx, body, source, preExtracted)
	})
	wg.Wait()

	return report, nil
}

// Single-signal variants. Each validates the input and runs exactly one
// aggregator. Only the input validation error propagates; stage failures
// degrade in-band with the same placeholders the full report uses.

// Sentiment scores only sentiment.
func (a *Analyzer) Sentiment(ctx context.Context, text string) (model.Sentiment, error) {
	if strings.TrimSpace(text) == "" {
		return model.Sentiment{}, ErrEmptyText
	}
	return a.sentimentResult(ctx, text), nil
}

// Entities extracts only named entities.
func (a *Analyzer) Entities(ctx context.Context, text string) ([]model.Entity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	doc, err := a.provider.Annotator.Annotate(ctx, text)
	return a.entitiesResult(doc, err), nil
}

// Classify scores only the zero-shot categories.
func (a *Analyzer) Classify(ctx context.Context, text string) (model.Classification, error) {
	if strings.TrimSpace(text) == "" {
		return model.Classification{}, ErrEmptyText
	}
	return a.classifyResult(ctx, text), nil
}

// Geographic extracts only the geographic footprint.
func (a *Analyzer) Geographic(ctx context.Context, text string) (model.GeoSummary, error) {
	if strings.TrimSpace(text) == "" {
		return model.GeoSummary{}, ErrEmptyText
	}
	doc, err := a.provider.Annotator.Annotate(ctx, text)
	return a.geographicResult(ctx, doc, err), nil
}

// Summarize produces only the summary.
func (a *Analyzer) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	return a.summaryResult(ctx, text), nil
}

// Bias scores only bias.
func (a *Analyzer) Bias(ctx context.Context, text, source string) (model.BiasAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return model.BiasAnalysis{}, ErrEmptyText
	}
	return a.biasResult(ctx, text, source), nil
}

// Credibility scores only credibility.
func (a *Analyzer) Credibility(ctx context.Context, text, source string) (model.Credibility, error) {
	if strings.TrimSpace(text) == "" {
		return model.Credibility{}, ErrEmptyText
	}
	return a.credibilityResult(ctx, text, source, nil), nil
}

// Stage result builders. Every builder catches its aggregator's failure
// (including panics) and substitutes the in-band placeholder.

func (a *Analyzer) sentimentResult(ctx context.Context, text string) model.Sentiment {
	s, err := capture(func() (model.Sentiment, error) {
		return a.sentiment.Calculate(ctx, text)
	})
	if err != nil {
		return model.Sentiment{Error: err.Error()}
	}
	return s
}

func (a *Analyzer) entitiesResult(doc *annotate.Doc, annotateErr error) []model.Entity {
	if annotateErr != nil {
		return []model.Entity{{Error: annotateErr.Error()}}
	}
	return convertEntities(doc)
}

func (a *Analyzer) classifyResult(ctx context.Context, text string) model.Classification {
	if a.provider.Classifier == nil {
		return model.Classification{Error: classifierUnavailable}
	}
	scores, err := capture(func() (map[string]float64, error) {
		return a.provider.Classifier.Classify(ctx, text, a.cfg.Categories)
	})
	if errors.Is(err, annotate.ErrModelNotLoaded) {
		return model.Classification{Error: classifierUnavailable}
	}
	if err != nil {
		return model.Classification{Error: err.Error()}
	}
	return model.Classification{Scores: scores}
}

func (a *Analyzer) geographicResult(ctx context.Context, doc *annotate.Doc, annotateErr error) model.GeoSummary {
	if annotateErr != nil {
		return model.GeoSummary{
			MentionedLocations: []string{},
			Coordinates:        map[string]model.Coordinates{},
			Countries:          []string{},
			Error:              annotateErr.Error(),
		}
	}
	summary, err := capture(func() (model.GeoSummary, error) {
		return a.geo.Summarize(ctx, doc), nil
	})
	if err != nil {
		summary.Error = err.Error()
	}
	return summary
}

// summaryResult prefers the abstractive summarizer for long-enough texts
// and degrades to the first sentence, then to a truncated prefix.
func (a *Analyzer) summaryResult(ctx context.Context, text string) string {
	maxLen := a.cfg.SummaryMaxLength
	if maxLen <= 0 {
		maxLen = 150
	}
	if a.provider.Summarizer != nil && len(text) >= a.cfg.SummaryThreshold {
		summary, err := capture(func() (string, error) {
			return a.provider.Summarizer.Summarize(ctx, text, maxLen, a.cfg.SummaryMinLength)
		})
		if err == nil && summary != "" {
			return summary
		}
	}
	if doc, err := a.provider.Annotator.Annotate(ctx, text); err == nil && len(doc.Sentences) > 0 {
		return doc.Sentences[0].Text
	}
	if len(text) > maxLen {
		return text[:maxLen] + "..."
	}
	return text
}

func (a *Analyzer) biasResult(ctx context.Context, text, source string) model.BiasAnalysis {
	b, err := capture(func() (model.BiasAnalysis, error) {
		return a.bias.Calculate(ctx, text, source)
	})
	if err != nil {
		return model.BiasAnalysis{Error: err.Error()}
	}
	return b
}

func (a *Analyzer) phrasesResult(text string) model.PhraseStats {
	phrases, err := capture(func() ([]model.PhraseScore, error) {
		return a.phrases.Calculate(text, a.cfg.TopPhrases), nil
	})
	if err != nil {
		return model.PhraseStats{Error: err.Error()}
	}
	return model.PhraseStats{Phrases: phrases}
}

func (a *Analyzer) credibilityResult(ctx context.Context, text, source string, entities []annotate.Entity) model.Credibility {
	c, err := capture(func() (model.Credibility, error) {
		return a.credibility.Calculate(ctx, text, source, entities)
	})
	if err != nil {
		return model.Credibility{Score: 0.5, Error: err.Error()}
	}
	return c
}

func convertEntities(doc *annotate.Doc) []model.Entity {
	out := make([]model.Entity, 0, len(doc.Entities))
	for _, ent := range doc.Entities {
		out = append(out, model.Entity{
			Text:      ent.Text,
			Type:      ent.Label,
			StartChar: ent.Start,
			EndChar:   ent.End,
			Context:   doc.ContextSentence(ent.Start, ent.End),
		})
	}
	return out
}

// capture runs fn and converts a panic into an error so one faulting
// aggregator can never take down sibling stages.
func capture[T any](fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return fn()
}
