// Package annotate supplies linguistic structure for raw text: tokens with
// part-of-speech tags and lemmas, sentence spans, named entities, polarity
// scores, zero-shot classification and abstractive summaries. The scoring
// packages consume these capabilities through small interfaces so any
// backing engine can be swapped without touching the scoring logic.
package annotate

import (
	"context"
	"errors"
)

// ErrModelNotLoaded is returned by capabilities backed by an optional model
// that is unavailable. Callers degrade per-stage instead of failing the
// whole analysis.
var ErrModelNotLoaded = errors.New("model not loaded")

// Token is one surface token with its linguistic flags.
type Token struct {
	Text    string `json:"text"`
	Lemma   string `json:"lemma"`
	Pos     string `json:"pos"`  // coarse tag: ADJ, ADV, VERB, NOUN, ...
	Tag     string `json:"tag"`  // fine-grained tag, e.g. MD for modals
	IsStop  bool   `json:"is_stop"`
	IsPunct bool   `json:"is_punct"`
	IsDigit bool   `json:"is_digit"` // surface is purely numeric
	LikeNum bool   `json:"like_num"` // numeric-like: digits, "3.5", "1,200", number words
	Start   int    `json:"start"`    // character offset, inclusive
	End     int    `json:"end"`      // character offset, exclusive
}

// Sentence is one sentence span in the document.
type Sentence struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Entity is a named-entity mention. Label values follow the usual NER
// inventory (PERSON, ORG, GPE, LOC, ...). Offsets are character positions
// into the document text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Place-type entity labels.
const (
	LabelGPE      = "GPE"
	LabelLocation = "LOC"
)

// Doc is the immutable annotated view of one text, created per analysis
// call and discarded afterwards.
type Doc struct {
	Text      string     `json:"text"`
	Tokens    []Token    `json:"tokens"`
	Sentences []Sentence `json:"sentences"`
	Entities  []Entity   `json:"entities"`
}

// ContextSentence returns the text of the sentence containing the span
// [start,end). Entity spans are not guaranteed to align with sentence
// boundaries, so containment lookup is used; no containing sentence yields
// the empty string.
func (d *Doc) ContextSentence(start, end int) string {
	for _, s := range d.Sentences {
		if start >= s.Start && end <= s.End {
			return s.Text
		}
	}
	return ""
}

// Polarity is the four-component sentiment tuple. Positive, Negative and
// Neutral sum to 1; Compound is in [-1,1].
type Polarity struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Compound float64 `json:"compound"`
}

// Annotator produces the token/sentence/entity view of a text.
type Annotator interface {
	Annotate(ctx context.Context, text string) (*Doc, error)
}

// PolarityScorer produces the sentiment polarity tuple for a text.
type PolarityScorer interface {
	Polarity(ctx context.Context, text string) (Polarity, error)
}

// Classifier scores a text against a fixed label list (zero-shot).
type Classifier interface {
	Classify(ctx context.Context, text string, labels []string) (map[string]float64, error)
}

// Summarizer produces an abstractive summary bounded by max/min lengths.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// Provider bundles the annotation capabilities consumed by the analysis
// orchestrator. Classifier and Summarizer may be nil: the stages backed by
// them degrade per the error-handling contract.
type Provider struct {
	Annotator  Annotator
	Polarity   PolarityScorer
	Classifier Classifier
	Summarizer Summarizer
}
