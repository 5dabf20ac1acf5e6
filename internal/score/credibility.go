package score

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/pvoronin/newsgauge/internal/annotate"
	"github.com/pvoronin/newsgauge/internal/lexicon"
	"github.com/pvoronin/newsgauge/internal/model"
)

// Credibility factor names.
const (
	FactorSourceReputation = "source_reputation"
	FactorEntityRichness   = "entity_richness"
	FactorAttribution      = "attribution"
	FactorQuotesEvidence   = "quotes_evidence"
	FactorDataPresence     = "data_presence"
	FactorViewpointBalance = "viewpoint_balance"
)

// credibilityWeights is the fixed factor weighting; the weights sum to 1.0.
var credibilityWeights = map[string]float64{
	FactorSourceReputation: 0.30,
	FactorEntityRichness:   0.15,
	FactorAttribution:      0.20,
	FactorQuotesEvidence:   0.15,
	FactorDataPresence:     0.10,
	FactorViewpointBalance: 0.10,
}

// viewpointBalanceDefault is a placeholder: no real multi-viewpoint
// detection exists.
const viewpointBalanceDefault = 0.7

var (
	doubleQuoted = regexp.MustCompile(`"([^"]*)"`)
	singleQuoted = regexp.MustCompile(`'([^']*)'`)
)

// CredibilityScorer combines six independent factors, each clamped to
// [0,1], into a weighted composite.
type CredibilityScorer struct {
	annotator annotate.Annotator
	sources   *lexicon.SourceTable
}

// NewCredibilityScorer creates the credibility scorer.
func NewCredibilityScorer(annotator annotate.Annotator, sources *lexicon.SourceTable) *CredibilityScorer {
	return &CredibilityScorer{annotator: annotator, sources: sources}
}

// Calculate scores the text. A pre-computed entity list avoids
// recomputation; pass nil to extract entities here.
func (s *CredibilityScorer) Calculate(ctx context.Context, text, source string, entities []annotate.Entity) (model.Credibility, error) {
	factors := make(map[string]float64, len(credibilityWeights))

	factors[FactorSourceReputation] = s.sources.Lookup(source)

	doc, err := s.annotator.Annotate(ctx, text)
	if err != nil {
		return model.Credibility{}, err
	}
	if entities == nil {
		entities = doc.Entities
	}

	wordCount := len(strings.Fields(text))
	factors[FactorEntityRichness] = clamp01(float64(len(entities)) / dividend(0.05*float64(wordCount)))

	attributions := 0
	numbers := 0
	for _, tok := range doc.Tokens {
		if lexicon.IsAttribution(tok.Lemma) {
			attributions++
		}
		if tok.LikeNum {
			numbers++
		}
	}
	factors[FactorAttribution] = clamp01(0.1 * float64(attributions))

	quotes := len(doubleQuoted.FindAllString(text, -1)) + len(singleQuoted.FindAllString(text, -1))
	factors[FactorQuotesEvidence] = clamp01(0.15 * float64(quotes))

	factors[FactorDataPresence] = clamp01(0.05 * float64(numbers))
	factors[FactorViewpointBalance] = viewpointBalanceDefault

	var total float64
	for name, value := range factors {
		total += value * credibilityWeights[name]
	}

	return model.Credibility{Score: total, Factors: factors}, nil
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// dividend floors the denominator at a small epsilon so an empty text
// cannot divide by zero.
func dividend(v float64) float64 {
	const epsilon = 1e-9
	if v < epsilon {
		return epsilon
	}
	return v
}
