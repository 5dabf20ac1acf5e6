package score

import (
	"context"
	"math"
	"strings"

	"github.com/pvoronin/newsgauge/internal/annotate"
	"github.com/pvoronin/newsgauge/internal/lexicon"
	"github.com/pvoronin/newsgauge/internal/model"
)

// Composite bias weights. They sum to 1.0 over the three terms.
const (
	biasWeightSentiment    = 0.3
	biasWeightEmotionality = 0.3
	biasWeightExtremism    = 0.4
)

// subjectiveMarkerLimit caps the reported emotional-language marker list.
// Modal and extreme marker lists are reported in full.
const subjectiveMarkerLimit = 10

// BiasScorer estimates bias from linguistic markers: subjective
// adjectives/adverbs, modal verbs, extreme-language words, and sentiment
// intensity.
type BiasScorer struct {
	annotator annotate.Annotator
	polarity  annotate.PolarityScorer
}

// NewBiasScorer creates the bias scorer.
func NewBiasScorer(annotator annotate.Annotator, polarity annotate.PolarityScorer) *BiasScorer {
	return &BiasScorer{annotator: annotator, polarity: polarity}
}

// Calculate scores the text. The source string feeds only the source-bias
// confidence: no per-source bias database exists, so its score stays at
// the neutral placeholder.
func (s *BiasScorer) Calculate(ctx context.Context, text, source string) (model.BiasAnalysis, error) {
	doc, err := s.annotator.Annotate(ctx, text)
	if err != nil {
		return model.BiasAnalysis{}, err
	}
	polarity, err := s.polarity.Polarity(ctx, text)
	if err != nil {
		return model.BiasAnalysis{}, err
	}

	var subjective, modal, extreme []string
	for _, tok := range doc.Tokens {
		if (tok.Pos == "ADJ" || tok.Pos == "ADV") && !tok.IsStop {
			subjective = append(subjective, tok.Text)
		}
		if tok.Tag == lexicon.ModalTag {
			modal = append(modal, tok.Text)
		}
		if lexicon.IsExtreme(strings.ToLower(tok.Text)) {
			extreme = append(extreme, tok.Text)
		}
	}

	docLen := float64(len(doc.Tokens))
	emotionality := normalizeCount(len(subjective), docLen*0.1)
	uncertainty := normalizeCount(len(modal), docLen*0.05)
	extremism := normalizeCount(len(extreme), docLen*0.05)

	biasScore := math.Abs(polarity.Compound)*biasWeightSentiment +
		emotionality*biasWeightEmotionality +
		extremism*biasWeightExtremism

	sourceBias := model.SourceBias{Score: 0.5, Confidence: 0.0}
	if source != "" {
		sourceBias.Confidence = 0.7
	}

	return model.BiasAnalysis{
		BiasScore: biasScore,
		EmotionalLanguage: model.MarkerScore{
			Score:   emotionality,
			Markers: truncateMarkers(subjective, subjectiveMarkerLimit),
		},
		Uncertainty: model.MarkerScore{
			Score:   uncertainty,
			Markers: markers(modal),
		},
		ExtremeLanguage: model.MarkerScore{
			Score:   extremism,
			Markers: markers(extreme),
		},
		SourceBias: sourceBias,
	}, nil
}

// normalizeCount maps a marker count to [0,1] against a length-scaled
// denominator floored at 1.
func normalizeCount(count int, scaledLen float64) float64 {
	return math.Min(1, float64(count)/math.Max(scaledLen, 1))
}

func truncateMarkers(list []string, limit int) []string {
	if len(list) > limit {
		list = list[:limit]
	}
	return markers(list)
}

// markers never reports nil so the JSON field stays a list.
func markers(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
