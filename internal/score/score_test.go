package score

import (
	"context"
	"math"
	"testing"

	"github.com/pvoronin/newsgauge/internal/annotate"
	"github.com/pvoronin/newsgauge/internal/lexicon"
)

func newAnnotator() *annotate.RuleEngine {
	return annotate.NewRuleEngine(lexicon.NewStopwords())
}

func TestSentimentScorer(t *testing.T) {
	s := NewSentimentScorer(newAnnotator())
	got, err := s.Calculate(context.Background(), "The ceasefire brought peace and hope.")
	if err != nil {
		t.Fatal(err)
	}
	if got.Compound <= 0 {
		t.Errorf("expected positive compound, got %v", got.Compound)
	}
	sum := got.Positive + got.Negative + got.Neutral
	if math.Abs(sum-1) > 0.01 {
		t.Errorf("components sum to %v", sum)
	}
}

func TestBiasScorer_Bounds(t *testing.T) {
	engine := newAnnotator()
	s := NewBiasScorer(engine, engine)

	texts := []string{
		"The committee met on Tuesday.",
		"This brutal, horrific attack clearly proves they will always choose violence. Everyone must absolutely condemn this terrible atrocity.",
	}
	for _, text := range texts {
		bias, err := s.Calculate(context.Background(), text, "")
		if err != nil {
			t.Fatal(err)
		}
		if bias.BiasScore < 0 || bias.BiasScore > 1 {
			t.Errorf("bias score out of range for %q: %v", text, bias.BiasScore)
		}
		for name, ms := range map[string]float64{
			"emotional": bias.EmotionalLanguage.Score,
			"uncertain": bias.Uncertainty.Score,
			"extreme":   bias.ExtremeLanguage.Score,
		} {
			if ms < 0 || ms > 1 {
				t.Errorf("%s score out of range for %q: %v", name, text, ms)
			}
		}
	}
}

func TestBiasScorer_Markers(t *testing.T) {
	engine := newAnnotator()
	s := NewBiasScorer(engine, engine)

	bias, err := s.Calculate(context.Background(),
		"The deal could collapse and might clearly fail, officials warned.", "")
	if err != nil {
		t.Fatal(err)
	}

	modals := map[string]bool{}
	for _, m := range bias.Uncertainty.Markers {
		modals[m] = true
	}
	if !modals["could"] || !modals["might"] {
		t.Errorf("expected could and might among uncertainty markers, got %v", bias.Uncertainty.Markers)
	}

	extreme := map[string]bool{}
	for _, m := range bias.ExtremeLanguage.Markers {
		extreme[m] = true
	}
	if !extreme["clearly"] {
		t.Errorf("expected clearly among extreme markers, got %v", bias.ExtremeLanguage.Markers)
	}
}

func TestBiasScorer_SourceConfidence(t *testing.T) {
	engine := newAnnotator()
	s := NewBiasScorer(engine, engine)

	withSource, err := s.Calculate(context.Background(), "Officials met today.", "reuters.com")
	if err != nil {
		t.Fatal(err)
	}
	if withSource.SourceBias.Score != 0.5 || withSource.SourceBias.Confidence != 0.7 {
		t.Errorf("with source: got %+v", withSource.SourceBias)
	}

	noSource, err := s.Calculate(context.Background(), "Officials met today.", "")
	if err != nil {
		t.Fatal(err)
	}
	if noSource.SourceBias.Confidence != 0 {
		t.Errorf("without source: got %+v", noSource.SourceBias)
	}
}

func TestBiasScorer_EmptyMarkerLists(t *testing.T) {
	engine := newAnnotator()
	s := NewBiasScorer(engine, engine)

	bias, err := s.Calculate(context.Background(), "committee met tuesday", "")
	if err != nil {
		t.Fatal(err)
	}
	if bias.Uncertainty.Markers == nil || bias.ExtremeLanguage.Markers == nil {
		t.Error("marker lists must be empty lists, not nil")
	}
}

// A featureless text with no source earns only the two constant factors:
// 0.30*0.50 + 0.10*0.70 = 0.22.
func TestCredibilityScorer_DefaultComposite(t *testing.T) {
	s := NewCredibilityScorer(newAnnotator(), lexicon.NewSourceTable())

	cred, err := s.Calculate(context.Background(), "quiet morning walk through empty streets", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cred.Score-0.22) > 1e-9 {
		t.Errorf("expected composite 0.22, got %v (factors %v)", cred.Score, cred.Factors)
	}
	if cred.Factors[FactorViewpointBalance] != 0.7 {
		t.Errorf("viewpoint balance = %v", cred.Factors[FactorViewpointBalance])
	}
	if cred.Factors[FactorSourceReputation] != 0.5 {
		t.Errorf("source reputation = %v", cred.Factors[FactorSourceReputation])
	}
}

func TestCredibilityScorer_Factors(t *testing.T) {
	s := NewCredibilityScorer(newAnnotator(), lexicon.NewSourceTable())

	text := `Officials said the death toll reached 120. "We are investigating," a spokesman stated. The ministry confirmed 40 injuries.`
	cred, err := s.Calculate(context.Background(), text, "bbc.co.uk", nil)
	if err != nil {
		t.Fatal(err)
	}

	if cred.Factors[FactorSourceReputation] != 0.85 {
		t.Errorf("source reputation = %v", cred.Factors[FactorSourceReputation])
	}
	if cred.Factors[FactorAttribution] <= 0 {
		t.Error("expected attribution signal from said/stated/confirmed")
	}
	if cred.Factors[FactorQuotesEvidence] <= 0 {
		t.Error("expected quote signal")
	}
	if cred.Factors[FactorDataPresence] <= 0 {
		t.Error("expected data signal from the numbers")
	}
	for name, v := range cred.Factors {
		if v < 0 || v > 1 {
			t.Errorf("factor %s out of range: %v", name, v)
		}
	}
	if cred.Score < 0 || cred.Score > 1 {
		t.Errorf("composite out of range: %v", cred.Score)
	}
}

func TestCredibilityScorer_PreExtractedEntities(t *testing.T) {
	s := NewCredibilityScorer(newAnnotator(), lexicon.NewSourceTable())

	entities := []annotate.Entity{
		{Text: "Paris", Label: "GPE"},
		{Text: "BBC", Label: "ORG"},
	}
	cred, err := s.Calculate(context.Background(), "short text here", "", entities)
	if err != nil {
		t.Fatal(err)
	}
	if cred.Factors[FactorEntityRichness] <= 0 {
		t.Error("expected pre-extracted entities to feed entity richness")
	}
}

func TestTopWordsExtractor(t *testing.T) {
	e := NewTopWordsExtractor(newAnnotator(), lexicon.NewStopwords())

	text := "Rockets hit the shelter. The rocket attack damaged the shelter badly. Another rocket landed nearby."
	words, err := e.Calculate(context.Background(), text, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) == 0 {
		t.Fatal("expected top words")
	}

	if words[0].Word != "rocket" || words[0].Count != 3 {
		t.Errorf("expected rocket x3 first, got %+v", words[0])
	}

	for _, w := range words {
		if len([]rune(w.Word)) <= 2 {
			t.Errorf("short token leaked: %q", w.Word)
		}
		if lexicon.NewStopwords().Contains(w.Word) {
			t.Errorf("stopword leaked: %q", w.Word)
		}
	}
	for i := 1; i < len(words); i++ {
		if words[i].Count > words[i-1].Count {
			t.Errorf("counts not non-increasing: %v", words)
		}
	}
}

func TestTopWordsExtractor_Cap(t *testing.T) {
	e := NewTopWordsExtractor(newAnnotator(), lexicon.NewStopwords())

	words, err := e.Calculate(context.Background(),
		"alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) > 5 {
		t.Errorf("expected at most 5 words, got %d", len(words))
	}
}

func TestPhraseExtractor(t *testing.T) {
	e := NewPhraseExtractor(lexicon.NewStopwords())

	text := "Ceasefire agreement signed. The ceasefire agreement holds. Observers praised the ceasefire agreement."
	phrases := e.Calculate(text, 10)
	found := false
	for _, p := range phrases {
		if p.Phrase == "ceasefire agreement" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'ceasefire agreement', got %v", phrases)
	}
}

func TestPhraseExtractor_ShortText(t *testing.T) {
	e := NewPhraseExtractor(lexicon.NewStopwords())
	if phrases := e.Calculate("too short", 10); len(phrases) != 0 {
		t.Errorf("expected no phrases, got %v", phrases)
	}
}
