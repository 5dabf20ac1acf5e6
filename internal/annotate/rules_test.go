package annotate

import (
	"context"
	"math"
	"testing"
)

func newTestEngine() *RuleEngine {
	return NewRuleEngine(nil)
}

func findToken(tokens []Token, text string) (Token, bool) {
	for _, tok := range tokens {
		if tok.Text == text {
			return tok, true
		}
	}
	return Token{}, false
}

func TestRuleEngine_Tokenize(t *testing.T) {
	doc, err := newTestEngine().Annotate(context.Background(), "Officials don't expect 3.5 million refugees.")
	if err != nil {
		t.Fatal(err)
	}

	if tok, ok := findToken(doc.Tokens, "don't"); !ok {
		t.Error("expected contraction to stay one token")
	} else if tok.IsStop != true {
		t.Error("expected don't to be a stopword")
	}

	tok, ok := findToken(doc.Tokens, "3.5")
	if !ok {
		t.Fatal("expected decimal to stay one token")
	}
	if !tok.LikeNum {
		t.Error("expected 3.5 to be numeric-like")
	}
	if tok.IsDigit {
		t.Error("3.5 contains a period, IsDigit must be false")
	}

	if tok, ok := findToken(doc.Tokens, "million"); !ok || !tok.LikeNum {
		t.Error("expected number word 'million' to be numeric-like")
	}
}

func TestRuleEngine_TokenOffsets(t *testing.T) {
	text := "Talks resumed in Vienna."
	doc, err := newTestEngine().Annotate(context.Background(), text)
	if err != nil {
		t.Fatal(err)
	}
	for _, tok := range doc.Tokens {
		if got := text[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("offsets of %q recover %q", tok.Text, got)
		}
	}
}

func TestRuleEngine_Lemmas(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"said", "say"},
		{"stated", "state"},
		{"reported", "report"},
		{"confirmed", "confirm"},
		{"cities", "city"},
		{"stopped", "stop"},
		{"attacks", "attack"},
		{"crisis", "crisis"},
		{"according", "according"},
	}
	for _, tt := range tests {
		if got := lemma(tt.word); got != tt.want {
			t.Errorf("lemma(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestRuleEngine_Tagging(t *testing.T) {
	tests := []struct {
		word    string
		wantPos string
		wantTag string
	}{
		{"could", "VERB", "MD"},
		{"should", "VERB", "MD"},
		{"quickly", "ADV", "RB"},
		{"dangerous", "ADJ", "JJ"},
		{"grim", "ADJ", "JJ"},
		{"the", "DET", "DT"},
		{"seven", "NUM", "CD"},
		{"village", "NOUN", "NN"},
	}
	for _, tt := range tests {
		pos, tag := tagWord(tt.word)
		if pos != tt.wantPos || tag != tt.wantTag {
			t.Errorf("tagWord(%q) = (%s, %s), want (%s, %s)", tt.word, pos, tag, tt.wantPos, tt.wantTag)
		}
	}
}

func TestSplitSentences(t *testing.T) {
	text := "Dr. Smith arrived in Geneva. He met U.N. officials. Talks continue."
	sentences := splitSentences(text)
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(sentences), sentences)
	}
	if sentences[0].Text != "Dr. Smith arrived in Geneva." {
		t.Errorf("first sentence = %q", sentences[0].Text)
	}
}

func TestSplitSentences_Decimal(t *testing.T) {
	sentences := splitSentences("The budget grew 3.5 percent. Critics disagreed.")
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(sentences), sentences)
	}
}

func TestSplitSentences_NoTerminator(t *testing.T) {
	sentences := splitSentences("a headline without punctuation")
	if len(sentences) != 1 {
		t.Fatalf("expected the tail to form one sentence, got %d", len(sentences))
	}
}

func TestRecognizeEntities(t *testing.T) {
	text := "President Vladimir Putin visited Paris. The BBC reported a NATO response. Mr. Smith disagreed."
	doc, err := newTestEngine().Annotate(context.Background(), text)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"Vladimir Putin": "PERSON",
		"Paris":          LabelGPE,
		"BBC":            "ORG",
		"NATO":           "ORG",
		"Smith":          "PERSON",
	}
	got := make(map[string]string, len(doc.Entities))
	for _, ent := range doc.Entities {
		got[ent.Text] = ent.Label
	}
	for text, label := range want {
		if got[text] != label {
			t.Errorf("expected %q -> %s, got %q (all: %v)", text, label, got[text], doc.Entities)
		}
	}
}

func TestRecognizeEntities_Conservative(t *testing.T) {
	// An unknown single capitalized word yields nothing.
	doc, err := newTestEngine().Annotate(context.Background(), "Frobnication continued throughout the week.")
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Entities) != 0 {
		t.Errorf("expected no entities, got %v", doc.Entities)
	}
}

func TestEntityOffsets(t *testing.T) {
	text := "Fighting intensified near Kyiv on Monday."
	doc, err := newTestEngine().Annotate(context.Background(), text)
	if err != nil {
		t.Fatal(err)
	}
	for _, ent := range doc.Entities {
		if got := text[ent.Start:ent.End]; got != ent.Text {
			t.Errorf("entity offsets of %q recover %q", ent.Text, got)
		}
	}
}

func TestDoc_ContextSentence(t *testing.T) {
	text := "Shelling hit Kyiv overnight. Rescue teams responded quickly."
	doc, err := newTestEngine().Annotate(context.Background(), text)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Entities) == 0 {
		t.Fatal("expected at least one entity")
	}
	ent := doc.Entities[0]
	if got := doc.ContextSentence(ent.Start, ent.End); got != "Shelling hit Kyiv overnight." {
		t.Errorf("context sentence = %q", got)
	}
	if got := doc.ContextSentence(10_000, 10_010); got != "" {
		t.Errorf("out-of-range span should yield empty context, got %q", got)
	}
}

func TestPolarity_Bounds(t *testing.T) {
	engine := newTestEngine()
	for _, text := range []string{
		"The ceasefire brought peace and hope to the region.",
		"The attack killed dozens and destroyed the hospital.",
		"The committee met on Tuesday to review the schedule.",
		"",
	} {
		p, err := engine.Polarity(context.Background(), text)
		if err != nil {
			t.Fatal(err)
		}
		if p.Compound < -1 || p.Compound > 1 {
			t.Errorf("compound out of range for %q: %v", text, p.Compound)
		}
		sum := p.Positive + p.Negative + p.Neutral
		if math.Abs(sum-1) > 0.01 {
			t.Errorf("components of %q sum to %v", text, sum)
		}
	}
}

func TestPolarity_Direction(t *testing.T) {
	engine := newTestEngine()

	pos, err := engine.Polarity(context.Background(), "The peace agreement was a great success and brought hope.")
	if err != nil {
		t.Fatal(err)
	}
	if pos.Compound <= 0 {
		t.Errorf("expected positive compound, got %v", pos.Compound)
	}

	neg, err := engine.Polarity(context.Background(), "The brutal attack killed civilians and caused a terrible crisis.")
	if err != nil {
		t.Fatal(err)
	}
	if neg.Compound >= 0 {
		t.Errorf("expected negative compound, got %v", neg.Compound)
	}
}

func TestPolarity_Negation(t *testing.T) {
	engine := newTestEngine()

	plain, err := engine.Polarity(context.Background(), "The talks were a success.")
	if err != nil {
		t.Fatal(err)
	}
	negated, err := engine.Polarity(context.Background(), "The talks were not a success.")
	if err != nil {
		t.Fatal(err)
	}
	if negated.Compound >= plain.Compound {
		t.Errorf("negation should lower compound: %v vs %v", negated.Compound, plain.Compound)
	}
}

func TestRuleEngine_UnsupportedCapabilities(t *testing.T) {
	engine := newTestEngine()
	if _, err := engine.Classify(context.Background(), "text", []string{"a"}); err != ErrModelNotLoaded {
		t.Errorf("Classify: expected ErrModelNotLoaded, got %v", err)
	}
	if _, err := engine.Summarize(context.Background(), "text", 150, 30); err != ErrModelNotLoaded {
		t.Errorf("Summarize: expected ErrModelNotLoaded, got %v", err)
	}
}
