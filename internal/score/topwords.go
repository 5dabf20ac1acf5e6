package score

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/pvoronin/newsgauge/internal/annotate"
	"github.com/pvoronin/newsgauge/internal/colloc"
	"github.com/pvoronin/newsgauge/internal/lexicon"
	"github.com/pvoronin/newsgauge/internal/model"
)

// TopWordsExtractor counts lemma frequencies over the content words of a
// text.
type TopWordsExtractor struct {
	annotator annotate.Annotator
	stops     *lexicon.Stopwords
}

// NewTopWordsExtractor creates the extractor.
func NewTopWordsExtractor(annotator annotate.Annotator, stops *lexicon.Stopwords) *TopWordsExtractor {
	return &TopWordsExtractor{annotator: annotator, stops: stops}
}

// Calculate returns up to topN lemmas by descending frequency, ties broken
// by first encounter. Stopwords, punctuation, numeric tokens and surfaces
// of two characters or fewer never count; lemmas that fall in the stopword
// set are excluded too, catching lemma forms that differ from their
// stopword surface form.
func (e *TopWordsExtractor) Calculate(ctx context.Context, text string, topN int) ([]model.WordCount, error) {
	doc, err := e.annotator.Annotate(ctx, strings.ToLower(text))
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range doc.Tokens {
		if tok.IsStop || tok.IsPunct || tok.IsDigit || len([]rune(tok.Text)) <= 2 {
			continue
		}
		if e.stops.Contains(tok.Lemma) {
			continue
		}
		if _, seen := counts[tok.Lemma]; !seen {
			order = append(order, tok.Lemma)
		}
		counts[tok.Lemma]++
	}

	firstSeen := make(map[string]int, len(order))
	for i, lemma := range order {
		firstSeen[lemma] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	out := make([]model.WordCount, 0, len(order))
	for _, lemma := range order {
		out = append(out, model.WordCount{Word: lemma, Count: counts[lemma]})
	}
	return out, nil
}

// PhraseExtractor ranks collocations over the stopword-filtered token
// stream of a text.
type PhraseExtractor struct {
	stops *lexicon.Stopwords
}

// NewPhraseExtractor creates the extractor.
func NewPhraseExtractor(stops *lexicon.Stopwords) *PhraseExtractor {
	return &PhraseExtractor{stops: stops}
}

// Calculate returns up to topN phrases by descending integer PMI score.
func (e *PhraseExtractor) Calculate(text string, topN int) []model.PhraseScore {
	tokens := e.filterTokens(text)
	phrases := colloc.TopPhrases(tokens, topN)
	out := make([]model.PhraseScore, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, model.PhraseScore{Phrase: p.Text, Score: p.Score})
	}
	return out
}

// filterTokens lower-cases the text and keeps alphanumeric, non-stopword
// tokens in order.
func (e *PhraseExtractor) filterTokens(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if !e.stops.Contains(f) {
			out = append(out, f)
		}
	}
	return out
}
