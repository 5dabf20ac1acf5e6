// Package colloc ranks bigram and trigram collocations by pointwise mutual
// information over a filtered token stream.
package colloc

import (
	"math"
	"sort"
	"strings"
)

// minFrequency is the raw-count floor: an n-gram seen fewer times never
// enters scoring.
const minFrequency = 2

// Phrase is one scored collocation. Score is the PMI scaled by 100 and
// truncated toward zero.
type Phrase struct {
	Text  string
	Score int
}

type candidate struct {
	words []string
	pmi   float64
}

// TopPhrases scores bigrams and trigrams over the token stream and returns
// up to topN phrases in non-increasing score order. The stream is expected
// to be lower-cased, alphanumeric and stopword-filtered already. Short or
// highly varied streams legitimately produce an empty result.
func TopPhrases(tokens []string, topN int) []Phrase {
	if topN <= 0 || len(tokens) < minFrequency*2 {
		return nil
	}

	unigrams := make(map[string]int, len(tokens))
	for _, t := range tokens {
		unigrams[t]++
	}

	bigrams := ngramCounts(tokens, 2)
	trigrams := ngramCounts(tokens, 3)

	scoredBigrams := scoreClass(bigrams, unigrams, len(tokens), 2)
	scoredTrigrams := scoreClass(trigrams, unigrams, len(tokens), 3)

	// Top N bigrams plus top N/2 trigrams, then a merged re-sort keeps the
	// best topN overall.
	merged := make(map[string]int)
	for _, c := range firstN(scoredBigrams, topN) {
		merged[strings.Join(c.words, " ")] = truncateScore(c.pmi)
	}
	for _, c := range firstN(scoredTrigrams, topN/2) {
		merged[strings.Join(c.words, " ")] = truncateScore(c.pmi)
	}

	phrases := make([]Phrase, 0, len(merged))
	for text, score := range merged {
		phrases = append(phrases, Phrase{Text: text, Score: score})
	}
	sort.Slice(phrases, func(i, j int) bool {
		if phrases[i].Score != phrases[j].Score {
			return phrases[i].Score > phrases[j].Score
		}
		return phrases[i].Text < phrases[j].Text
	})
	if len(phrases) > topN {
		phrases = phrases[:topN]
	}
	return phrases
}

// ngramCounts builds frequency tables of adjacent n-grams, keyed by the
// space-joined tuple.
func ngramCounts(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}

// scoreClass computes PMI for every n-gram above the frequency floor:
//
//	PMI = log2( P(ngram) / Π P(unigram_i) )
//
// with empirical probabilities taken from the same stream. Results are
// ordered by descending PMI, ties broken lexicographically for determinism.
func scoreClass(ngrams map[string]int, unigrams map[string]int, streamLen, n int) []candidate {
	ngramTotal := streamLen - n + 1
	if ngramTotal <= 0 {
		return nil
	}

	var out []candidate
	for key, count := range ngrams {
		if count < minFrequency {
			continue
		}
		words := strings.Split(key, " ")
		pNgram := float64(count) / float64(ngramTotal)
		pProduct := 1.0
		for _, w := range words {
			pProduct *= float64(unigrams[w]) / float64(streamLen)
		}
		if pProduct == 0 {
			continue
		}
		out = append(out, candidate{words: words, pmi: math.Log2(pNgram / pProduct)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].pmi != out[j].pmi {
			return out[i].pmi > out[j].pmi
		}
		return strings.Join(out[i].words, " ") < strings.Join(out[j].words, " ")
	})
	return out
}

func firstN(cands []candidate, n int) []candidate {
	if len(cands) > n {
		return cands[:n]
	}
	return cands
}

// truncateScore scales PMI by 100 and truncates toward zero.
func truncateScore(pmi float64) int {
	return int(pmi * 100)
}
