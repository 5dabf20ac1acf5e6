package annotate

import (
	"context"
	"strings"
	"unicode"

	"github.com/pvoronin/newsgauge/internal/lexicon"
)

// RuleEngine is the built-in annotation engine. It is fully deterministic,
// needs no external process or model download, and is safe for concurrent
// use. Classification and summarization are not among its capabilities and
// report ErrModelNotLoaded.
type RuleEngine struct {
	stops *lexicon.Stopwords
}

// NewRuleEngine creates the built-in engine over the given stopword set.
func NewRuleEngine(stops *lexicon.Stopwords) *RuleEngine {
	if stops == nil {
		stops = lexicon.NewStopwords()
	}
	return &RuleEngine{stops: stops}
}

// Annotate tokenizes the text and attaches tags, lemmas, sentence spans and
// named entities.
func (e *RuleEngine) Annotate(ctx context.Context, text string) (*Doc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := &Doc{Text: text}
	doc.Tokens = e.tokenize(text)
	doc.Sentences = splitSentences(text)
	doc.Entities = recognizeEntities(text, doc.Tokens, doc.Sentences)
	return doc, nil
}

// Classify is not a capability of the rule engine.
func (e *RuleEngine) Classify(ctx context.Context, text string, labels []string) (map[string]float64, error) {
	return nil, ErrModelNotLoaded
}

// Summarize is not a capability of the rule engine.
func (e *RuleEngine) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	return "", ErrModelNotLoaded
}

// tokenize splits text into word, number and punctuation tokens with
// character offsets, then tags each one.
func (e *RuleEngine) tokenize(text string) []Token {
	var tokens []Token
	runes := []rune(text)
	n := len(runes)

	// Byte offset bookkeeping: offsets index into the original string.
	byteAt := make([]int, n+1)
	off := 0
	for i, r := range runes {
		byteAt[i] = off
		off += len(string(r))
	}
	byteAt[n] = off

	i := 0
	for i < n {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsLetter(r):
			j := i + 1
			for j < n {
				if unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) {
					j++
					continue
				}
				// Internal apostrophe ("don't") and hyphen ("cease-fire")
				// stay inside the token.
				if (runes[j] == '\'' || runes[j] == '’' || runes[j] == '-') &&
					j+1 < n && unicode.IsLetter(runes[j+1]) {
					j += 2
					continue
				}
				break
			}
			surface := string(runes[i:j])
			tokens = append(tokens, e.wordToken(surface, byteAt[i], byteAt[j]))
			i = j
		case unicode.IsDigit(r):
			j := i + 1
			for j < n {
				if unicode.IsDigit(runes[j]) {
					j++
					continue
				}
				// Decimal points and digit-group commas stay inside.
				if (runes[j] == '.' || runes[j] == ',') && j+1 < n && unicode.IsDigit(runes[j+1]) {
					j += 2
					continue
				}
				break
			}
			surface := string(runes[i:j])
			tokens = append(tokens, Token{
				Text:    surface,
				Lemma:   surface,
				Pos:     "NUM",
				Tag:     "CD",
				IsDigit: isAllDigits(surface),
				LikeNum: true,
				Start:   byteAt[i],
				End:     byteAt[j],
			})
			i = j
		default:
			tokens = append(tokens, Token{
				Text:    string(r),
				Lemma:   string(r),
				Pos:     "PUNCT",
				Tag:     "PUNCT",
				IsPunct: true,
				Start:   byteAt[i],
				End:     byteAt[i+1],
			})
			i++
		}
	}
	return tokens
}

func (e *RuleEngine) wordToken(surface string, start, end int) Token {
	lower := strings.ToLower(surface)
	tok := Token{
		Text:   surface,
		Lemma:  lemma(lower),
		IsStop: e.stops.Contains(lower),
		Start:  start,
		End:    end,
	}
	tok.Pos, tok.Tag = tagWord(lower)
	if tok.Pos == "NUM" {
		tok.LikeNum = true
	}
	return tok
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// Closed-class word lists for tagging.
var (
	modalVerbs = map[string]struct{}{
		"can": {}, "could": {}, "may": {}, "might": {}, "must": {},
		"shall": {}, "should": {}, "will": {}, "would": {},
	}
	determiners = map[string]struct{}{
		"the": {}, "a": {}, "an": {}, "this": {}, "that": {}, "these": {},
		"those": {}, "each": {}, "either": {}, "neither": {},
	}
	prepositions = map[string]struct{}{
		"of": {}, "in": {}, "on": {}, "at": {}, "by": {}, "for": {},
		"with": {}, "from": {}, "to": {}, "into": {}, "onto": {},
		"over": {}, "under": {}, "between": {}, "among": {}, "through": {},
		"during": {}, "against": {}, "within": {}, "without": {},
	}
	pronouns = map[string]struct{}{
		"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {},
		"they": {}, "me": {}, "him": {}, "her": {}, "us": {}, "them": {},
		"who": {}, "whom": {}, "which": {}, "what": {},
	}
	conjunctions = map[string]struct{}{
		"and": {}, "or": {}, "but": {}, "nor": {}, "so": {}, "yet": {},
		"because": {}, "although": {}, "while": {}, "if": {}, "unless": {},
	}
	auxiliaries = map[string]struct{}{
		"is": {}, "am": {}, "are": {}, "was": {}, "were": {}, "be": {},
		"been": {}, "being": {}, "have": {}, "has": {}, "had": {},
		"do": {}, "does": {}, "did": {},
	}
	numberWords = map[string]struct{}{
		"zero": {}, "one": {}, "two": {}, "three": {}, "four": {},
		"five": {}, "six": {}, "seven": {}, "eight": {}, "nine": {},
		"ten": {}, "eleven": {}, "twelve": {}, "dozen": {}, "hundred": {},
		"thousand": {}, "million": {}, "billion": {}, "trillion": {},
	}
	// Adverbs that do not carry the -ly suffix.
	plainAdverbs = map[string]struct{}{
		"very": {}, "extremely": {}, "quite": {}, "too": {}, "rather": {},
		"almost": {}, "nearly": {}, "perhaps": {}, "maybe": {},
		"often": {}, "rarely": {}, "seldom": {}, "soon": {},
		"already": {}, "still": {}, "never": {}, "always": {},
		"again": {}, "however": {}, "instead": {}, "meanwhile": {},
		"now": {}, "then": {}, "here": {}, "there": {},
	}
	// Frequent evaluative adjectives that carry no marker suffix.
	plainAdjectives = map[string]struct{}{
		"good": {}, "bad": {}, "new": {}, "old": {}, "great": {},
		"major": {}, "minor": {}, "big": {}, "small": {}, "huge": {},
		"strong": {}, "weak": {}, "severe": {}, "deadly": {}, "grim": {},
		"brutal": {}, "tragic": {}, "violent": {}, "fierce": {},
		"extreme": {}, "critical": {}, "urgent": {}, "key": {},
		"top": {}, "high": {}, "low": {}, "deep": {}, "broad": {},
		"clear": {}, "dire": {}, "stark": {}, "tense": {}, "fragile": {},
	}
	adjectiveSuffixes = []string{
		"ous", "ful", "ive", "able", "ible", "less", "ish", "ic",
	}
)

// tagWord assigns a coarse POS and a fine-grained tag to a lower-cased
// word. The heuristics favor the classes the scorers depend on: modals,
// adjectives and adverbs.
func tagWord(lower string) (pos, tag string) {
	if _, ok := modalVerbs[lower]; ok {
		return "VERB", lexicon.ModalTag
	}
	if _, ok := numberWords[lower]; ok {
		return "NUM", "CD"
	}
	if _, ok := determiners[lower]; ok {
		return "DET", "DT"
	}
	if _, ok := pronouns[lower]; ok {
		return "PRON", "PRP"
	}
	if _, ok := prepositions[lower]; ok {
		return "ADP", "IN"
	}
	if _, ok := conjunctions[lower]; ok {
		return "CCONJ", "CC"
	}
	if _, ok := auxiliaries[lower]; ok {
		return "AUX", "VB"
	}
	if _, ok := plainAdverbs[lower]; ok {
		return "ADV", "RB"
	}
	if len(lower) > 3 && strings.HasSuffix(lower, "ly") {
		return "ADV", "RB"
	}
	if _, ok := plainAdjectives[lower]; ok {
		return "ADJ", "JJ"
	}
	for _, suf := range adjectiveSuffixes {
		if len(lower) > len(suf)+2 && strings.HasSuffix(lower, suf) {
			return "ADJ", "JJ"
		}
	}
	if len(lower) > 4 && (strings.HasSuffix(lower, "ed") || strings.HasSuffix(lower, "ing")) {
		return "VERB", "VBD"
	}
	return "NOUN", "NN"
}

// irregularLemmas covers forms the suffix rules would mangle, including
// every verb the attribution factor depends on.
var irregularLemmas = map[string]string{
	"said": "say", "says": "say", "saying": "say",
	"stated": "state", "stating": "state",
	"according": "according",
	"told": "tell", "tells": "tell", "telling": "tell",
	"went": "go", "goes": "go", "gone": "go", "going": "go",
	"made": "make", "making": "make",
	"took": "take", "taken": "take", "taking": "take",
	"was": "be", "were": "be", "is": "be", "are": "be", "am": "be",
	"been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"did": "do", "does": "do", "done": "do",
	"men": "man", "women": "woman", "children": "child",
	"people": "people", "series": "series", "news": "news",
	"crisis": "crisis", "analysis": "analysis",
}

// lemma reduces a lower-cased word to a normalized dictionary form using an
// irregular table plus conservative suffix rules.
func lemma(lower string) string {
	if l, ok := irregularLemmas[lower]; ok {
		return l
	}
	n := len(lower)
	switch {
	case n > 4 && strings.HasSuffix(lower, "ies"):
		return lower[:n-3] + "y"
	case n > 4 && strings.HasSuffix(lower, "ied"):
		return lower[:n-3] + "y"
	case n > 4 && strings.HasSuffix(lower, "sses"):
		return lower[:n-2]
	case n > 4 && (strings.HasSuffix(lower, "ches") || strings.HasSuffix(lower, "shes") ||
		strings.HasSuffix(lower, "xes") || strings.HasSuffix(lower, "zes")):
		return lower[:n-2]
	case n > 5 && strings.HasSuffix(lower, "ing"):
		return trimDoubledConsonant(lower[:n-3])
	case n > 4 && strings.HasSuffix(lower, "ed"):
		return trimDoubledConsonant(lower[:n-2])
	case n > 3 && strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") &&
		!strings.HasSuffix(lower, "us"):
		return lower[:n-1]
	}
	return lower
}

// trimDoubledConsonant undoes gemination left by stripping -ed/-ing
// ("stopped" -> "stopp" -> "stop").
func trimDoubledConsonant(stem string) string {
	n := len(stem)
	if n >= 3 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) && stem[n-1] != 'l' && stem[n-1] != 's' {
		return stem[:n-1]
	}
	return stem
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// sentence-terminal abbreviations that do not end a sentence.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "gen": {},
	"sen": {}, "gov": {}, "lt": {}, "col": {}, "sgt": {}, "st": {},
	"vs": {}, "etc": {}, "inc": {}, "ltd": {}, "co": {}, "corp": {},
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {},
	"aug": {}, "sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
	"u.s": {}, "u.k": {}, "u.n": {},
}

// splitSentences finds sentence spans. A period, question mark or
// exclamation mark ends a sentence unless it follows a known abbreviation
// or a single-letter initial.
func splitSentences(text string) []Sentence {
	var sentences []Sentence
	runes := []rune(text)
	n := len(runes)

	byteAt := make([]int, n+1)
	off := 0
	for i, r := range runes {
		byteAt[i] = off
		off += len(string(r))
	}
	byteAt[n] = off

	start := 0
	for start < n && unicode.IsSpace(runes[start]) {
		start++
	}
	i := start
	for i < n {
		r := runes[i]
		if r == '.' || r == '!' || r == '?' {
			if r == '.' && isAbbreviationAt(runes, i) {
				i++
				continue
			}
			end := i + 1
			// Trailing closing quotes belong to the sentence.
			for end < n && (runes[end] == '"' || runes[end] == '\'' || runes[end] == '”' || runes[end] == '’' || runes[end] == ')') {
				end++
			}
			if start < end {
				sentences = append(sentences, Sentence{
					Text:  strings.TrimSpace(string(runes[start:end])),
					Start: byteAt[start],
					End:   byteAt[end],
				})
			}
			i = end
			for i < n && unicode.IsSpace(runes[i]) {
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < n {
		tail := strings.TrimSpace(string(runes[start:n]))
		if tail != "" {
			sentences = append(sentences, Sentence{Text: tail, Start: byteAt[start], End: byteAt[n]})
		}
	}
	return sentences
}

// isAbbreviationAt reports whether the period at index i terminates an
// abbreviation or initial rather than a sentence.
func isAbbreviationAt(runes []rune, i int) bool {
	// A digit right after the period means a decimal inside a number.
	if i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
		return true
	}
	// Collect the word immediately before the period.
	j := i
	for j > 0 && (unicode.IsLetter(runes[j-1]) || runes[j-1] == '.') {
		j--
	}
	if j == i {
		return false
	}
	word := strings.ToLower(strings.TrimSuffix(string(runes[j:i]), "."))
	if _, ok := abbreviations[word]; ok {
		return true
	}
	// Single-letter initial ("J. Smith") or dotted acronym ("U.S.").
	if len([]rune(word)) == 1 || strings.Contains(word, ".") {
		return true
	}
	return false
}
