package lexicon

import "strings"

// ModalTag is the fine-grained part-of-speech tag for modal verbs.
const ModalTag = "MD"

// extremeWords is the closed set of absolute/extreme language markers used
// by the bias scorer.
var extremeWords = map[string]struct{}{
	"very":        {},
	"extremely":   {},
	"totally":     {},
	"absolutely":  {},
	"never":       {},
	"always":      {},
	"all":         {},
	"none":        {},
	"every":       {},
	"certainly":   {},
	"undoubtedly": {},
	"clearly":     {},
}

// IsExtreme reports whether the word (case-insensitive) is an extreme
// language marker.
func IsExtreme(word string) bool {
	_, ok := extremeWords[strings.ToLower(word)]
	return ok
}

// AttributionLemmas are the verb lemmas treated as attribution markers by
// the credibility scorer.
var AttributionLemmas = map[string]struct{}{
	"say":       {},
	"state":     {},
	"report":    {},
	"claim":     {},
	"according": {},
	"confirm":   {},
}

// IsAttribution reports whether the lemma is an attribution marker.
func IsAttribution(lemma string) bool {
	_, ok := AttributionLemmas[lemma]
	return ok
}
