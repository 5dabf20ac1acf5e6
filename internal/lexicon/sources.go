package lexicon

import "strings"

// DefaultReputation is the reputation score for unknown or absent sources.
const DefaultReputation = 0.50

// sourceEntry is one reputation table row. Keys are canonical lowercase
// name fragments matched by substring containment.
type sourceEntry struct {
	key   string
	score float64
}

// SourceTable maps source-name fragments to reputation scores in [0,1].
// Lookup order follows insertion order: when several keys are substrings of
// the same normalized source, the earliest entry wins. The table is
// read-only after construction.
type SourceTable struct {
	entries []sourceEntry
}

// NewSourceTable returns the built-in reputation table for major news
// outlets.
func NewSourceTable() *SourceTable {
	return &SourceTable{entries: []sourceEntry{
		{"bbc", 0.85},
		{"cnn", 0.75},
		{"reuters", 0.90},
		{"ap", 0.90},
		{"afp", 0.90},
		{"nytimes", 0.85},
		{"washingtonpost", 0.85},
		{"theguardian", 0.85},
		{"aljazeera", 0.75},
		{"foxnews", 0.65},
		{"cnbc", 0.80},
		{"bloomberg", 0.85},
	}}
}

// Normalize strips all non-alphabetic characters and lower-cases the
// source string.
func Normalize(source string) string {
	var b strings.Builder
	for _, r := range source {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// Lookup returns the reputation score for the source. The source is
// normalized, then the first table key contained in it wins. An empty or
// unknown source yields DefaultReputation.
func (t *SourceTable) Lookup(source string) float64 {
	normalized := Normalize(source)
	if normalized == "" {
		return DefaultReputation
	}
	for _, e := range t.entries {
		if strings.Contains(normalized, e.key) {
			return e.score
		}
	}
	return DefaultReputation
}
