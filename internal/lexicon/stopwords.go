package lexicon

import "strings"

// baseStopwords is the standard English stopword inventory.
var baseStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her",
	"hers", "herself", "it", "it's", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom",
	"this", "that", "that'll", "these", "those", "am", "is", "are", "was",
	"were", "be", "been", "being", "have", "has", "had", "having", "do",
	"does", "did", "doing", "a", "an", "the", "and", "but", "if", "or",
	"because", "as", "until", "while", "of", "at", "by", "for", "with",
	"about", "against", "between", "into", "through", "during", "before",
	"after", "above", "below", "to", "from", "up", "down", "in", "out",
	"on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "all", "any", "both",
	"each", "few", "more", "most", "other", "some", "such", "no", "nor",
	"not", "only", "own", "same", "so", "than", "too", "very", "s", "t",
	"can", "will", "just", "don", "don't", "should", "should've", "now",
	"d", "ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't",
	"couldn", "couldn't", "didn", "didn't", "doesn", "doesn't", "hadn",
	"hadn't", "hasn", "hasn't", "haven", "haven't", "isn", "isn't", "ma",
	"mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan",
	"shan't", "shouldn", "shouldn't", "wasn", "wasn't", "weren",
	"weren't", "won", "won't", "wouldn", "wouldn't",
}

// newsStopwords are domain additions for news-style text.
var newsStopwords = []string{
	"said", "says", "according", "reported", "reuters", "afp",
}

// Stopwords is a case-insensitive stopword membership set.
type Stopwords struct {
	words map[string]struct{}
}

// NewStopwords builds the stopword set: the base English inventory extended
// with the news-domain terms and any extra words supplied.
func NewStopwords(extra ...string) *Stopwords {
	words := make(map[string]struct{}, len(baseStopwords)+len(newsStopwords)+len(extra))
	for _, w := range baseStopwords {
		words[w] = struct{}{}
	}
	for _, w := range newsStopwords {
		words[w] = struct{}{}
	}
	for _, w := range extra {
		words[strings.ToLower(w)] = struct{}{}
	}
	return &Stopwords{words: words}
}

// Contains reports whether the word is a stopword.
func (s *Stopwords) Contains(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of stopwords in the set.
func (s *Stopwords) Len() int {
	return len(s.words)
}
