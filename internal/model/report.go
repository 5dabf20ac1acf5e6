package model

import "encoding/json"

// Report is the complete analysis bundle for one article. Every field is
// computed independently: a failure in one stage is recorded in that field's
// Error slot and never suppresses the others.
type Report struct {
	Sentiment      Sentiment      `json:"sentiment"`
	Entities       []Entity       `json:"entities"`
	Classification Classification `json:"classification"`
	GeographicInfo GeoSummary     `json:"geographic_info"`
	Summary        string         `json:"summary"`
	BiasAnalysis   BiasAnalysis   `json:"bias_analysis"`
	TopWords       WordStats      `json:"topWords"`
	TopPhrases     PhraseStats    `json:"topPhrases"`
	Credibility    Credibility    `json:"credibility"`
}

// Sentiment republishes the polarity scorer's components unchanged.
// Positive, Negative and Neutral are in [0,1] and sum to 1; Compound is
// in [-1,1].
type Sentiment struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Compound float64 `json:"compound"`
	Error    string  `json:"error,omitempty"`
}

// Entity is a named-entity mention with character offsets into the analyzed
// text and the sentence that contains it. A stage failure is reported as a
// single list element carrying only Error.
type Entity struct {
	Text      string `json:"text,omitempty"`
	Type      string `json:"type,omitempty"`
	StartChar int    `json:"start_char"`
	EndChar   int    `json:"end_char"`
	Context   string `json:"context"`
	Error     string `json:"error,omitempty"`
}

// Classification holds zero-shot category scores.
type Classification struct {
	Scores map[string]float64 `json:"scores,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// Coordinates is a geocoded latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoSummary aggregates the geographic footprint of an article.
// Coordinates holds an entry only for locations that geocoded successfully;
// CountryCodes is omitted entirely if any country fails code conversion.
type GeoSummary struct {
	MentionedLocations []string               `json:"mentioned_locations"`
	Coordinates        map[string]Coordinates `json:"coordinates"`
	Countries          []string               `json:"countries"`
	CountryCodes       map[string]string      `json:"country_codes,omitempty"`
	Error              string                 `json:"error,omitempty"`
}

// MarkerScore is one bias category: a normalized score plus the markers
// that produced it.
type MarkerScore struct {
	Score   float64  `json:"score"`
	Markers []string `json:"markers"`
}

// SourceBias is a per-source bias placeholder. The score is fixed at
// neutral; confidence reflects only whether a source string was supplied.
type SourceBias struct {
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// BiasAnalysis is the composite bias result. BiasScore is in [0,1].
type BiasAnalysis struct {
	BiasScore         float64     `json:"bias_score"`
	EmotionalLanguage MarkerScore `json:"emotional_language"`
	Uncertainty       MarkerScore `json:"uncertainty"`
	ExtremeLanguage   MarkerScore `json:"extreme_language"`
	SourceBias        SourceBias  `json:"source_bias"`
	Error             string      `json:"error,omitempty"`
}

// Credibility is the weighted composite of the six credibility factors,
// each bounded in [0,1].
type Credibility struct {
	Score   float64            `json:"score"`
	Factors map[string]float64 `json:"factors"`
	Error   string             `json:"error,omitempty"`
}

// WordCount is one top-word entry. Slices keep the descending-count order
// that a JSON object could not guarantee.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// PhraseScore is one collocation entry with its integer PMI score.
type PhraseScore struct {
	Phrase string `json:"phrase"`
	Score  int    `json:"score"`
}

type stageError struct {
	Error string `json:"error"`
}

// WordStats is the topWords field. It serializes as a plain array on
// success and as {"error": ...} when the stage failed, so a failure is
// never mistaken for a legitimately empty result.
type WordStats struct {
	Words []WordCount
	Error string
}

func (s WordStats) MarshalJSON() ([]byte, error) {
	if s.Error != "" {
		return json.Marshal(stageError{Error: s.Error})
	}
	words := s.Words
	if words == nil {
		words = []WordCount{}
	}
	return json.Marshal(words)
}

func (s *WordStats) UnmarshalJSON(data []byte) error {
	var fail stageError
	if err := json.Unmarshal(data, &fail); err == nil {
		s.Error = fail.Error
		return nil
	}
	return json.Unmarshal(data, &s.Words)
}

// PhraseStats is the topPhrases field, with the same dual shape as
// WordStats.
type PhraseStats struct {
	Phrases []PhraseScore
	Error   string
}

func (s PhraseStats) MarshalJSON() ([]byte, error) {
	if s.Error != "" {
		return json.Marshal(stageError{Error: s.Error})
	}
	phrases := s.Phrases
	if phrases == nil {
		phrases = []PhraseScore{}
	}
	return json.Marshal(phrases)
}

func (s *PhraseStats) UnmarshalJSON(data []byte) error {
	var fail stageError
	if err := json.Unmarshal(data, &fail); err == nil {
		s.Error = fail.Error
		return nil
	}
	return json.Unmarshal(data, &s.Phrases)
}
