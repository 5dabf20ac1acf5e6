package annotate

import (
	"strings"
	"unicode"
)

// Gazetteers for the rule-based recognizer. Multi-word names are keyed in
// lower case with single spaces.
var (
	gazetteerGPE = map[string]struct{}{
		// Countries and territories.
		"afghanistan": {}, "argentina": {}, "australia": {}, "austria": {},
		"belgium": {}, "brazil": {}, "britain": {}, "canada": {},
		"chile": {}, "china": {}, "colombia": {}, "cuba": {},
		"denmark": {}, "egypt": {}, "ethiopia": {}, "finland": {},
		"france": {}, "germany": {}, "greece": {}, "hungary": {},
		"india": {}, "indonesia": {}, "iran": {}, "iraq": {},
		"ireland": {}, "israel": {}, "italy": {}, "japan": {},
		"jordan": {}, "kenya": {}, "lebanon": {}, "libya": {},
		"malaysia": {}, "mexico": {}, "morocco": {}, "netherlands": {},
		"nigeria": {}, "norway": {}, "pakistan": {}, "poland": {},
		"portugal": {}, "qatar": {}, "russia": {}, "saudi arabia": {},
		"somalia": {}, "south africa": {}, "south korea": {},
		"north korea": {}, "spain": {}, "sudan": {}, "sweden": {},
		"switzerland": {}, "syria": {}, "taiwan": {}, "thailand": {},
		"turkey": {}, "ukraine": {}, "united kingdom": {},
		"united states": {}, "venezuela": {}, "vietnam": {}, "yemen": {},
		// Cities and capitals.
		"amsterdam": {}, "ankara": {}, "athens": {}, "baghdad": {},
		"bangkok": {}, "beijing": {}, "beirut": {}, "berlin": {},
		"brussels": {}, "cairo": {}, "caracas": {}, "chicago": {},
		"damascus": {}, "delhi": {}, "dubai": {}, "dublin": {},
		"gaza": {}, "geneva": {}, "istanbul": {}, "jerusalem": {},
		"kabul": {}, "kyiv": {}, "lagos": {}, "lisbon": {},
		"london": {}, "los angeles": {}, "madrid": {}, "manila": {},
		"mexico city": {}, "moscow": {}, "mumbai": {}, "nairobi": {},
		"new york": {}, "oslo": {}, "paris": {}, "prague": {},
		"riyadh": {}, "rome": {}, "seoul": {}, "shanghai": {},
		"singapore": {}, "stockholm": {}, "sydney": {}, "tehran": {},
		"tel aviv": {}, "tokyo": {}, "toronto": {}, "vienna": {},
		"warsaw": {}, "washington": {},
	}
	gazetteerLOC = map[string]struct{}{
		"africa": {}, "antarctica": {}, "asia": {}, "europe": {},
		"north america": {}, "south america": {}, "oceania": {},
		"middle east": {}, "western europe": {}, "eastern europe": {},
		"latin america": {}, "central asia": {}, "southeast asia": {},
		"the balkans": {}, "scandinavia": {}, "the sahel": {},
		"pacific": {}, "atlantic": {}, "mediterranean": {},
	}
	gazetteerORG = map[string]struct{}{
		"bbc": {}, "cnn": {}, "reuters": {}, "afp": {}, "bloomberg": {},
		"al jazeera": {}, "fox news": {}, "associated press": {},
		"united nations": {}, "nato": {}, "european union": {},
		"world bank": {}, "red cross": {}, "world health organization": {},
		"white house": {}, "pentagon": {}, "kremlin": {}, "congress": {},
		"senate": {}, "parliament": {}, "interpol": {}, "unicef": {},
		"opec": {}, "imf": {},
	}
	orgSuffixes = map[string]struct{}{
		"inc": {}, "corp": {}, "ltd": {}, "co": {}, "group": {},
		"agency": {}, "ministry": {}, "council": {}, "committee": {},
		"university": {}, "institute": {}, "bank": {}, "party": {},
		"army": {}, "police": {}, "court": {}, "commission": {},
		"organization": {}, "association": {}, "administration": {},
	}
	honorifics = map[string]struct{}{
		"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {},
		"president": {}, "minister": {}, "chancellor": {}, "senator": {},
		"governor": {}, "general": {}, "colonel": {}, "ambassador": {},
		"secretary": {}, "judge": {}, "mayor": {}, "king": {},
		"queen": {}, "prince": {}, "pope": {},
	}
)

// recognizeEntities extracts named entities from capitalized token runs
// using the gazetteers plus structural cues (acronyms, organization
// suffixes, honorifics). Deliberately conservative: an unknown single
// capitalized word yields nothing.
func recognizeEntities(text string, tokens []Token, sentences []Sentence) []Entity {
	var entities []Entity
	sentStarts := make(map[int]struct{}, len(sentences))
	for _, s := range sentences {
		sentStarts[s.Start] = struct{}{}
	}

	// Word tokens only; punctuation breaks capitalized runs.
	i := 0
	for i < len(tokens) {
		if !isCapitalizedWord(tokens[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(tokens) && isCapitalizedWord(tokens[j]) && tokens[j].Start-tokens[j-1].End <= 1 {
			j++
		}
		run := tokens[i:j]
		if ent, ok := classifyRun(run, tokens, i, sentStarts); ok {
			entities = append(entities, ent)
		}
		i = j
	}
	return entities
}

func isCapitalizedWord(t Token) bool {
	if t.IsPunct || t.LikeNum || t.Text == "" {
		return false
	}
	r := []rune(t.Text)[0]
	return unicode.IsUpper(r)
}

func runText(run []Token) string {
	parts := make([]string, len(run))
	for i, t := range run {
		parts[i] = t.Text
	}
	return strings.Join(parts, " ")
}

func classifyRun(run []Token, tokens []Token, start int, sentStarts map[int]struct{}) (Entity, bool) {
	surface := runText(run)
	lower := strings.ToLower(surface)
	ent := Entity{Text: surface, Start: run[0].Start, End: run[len(run)-1].End}

	// Sentence-initial stopwords ("The", "But") never open an entity.
	trimmed := run
	if _, atStart := sentStarts[run[0].Start]; atStart && run[0].IsStop {
		if len(run) == 1 {
			return Entity{}, false
		}
		trimmed = run[1:]
		surface = runText(trimmed)
		lower = strings.ToLower(surface)
		ent = Entity{Text: surface, Start: trimmed[0].Start, End: trimmed[len(trimmed)-1].End}
	}

	if _, ok := gazetteerGPE[lower]; ok {
		ent.Label = LabelGPE
		return ent, true
	}
	if _, ok := gazetteerLOC[lower]; ok {
		ent.Label = LabelLocation
		return ent, true
	}
	if _, ok := gazetteerORG[lower]; ok {
		ent.Label = "ORG"
		return ent, true
	}
	// Uppercase acronyms read as organizations.
	if len(trimmed) == 1 && len(trimmed[0].Text) >= 2 && isAllUpper(trimmed[0].Text) {
		ent.Label = "ORG"
		return ent, true
	}
	// "... Ministry", "... Corp" and similar suffixes.
	last := strings.ToLower(trimmed[len(trimmed)-1].Text)
	if _, ok := orgSuffixes[last]; ok && len(trimmed) >= 2 {
		ent.Label = "ORG"
		return ent, true
	}
	// Honorific opening the run ("President Kovacs") marks the rest as a
	// person.
	if len(trimmed) >= 2 {
		if _, ok := honorifics[strings.ToLower(trimmed[0].Text)]; ok {
			rest := trimmed[1:]
			return Entity{
				Text:  runText(rest),
				Label: "PERSON",
				Start: rest[0].Start,
				End:   rest[len(rest)-1].End,
			}, true
		}
	}
	// Honorific right before the run ("Mr. Smith"): walk back over the
	// abbreviation period.
	k := start - 1
	for k >= 0 && tokens[k].IsPunct {
		k--
	}
	if k >= 0 {
		if _, ok := honorifics[strings.ToLower(tokens[k].Text)]; ok {
			ent.Label = "PERSON"
			return ent, true
		}
	}
	// A mid-sentence run of two or three capitalized words defaults to a
	// person name.
	if _, atStart := sentStarts[trimmed[0].Start]; !atStart && len(trimmed) >= 2 && len(trimmed) <= 3 {
		ent.Label = "PERSON"
		return ent, true
	}
	return Entity{}, false
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
