package annotate

import (
	"context"
	"math"
	"strings"
)

// Valence lexicon for the built-in polarity scorer. Scores follow the
// usual [-4,4] convention for word valence.
var valence = map[string]float64{
	// Positive.
	"agree": 1.5, "agreement": 1.8, "aid": 1.2, "approve": 1.6,
	"best": 3.2, "better": 1.9, "breakthrough": 2.2, "calm": 1.3,
	"ceasefire": 1.5, "celebrate": 2.7, "cooperation": 1.7, "excellent": 2.7,
	"free": 1.8, "freedom": 2.2, "gain": 1.6, "good": 1.9, "great": 3.1,
	"growth": 1.4, "happy": 2.7, "heal": 1.7, "help": 1.7, "hope": 1.9,
	"hopeful": 2.0, "improve": 1.9, "improvement": 1.8, "peace": 2.5,
	"peaceful": 2.2, "positive": 2.3, "progress": 1.6, "prosperity": 2.3,
	"rebuild": 1.4, "recover": 1.6, "recovery": 1.7, "relief": 1.6,
	"rescue": 1.5, "safe": 1.8, "stability": 1.5, "stable": 1.3,
	"strong": 1.3, "succeed": 2.0, "success": 2.4, "successful": 2.2,
	"support": 1.7, "thrive": 2.2, "victory": 2.4, "welcome": 1.8,
	"win": 2.8,
	// Negative.
	"abuse": -2.8, "afraid": -2.0, "anger": -2.2, "angry": -2.3,
	"attack": -2.1, "bad": -2.5, "bomb": -2.7, "bombing": -2.7,
	"casualty": -2.2, "catastrophe": -3.0, "chaos": -2.4, "collapse": -2.2,
	"conflict": -1.8, "crime": -2.5, "crisis": -2.3, "damage": -2.0,
	"danger": -2.4, "dangerous": -2.3, "dead": -3.3, "deadly": -2.9,
	"death": -2.9, "defeat": -2.0, "destroy": -2.6, "destruction": -2.6,
	"die": -2.9, "disaster": -3.1, "displace": -1.8, "fail": -2.3,
	"failure": -2.4, "fear": -2.2, "fight": -1.6, "flee": -1.9,
	"genocide": -3.6, "horrible": -2.8, "horrific": -3.1, "hostage": -2.5,
	"hunger": -2.1, "hurt": -2.4, "invade": -2.2, "invasion": -2.2,
	"kill": -3.4, "killing": -3.2, "loss": -2.0, "massacre": -3.5,
	"murder": -3.3, "negative": -2.0, "outbreak": -1.8, "pain": -2.4,
	"panic": -2.3, "poverty": -2.3, "protest": -0.9, "riot": -2.2,
	"sanction": -1.3, "shoot": -2.6, "shooting": -2.7, "starve": -2.8,
	"strike": -1.4, "suffer": -2.4, "terrible": -2.7, "terror": -3.0,
	"terrorism": -3.1, "terrorist": -3.0, "threat": -2.1, "threaten": -2.1,
	"tragedy": -2.9, "tragic": -2.7, "victim": -2.1, "violence": -2.8,
	"violent": -2.6, "war": -2.9, "warn": -1.3, "worse": -2.1,
	"worst": -3.1, "wound": -2.4, "wounded": -2.5,
}

// boosters scale the valence of the word that follows them.
var boosters = map[string]float64{
	"absolutely": 0.29, "completely": 0.29, "deeply": 0.29,
	"especially": 0.29, "extremely": 0.29, "highly": 0.25,
	"incredibly": 0.29, "particularly": 0.27, "really": 0.27,
	"so": 0.22, "totally": 0.29, "very": 0.29,
	"almost": -0.29, "barely": -0.29, "hardly": -0.29,
	"marginally": -0.29, "partly": -0.29, "slightly": -0.29,
	"somewhat": -0.29,
}

// negators flip the polarity of a nearby valence word.
var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "neither": {}, "nor": {},
	"cannot": {}, "can't": {}, "won't": {}, "don't": {}, "doesn't": {},
	"didn't": {}, "isn't": {}, "wasn't": {}, "aren't": {}, "weren't": {},
	"without": {}, "nobody": {}, "nothing": {},
}

const (
	negationScalar     = -0.74 // dampened flip rather than a full inversion
	negationDistance   = 3
	normalizationAlpha = 15
)

// Polarity scores the text with the valence lexicon. The four components
// satisfy the provider contract: positive+negative+neutral = 1 and
// compound is in [-1,1].
func (e *RuleEngine) Polarity(ctx context.Context, text string) (Polarity, error) {
	if err := ctx.Err(); err != nil {
		return Polarity{}, err
	}
	words := strings.Fields(strings.ToLower(text))
	for i, w := range words {
		words[i] = strings.Trim(w, ".,;:!?\"'()[]“”‘’")
	}

	var sum, posMass, negMass, neuMass float64
	for i, w := range words {
		score, ok := valence[w]
		if !ok {
			if lemScore, lok := valence[lemma(w)]; lok {
				score, ok = lemScore, true
			}
		}
		if !ok {
			if w != "" {
				neuMass++
			}
			continue
		}
		// Apply booster and negation from the preceding window.
		for d := 1; d <= negationDistance && i-d >= 0; d++ {
			prev := words[i-d]
			if d == 1 {
				if b, bok := boosters[prev]; bok {
					if score > 0 {
						score += b
					} else {
						score -= b
					}
				}
			}
			if _, nok := negators[prev]; nok {
				score *= negationScalar
				break
			}
		}
		sum += score
		if score > 0 {
			posMass += score + 1
		} else if score < 0 {
			negMass += -score + 1
		} else {
			neuMass++
		}
	}

	p := Polarity{Neutral: 1}
	total := posMass + negMass + neuMass
	if total > 0 {
		p.Positive = round3(posMass / total)
		p.Negative = round3(negMass / total)
		p.Neutral = round3(1 - p.Positive - p.Negative)
	}
	p.Compound = round4(sum / math.Sqrt(sum*sum+normalizationAlpha))
	return p, nil
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
