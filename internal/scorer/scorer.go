// Package scorer implements the content consistency scorer that gates
// which fragments may enter the narrative graph. It is a rule-based
// classifier over a fixed, versioned rule table: pure, deterministic,
// and safe for parallel invocation.
package scorer

import (
	"strings"
)

// RuleTableVersion identifies the marker/violation tables below. Bump it
// whenever a table changes so recorded scores stay attributable.
const RuleTableVersion = 1

// #region rule-tables

// markerTable holds per-trait lexical markers. Each hit is worth
// markerWeight points toward that trait's 0-25 sub-score.
var markerTable = map[Trait][]string{
	TraitMysterious: {
		"secret", "secrets", "mystery", "enigma", "hidden", "whisper",
		"whispers", "hint", "hints", "clue", "clues", "shadow", "shadows",
		"veil", "perhaps", "maybe", "between the lines", "more than it seems",
		"not everything", "do you dare", "could it be",
	},
	TraitSeductive: {
		"charm", "alluring", "tempting", "irresistible", "fascinating",
		"captivating", "spell", "magnetism", "enticing", "suggestive",
		"my dear", "darling", "treasure", "closer", "lean in", "with me",
	},
	TraitEmotional: {
		"feeling", "feelings", "emotion", "emotions", "heart", "soul",
		"depth", "vulnerability", "melancholy", "nostalgia", "longing",
		"desire", "hope", "fear", "restless", "inner conflict", "dilemma",
	},
	TraitIntellectual: {
		"reflect", "reflection", "contemplate", "ponder", "interpret",
		"meaning", "understanding", "wisdom", "knowledge", "perspective",
		"dimension", "complexity", "explore", "discover", "reveal",
		"have you thought", "have you wondered", "consider this",
		"imagine that", "what do you make of",
	},
}

// contrastMarkers are paired-contrast cues scored as emotional depth.
var contrastMarkers = []string{
	"on one hand", "on the other", "and yet", "even so", "a mixture of",
	"both", "contradiction", "paradox",
}

// violationTable holds disqualifying patterns. Every hit deducts
// violationPenalty points spread across all trait sub-scores.
var violationTable = map[string][]string{
	"too direct": {
		"bluntly", "plainly put", "obviously", "clearly", "to be direct",
		"simply put", "long story short",
	},
	"too casual": {
		"hey", "okay", "cool", "awesome", "lol", "haha", "yep", "nope",
	},
	"technical vocabulary detected": {
		"system", "configuration", "parameter", "parameters", "settings",
		"menu", "button", "database", "admin", "error code",
	},
	"robotic phrasing": {
		"process complete", "operation successful", "command executed",
		"request received", "please wait",
	},
}

// violationRemediations pairs each violation rule with its suggestion.
var violationRemediations = map[string]string{
	"too direct":                    "Replace direct statements with suggestion and implication",
	"too casual":                    "Remove casual fillers; keep the voice composed and deliberate",
	"technical vocabulary detected": "Strip interface and system vocabulary from narrative voice",
	"robotic phrasing":              "Rewrite mechanical phrasing as in-character speech",
}

// traitRemediations pairs each trait shortfall with its suggestion.
var traitRemediations = map[Trait]string{
	TraitMysterious:   "Add mystery: trailing ellipses, hints, and suggestion over statement",
	TraitSeductive:    "Include subtle charm and direct address to draw the reader closer",
	TraitEmotional:    "Add emotional layers: inner conflict, vulnerability, contrasts",
	TraitIntellectual: "Engage the mind: pose questions and invite reflection",
}

const (
	markerWeight     = 2.0
	structureWeight  = 3.0
	violationPenalty = 3.0
	maxTraitScore    = 25.0
	// traitFloor is the sub-score below which a trait shortfall is
	// reported as a violation (60% of the per-trait maximum).
	traitFloor = 15.0
)

// #endregion rule-tables

// #region scorer

// Scorer scores text against the narrative voice rule table.
// The zero value is not usable; construct with New.
type Scorer struct {
	config Config
}

// New returns a Scorer with the given thresholds.
func New(config Config) *Scorer {
	return &Scorer{config: config}
}

// Score evaluates text for the given content class. It shares no mutable
// state across calls, so batch scoring may run concurrently and is
// order-independent.
func (s *Scorer) Score(text string, ctx Context) Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		res := Result{
			TraitScores: map[Trait]float64{},
			Violations: []Violation{{
				Rule:        "empty content",
				Remediation: "Provide substantive narrative content",
			}},
		}
		for _, t := range Traits {
			res.TraitScores[t] = 0
		}
		return res
	}

	lower := strings.ToLower(trimmed)

	scores := map[Trait]float64{}
	for _, t := range Traits {
		scores[t] = traitScore(t, trimmed, lower)
	}

	// Violation pass: each hit deducts from every trait sub-score.
	var violations []Violation
	var penalty float64
	for rule, patterns := range violationTable {
		hits := 0
		for _, p := range patterns {
			hits += countWordHits(lower, p)
		}
		if hits > 0 {
			penalty += float64(hits) * violationPenalty
			violations = append(violations, Violation{
				Rule:        rule,
				Remediation: violationRemediations[rule],
			})
		}
	}
	for _, t := range Traits {
		scores[t] = clampTrait(scores[t] - penalty)
	}

	// Trait shortfalls become named violations with remediation.
	for _, t := range Traits {
		if scores[t] < traitFloor {
			violations = append(violations, Violation{
				Rule:        "insufficient " + string(t),
				Remediation: traitRemediations[t],
			})
		}
	}

	overall := 0.0
	for _, t := range Traits {
		overall += scores[t]
	}

	return Result{
		TraitScores:    scores,
		OverallScore:   overall,
		MeetsThreshold: overall >= float64(s.config.ThresholdFor(ctx)),
		Violations:     violations,
	}
}

// #endregion scorer

// #region trait-scoring

func traitScore(t Trait, original, lower string) float64 {
	var score float64
	for _, m := range markerTable[t] {
		if strings.Contains(lower, m) {
			score += markerWeight
		}
	}

	switch t {
	case TraitMysterious:
		// Trailing ellipses and stacked questions read as intrigue.
		score += float64(strings.Count(original, "...")) * structureWeight
		if strings.Count(original, "?") >= 2 {
			score += markerWeight
		}
	case TraitSeductive:
		// Direct address pulls the reader in.
		if containsWord(lower, "you") || containsWord(lower, "your") {
			score += markerWeight
		}
	case TraitEmotional:
		for _, m := range contrastMarkers {
			if strings.Contains(lower, m) {
				score += structureWeight
			}
		}
	case TraitIntellectual:
		questions := float64(strings.Count(original, "?"))
		if questions > 5 {
			questions = 5
		}
		score += questions
	}

	return clampTrait(score)
}

func clampTrait(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxTraitScore {
		return maxTraitScore
	}
	return v
}

// containsWord reports whether lower contains w as a whole word.
func containsWord(lower, w string) bool {
	for _, f := range strings.Fields(lower) {
		if strings.Trim(f, ".,;:!?\"'()") == w {
			return true
		}
	}
	return false
}

// countWordHits counts occurrences of pattern in lower. Single-word
// patterns match whole words only; phrases match as substrings.
func countWordHits(lower, pattern string) int {
	if strings.ContainsRune(pattern, ' ') {
		return strings.Count(lower, pattern)
	}
	count := 0
	for _, f := range strings.Fields(lower) {
		if strings.Trim(f, ".,;:!?\"'()") == pattern {
			count++
		}
	}
	return count
}

// #endregion trait-scoring
