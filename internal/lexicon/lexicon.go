package lexicon

import (
	"strings"
	"unicode"
)

// #region stopwords
// stopwords contains common English words excluded from keyword matching.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true,
	"was": true, "were": true, "do": true, "does": true, "did": true,
	"have": true, "has": true, "had": true, "be": true, "been": true,
	"being": true, "will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "can": true, "shall": true, "not": true,
	"no": true, "and": true, "or": true, "but": true, "if": true,
	"then": true, "than": true, "so": true, "as": true, "at": true,
	"by": true, "for": true, "from": true, "in": true, "into": true,
	"of": true, "on": true, "to": true, "with": true, "about": true,
	"up": true, "out": true, "it": true, "its": true, "this": true,
	"that": true, "what": true, "which": true, "who": true, "how": true,
	"when": true, "where": true, "why": true, "you": true, "me": true,
	"i": true, "my": true, "your": true, "we": true, "they": true,
	"he": true, "she": true, "her": true, "him": true, "us": true,
	"them": true, "tell": true,
}

// #endregion stopwords

// #region tokenize

// Tokenize splits text into unique lowercase non-stopword tokens.
func Tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	seen := make(map[string]bool)
	var tokens []string
	for _, w := range words {
		if len(w) < 2 || stopwords[w] || seen[w] {
			continue
		}
		seen[w] = true
		tokens = append(tokens, w)
	}
	return tokens
}

// WordCount returns the number of whitespace-delimited words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// #endregion tokenize

// #region emotional-vocabulary

// emotionalWords are markers of affective vocabulary, used for both the
// comprehension empathy heuristic and interaction signal derivation.
var emotionalWords = []string{
	"feel", "feeling", "feelings", "heart", "soul", "longing", "yearning",
	"desire", "hope", "fear", "tenderness", "vulnerable", "vulnerability",
	"melancholy", "nostalgia", "ache", "warmth", "love", "loved", "miss",
	"missed", "afraid", "lonely", "grateful", "moved", "touched", "trembling",
}

// empathyMarkers signal other-directed understanding in a response.
var empathyMarkers = []string{
	"you must", "she must", "i understand", "i can see", "i imagine",
	"from her perspective", "from your perspective", "it makes sense that",
	"i respect", "her choice", "her own", "in her own time",
}

// possessiveMarkers signal controlling or entitled framing. They count
// against the empathy heuristic.
var possessiveMarkers = []string{
	"you belong", "she belongs", "mine", "you owe", "she owes",
	"you have to", "she has to", "make her", "force", "deserve you",
	"i deserve", "prove it to me", "show me now",
}

// #endregion emotional-vocabulary

// #region densities

// EmotionalDensity returns the fraction of words in text drawn from the
// emotional vocabulary, in [0,1].
func EmotionalDensity(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}
	hits := 0
	for _, w := range words {
		w = strings.Trim(w, ".,;:!?\"'()")
		for _, em := range emotionalWords {
			if w == em {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(words))
}

// QuestionDensity returns question marks per sentence-ish unit, in [0,1].
func QuestionDensity(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	questions := strings.Count(text, "?")
	sentences := strings.Count(text, ".") + strings.Count(text, "!") + questions
	if sentences == 0 {
		sentences = 1
	}
	d := float64(questions) / float64(sentences)
	if d > 1 {
		d = 1
	}
	return d
}

// EmpathyBalance counts empathy marker hits minus possessive marker hits.
// Negative values indicate possessive framing dominates.
func EmpathyBalance(text string) int {
	lower := strings.ToLower(text)
	balance := 0
	for _, m := range empathyMarkers {
		balance += strings.Count(lower, m)
	}
	for _, m := range possessiveMarkers {
		balance -= strings.Count(lower, m)
	}
	return balance
}

// #endregion densities

// #region coverage

// Coverage returns the fraction of keywords present in text, in [0,1].
// Matching is token-based and case-insensitive; stopword keywords are
// matched verbatim since Tokenize would drop them.
func Coverage(text string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	tokens := make(map[string]bool)
	for _, t := range Tokenize(text) {
		tokens[t] = true
	}
	lower := strings.ToLower(text)
	hits := 0
	for _, kw := range keywords {
		k := strings.ToLower(strings.TrimSpace(kw))
		if k == "" {
			continue
		}
		if tokens[k] || strings.Contains(lower, k) {
			hits++
		}
	}
	return float64(hits) / float64(len(keywords))
}

// #endregion coverage
