package usecase

import (
	"html"
	"regexp"
	"strings"

	"github.com/platewise/backend/internal/domain"
)

// stepNoiseRegex matches everything a normalized step drops: any character
// that is not a letter, space, "/", "&" or "-".
var stepNoiseRegex = regexp.MustCompile(`[^\p{L}/&\- ]+`)

// normalizedStep is a step's instruction text reduced to an ordered lemma
// token sequence plus a membership set for fast variant screening.
type normalizedStep struct {
	tokens   []string
	tokenSet map[string]bool
}

// normalizeStep lowercases, HTML-unescapes and strips a step's text, then
// lemmatizes it word by word. Words the lemmatizer cannot resolve fall back
// to their lowercased surface form.
func normalizeStep(text string, lemmatizer domain.Lemmatizer) normalizedStep {
	cleaned := html.UnescapeString(strings.ToLower(text))
	cleaned = stepNoiseRegex.ReplaceAllString(cleaned, " ")
	cleaned = multipleSpacesRegex.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	step := normalizedStep{tokenSet: make(map[string]bool)}
	if cleaned == "" {
		return step
	}
	for _, lemma := range lemmatizer.Lemmatize(cleaned) {
		word := lemma.Lemma
		if word == "" {
			word = strings.ToLower(lemma.Surface)
		}
		step.tokens = append(step.tokens, word)
		step.tokenSet[word] = true
	}
	return step
}
