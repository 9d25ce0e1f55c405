package lemma

import (
	"strings"

	"github.com/platewise/backend/internal/domain"
)

// English reduces regular English plurals to their singular dictionary form
// ("cloves" -> "clove", "tomatoes" -> "tomato"). Recipe vocabulary is
// dominated by regular plurals, so a small rule set with an irregular
// exception table covers it; unknown shapes fall back to the lowercased
// surface form.
type English struct {
	exceptions map[string]string
}

// NewEnglish creates the rule-based English lemmatizer.
func NewEnglish() *English {
	return &English{
		exceptions: map[string]string{
			"leaves":   "leaf",
			"halves":   "half",
			"knives":   "knife",
			"loaves":   "loaf",
			"chillies": "chilli",
			"molasses": "molasses",
			"children": "child",
			"feet":     "foot",
		},
	}
}

// Lemmatize returns one lemma per whitespace-separated word.
func (l *English) Lemmatize(text string) []domain.Lemma {
	words := strings.Fields(text)
	lemmas := make([]domain.Lemma, 0, len(words))
	for _, word := range words {
		lemmas = append(lemmas, domain.Lemma{Surface: word, Lemma: l.lemma(word)})
	}
	return lemmas
}

func (l *English) lemma(word string) string {
	w := strings.ToLower(word)
	if lemma, ok := l.exceptions[w]; ok {
		return lemma
	}
	if len(w) < 4 {
		return w
	}
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "oes"),
		strings.HasSuffix(w, "ches"),
		strings.HasSuffix(w, "shes"),
		strings.HasSuffix(w, "sses"),
		strings.HasSuffix(w, "xes"),
		strings.HasSuffix(w, "zes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ss"),
		strings.HasSuffix(w, "us"),
		strings.HasSuffix(w, "is"):
		return w
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1]
	}
	return w
}
