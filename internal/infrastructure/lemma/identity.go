// Package lemma provides Lemmatizer implementations for the text engine.
package lemma

import (
	"strings"

	"github.com/platewise/backend/internal/domain"
)

// Identity is the trivial lemmatizer: every word's lemma is its lowercased
// surface form. Used for locales without a real lemmatizer and in tests.
type Identity struct{}

// NewIdentity creates an identity lemmatizer.
func NewIdentity() *Identity {
	return &Identity{}
}

// Lemmatize returns one lemma per whitespace-separated word.
func (*Identity) Lemmatize(text string) []domain.Lemma {
	words := strings.Fields(text)
	lemmas := make([]domain.Lemma, 0, len(words))
	for _, word := range words {
		lemmas = append(lemmas, domain.Lemma{Surface: word, Lemma: strings.ToLower(word)})
	}
	return lemmas
}
