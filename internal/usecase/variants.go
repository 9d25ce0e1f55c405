package usecase

import (
	"regexp"
	"strings"

	"github.com/platewise/backend/internal/domain"
)

// Package-level compiled regex patterns for ingredient phrase cleanup
var (
	asideRegex     = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
	partSplitRegex = regexp.MustCompile(`[/&-]`)
)

// ingredientProfile is the matchable form of one ingredient: its canonical
// token sequence and every candidate n-gram variant, keyed by joined text.
type ingredientProfile struct {
	index     int
	canonical []string
	variants  map[string][]string
}

func variantKey(tokens []string) string {
	return strings.Join(tokens, " ")
}

// buildProfile derives the canonical token sequence and variant set for one
// ingredient from its name-bearing text fields.
func (s *MatchingService) buildProfile(index int, ingredient domain.RecipeIngredient) ingredientProfile {
	profile := ingredientProfile{index: index, variants: make(map[string][]string)}

	sources := []string{ingredient.IngredientPart, ingredient.IngredientText}
	if s.config.IncludeExtraInformation {
		sources = append(sources, ingredient.ExtraInformation)
	}

	var phrases [][]string
	seen := make(map[string]bool)
	for _, source := range sources {
		for _, phrase := range s.filterSource(source) {
			key := variantKey(phrase)
			if len(phrase) == 0 || seen[key] {
				continue
			}
			seen[key] = true
			phrases = append(phrases, phrase)
			// The canonical sequence is the most token-rich filtered phrase.
			if len(phrase) > len(profile.canonical) {
				profile.canonical = phrase
			}
		}
	}

	for _, phrase := range phrases {
		s.addVariants(&profile, phrase)
		for _, synonym := range s.config.Synonyms[variantKey(phrase)] {
			if filtered := s.filterTokens(strings.Fields(strings.ToLower(synonym))); len(filtered) > 0 {
				profile.variants[variantKey(filtered)] = filtered
			}
		}
	}
	return profile
}

// filterSource turns one raw name string into filtered, lemmatized token
// phrases: each "/"-, "&"- or "-"-separated part plus the whole joined
// phrase.
func (s *MatchingService) filterSource(source string) [][]string {
	source = strings.ToLower(source)
	source = asideRegex.ReplaceAllString(source, " ")
	// Trailing comma clause ("onions, diced") never names the ingredient.
	if idx := strings.Index(source, ","); idx >= 0 {
		source = source[:idx]
	}
	source = stepNoiseRegex.ReplaceAllString(source, " ")

	var phrases [][]string
	parts := partSplitRegex.Split(source, -1)
	if len(parts) > 1 {
		for _, part := range parts {
			if phrase := s.filterTokens(strings.Fields(part)); len(phrase) > 0 {
				phrases = append(phrases, phrase)
			}
		}
	}
	whole := partSplitRegex.ReplaceAllString(source, " ")
	if phrase := s.filterTokens(strings.Fields(whole)); len(phrase) > 0 {
		phrases = append(phrases, phrase)
	}
	return phrases
}

// filterTokens lemmatizes words and drops stop words, prepositions, unit
// words, numbers and short tokens that are not allow-listed.
func (s *MatchingService) filterTokens(words []string) []string {
	var filtered []string
	for _, word := range words {
		lemma := word
		if lemmas := s.lemmatizer.Lemmatize(word); len(lemmas) > 0 && lemmas[0].Lemma != "" {
			lemma = lemmas[0].Lemma
		}
		if s.config.StopWords[word] || s.config.StopWords[lemma] {
			continue
		}
		if s.catalog.Prepositions[word] || s.catalog.Prepositions[lemma] {
			continue
		}
		if s.catalog.Unit(word) != nil || s.catalog.Unit(lemma) != nil {
			continue
		}
		if isNumeric(word) {
			continue
		}
		if len(lemma) < s.config.MinTokenLength && !s.config.ShortTokenAllowlist[lemma] {
			continue
		}
		filtered = append(filtered, lemma)
	}
	return filtered
}

// addVariants adds every 1..max n-gram of a filtered phrase, applying the
// single-token suppression rules:
//   - a lone token from a multi-token phrase is dropped when it carries too
//     little information on its own ("oil", "sauce")
//   - a lone modifier (any token but the phrase head) is dropped unless the
//     head explicitly permits modifier-only matches ("breast", "fillet")
func (s *MatchingService) addVariants(profile *ingredientProfile, phrase []string) {
	head := phrase[len(phrase)-1]
	maxN := s.config.NGramMax
	for n := s.config.NGramMin; n <= maxN && n <= len(phrase); n++ {
		for i := 0; i+n <= len(phrase); i++ {
			gram := phrase[i : i+n]
			if n == 1 && len(phrase) >= 2 {
				token := gram[0]
				if s.config.LowInfoHeads[token] {
					continue
				}
				if token != head && !s.config.ModifierAllowHeads[head] {
					continue
				}
			}
			profile.variants[variantKey(gram)] = append([]string(nil), gram...)
		}
	}
}

// isNumeric checks if a string contains only digits
func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
