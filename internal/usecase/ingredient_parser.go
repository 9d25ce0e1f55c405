package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/platewise/backend/internal/domain"
	"github.com/platewise/backend/internal/units"
)

// Package-level compiled regex patterns for performance
var multipleSpacesRegex = regexp.MustCompile(`\s+`)

// getQuantity scans forward from start while tokens form a quantity run:
// plain numbers, fractions written without interior spaces, unicode vulgar
// fraction glyphs, and spelled-out number words. Addition markers ("and")
// extend the run; range markers ("to", "-") close the accumulated value as
// the minimum and start accumulating the maximum. The run stops at the
// first token that is none of the above.
//
// Returns (min, max, matched text, next index); when nothing matched, next
// equals start.
func getQuantity(tokens []Token, start int, catalog *units.Config) (float64, float64, string, int) {
	var parts []string
	var minValue float64
	haveMin := false
	firstTok, lastTok := -1, -1 // token span of the side currently accumulating

	i := start
scan:
	for i < len(tokens) {
		tok := tokens[i]
		if isSpaceToken(tok) {
			i++
			continue
		}
		lower := strings.ToLower(tok.Text)
		glyph, isGlyph := catalog.FractionGlyphs[tok.Text]
		word, isWord := catalog.NumberWords[lower]

		switch {
		case isNumberToken(tok):
			end := i
			// A fraction is number "/" number with no intervening space.
			if i+2 < len(tokens) && tokens[i+1].Text == "/" && isNumberToken(tokens[i+2]) &&
				tokens[i+1].Start == tok.End && tokens[i+2].Start == tokens[i+1].End {
				parts = append(parts, tok.Text+"/"+tokens[i+2].Text)
				end = i + 2
			} else {
				parts = append(parts, tok.Text)
			}
			if firstTok < 0 {
				firstTok = i
			}
			lastTok = end
			i = end + 1
		case isGlyph:
			parts = append(parts, glyph)
			if firstTok < 0 {
				firstTok = i
			}
			lastTok = i
			i++
		case isWord:
			parts = append(parts, strconv.FormatFloat(word, 'f', -1, 64))
			if firstTok < 0 {
				firstTok = i
			}
			lastTok = i
			i++
		case catalog.AdditionMarkers[lower] && len(parts) > 0:
			i++
		case catalog.RangeMarkers[lower] && len(parts) > 0:
			minValue = evaluateQuantity(parts)
			haveMin = true
			parts = parts[:0]
			firstTok, lastTok = -1, -1
			i++
		default:
			break scan
		}
	}

	if len(parts) == 0 && !haveMin {
		return 0, 0, "", start
	}

	value := minValue
	if len(parts) > 0 {
		value = evaluateQuantity(parts)
	}
	if !haveMin {
		minValue = value
	}

	text := ""
	if firstTok >= 0 {
		var b strings.Builder
		for _, t := range tokens[firstTok : lastTok+1] {
			b.WriteString(t.Text)
		}
		text = b.String()
	}
	return minValue, value, text, i
}

// evaluateQuantity sums the accumulated numeric parts ("1", "1/2", "0.5")
// and rounds to 2 decimal places.
func evaluateQuantity(parts []string) float64 {
	var total float64
	for _, part := range parts {
		if num, den, ok := strings.Cut(part, "/"); ok {
			n, errN := strconv.ParseFloat(num, 64)
			d, errD := strconv.ParseFloat(den, 64)
			if errN == nil && errD == nil && d != 0 {
				total += n / d
			}
			continue
		}
		if v, err := strconv.ParseFloat(part, 64); err == nil {
			total += v
		}
	}
	return units.Round(total, 2)
}

// getUnit skips size adjectives and whitespace, then matches a catalog unit
// case-insensitively. The unit is optional: when nothing matches, the
// original index is returned.
func getUnit(tokens []Token, start int, catalog *units.Config) (*units.UnitDetail, string, int) {
	i := start
	for i < len(tokens) && (isSpaceToken(tokens[i]) || catalog.SizeAdjectives[strings.ToLower(tokens[i].Text)]) {
		i++
	}
	if i < len(tokens) {
		if detail := catalog.Unit(tokens[i].Text); detail != nil {
			return detail, tokens[i].Text, i + 1
		}
	}
	return nil, "", start
}

// getIngredient collects the ingredient phrase: everything up to the first
// top-level comma, minus parenthesized asides, minus a single leading
// preposition, size adjective or stray period. Returns the phrase and the
// index of the terminating comma (or end of tokens).
func getIngredient(tokens []Token, start int, catalog *units.Config) (string, int) {
	i := start
	for i < len(tokens) && isSpaceToken(tokens[i]) {
		i++
	}
	if i < len(tokens) {
		lower := strings.ToLower(tokens[i].Text)
		if catalog.Prepositions[lower] || catalog.SizeAdjectives[lower] || tokens[i].Text == "." {
			i++
		}
	}

	var b strings.Builder
	depth := 0
	for ; i < len(tokens); i++ {
		t := tokens[i].Text
		if depth == 0 && t == "," {
			break
		}
		switch t {
		case "(", "[":
			depth++
			continue
		case ")", "]":
			if depth > 0 {
				depth--
			}
			continue
		}
		if depth > 0 {
			continue
		}
		b.WriteString(t)
	}

	phrase := strings.TrimSpace(multipleSpacesRegex.ReplaceAllString(b.String(), " "))
	return phrase, i
}

// getAlternativeQuantity consumes a parenthesized or slash-delimited
// quantity+unit pair immediately after the primary unit, e.g. the
// "(14 oz)" in "400g (14 oz) chopped tomatoes". Both the quantity and the
// unit must be present or nothing is consumed.
func getAlternativeQuantity(tokens []Token, start int, catalog *units.Config) (*domain.AlternativeQuantity, int) {
	i := start
	for i < len(tokens) && isSpaceToken(tokens[i]) {
		i++
	}
	if i >= len(tokens) {
		return nil, start
	}

	parenthesized := tokens[i].Text == "("
	if !parenthesized && tokens[i].Text != "/" {
		return nil, start
	}

	minQ, maxQ, quantityText, next := getQuantity(tokens, i+1, catalog)
	if quantityText == "" {
		return nil, start
	}
	detail, unitText, next := getUnit(tokens, next, catalog)
	if detail == nil {
		return nil, start
	}
	if parenthesized {
		for next < len(tokens) && isSpaceToken(tokens[next]) {
			next++
		}
		if next >= len(tokens) || tokens[next].Text != ")" {
			return nil, start
		}
		next++
	}

	return &domain.AlternativeQuantity{
		Quantity:    maxQ,
		Unit:        detail.Symbol,
		UnitText:    unitText,
		MinQuantity: minQ,
		MaxQuantity: maxQ,
	}, next
}

// ingredientParseOptions controls optional parse outputs.
type ingredientParseOptions struct {
	includeExtra            bool
	includeAlternativeUnits bool
}

// parseIngredient turns one free-text ingredient line into a structured
// record. Returns nil for empty or whitespace-only input; malformed input
// degrades to an unparsed phrase rather than failing.
func parseIngredient(text string, catalog *units.Config, opts ingredientParseOptions) *domain.IngredientParseResult {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	tokens := tokenize(text, true)

	minQ, maxQ, quantityText, idx := getQuantity(tokens, 0, catalog)
	detail, unitText, idx := getUnit(tokens, idx, catalog)

	var alternatives []domain.AlternativeQuantity
	if detail != nil {
		if alt, next := getAlternativeQuantity(tokens, idx, catalog); alt != nil {
			alternatives = append(alternatives, *alt)
			idx = next
		}
	}

	ingredient, commaIdx := getIngredient(tokens, idx, catalog)

	extra := ""
	if opts.includeExtra && commaIdx < len(tokens) {
		var b strings.Builder
		for _, t := range tokens[commaIdx+1:] {
			b.WriteString(t.Text)
		}
		extra = strings.TrimSpace(b.String())
	}

	result := &domain.IngredientParseResult{
		Quantity:              maxQ,
		QuantityText:          quantityText,
		MinQuantity:           minQ,
		MaxQuantity:           maxQ,
		Ingredient:            ingredient,
		Extra:                 extra,
		AlternativeQuantities: alternatives,
	}
	if detail != nil {
		result.Unit = detail.DisplayText
		result.UnitText = unitText
		if opts.includeAlternativeUnits {
			result.AlternativeQuantities = append(result.AlternativeQuantities,
				catalog.IngredientConversions(maxQ, minQ, maxQ, detail.Symbol)...)
		}
	}
	return result
}
