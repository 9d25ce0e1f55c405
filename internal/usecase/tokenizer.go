package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// Token is one unit of source text with its byte offsets in the original
// string (end exclusive). Tokens are produced once and never mutated.
type Token struct {
	Text  string
	Start int
	End   int
}

// tokenPattern matches, in order: letter runs (with the latin-1 accented
// ranges and interior hyphens), digit runs with an optional decimal point,
// or any single remaining character.
var tokenPattern = regexp.MustCompile(
	`[a-zA-Z\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{00FF}]+` +
		`(?:-[a-zA-Z\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{00FF}]+)*` +
		`|[0-9]+(?:\.[0-9]+)?` +
		`|[^a-zA-Z0-9]`)

// tokenize splits text into an ordered token sequence. It never fails and
// returns an empty slice for empty input. When keepSpaces is false, tokens
// consisting solely of whitespace are dropped; offsets always refer to the
// original string either way.
func tokenize(text string, keepSpaces bool) []Token {
	if text == "" {
		return nil
	}

	var tokens []Token
	last := 0
	for _, loc := range tokenPattern.FindAllStringIndex(text, -1) {
		// Gap pass: recover any characters the alternation missed so the
		// token list always covers the full input.
		if loc[0] > last {
			tokens = appendToken(tokens, text, last, loc[0], keepSpaces)
		}
		tokens = appendToken(tokens, text, loc[0], loc[1], keepSpaces)
		last = loc[1]
	}
	if last < len(text) {
		tokens = appendToken(tokens, text, last, len(text), keepSpaces)
	}
	return tokens
}

func appendToken(tokens []Token, text string, start, end int, keepSpaces bool) []Token {
	t := text[start:end]
	if !keepSpaces && strings.TrimSpace(t) == "" {
		return tokens
	}
	return append(tokens, Token{Text: t, Start: start, End: end})
}

// isSpaceToken reports whether a token is pure whitespace.
func isSpaceToken(t Token) bool {
	return strings.TrimSpace(t.Text) == ""
}

// isNumberToken reports whether a token is a plain or decimal number.
func isNumberToken(t Token) bool {
	if t.Text == "" || t.Text[0] < '0' || t.Text[0] > '9' {
		return false
	}
	_, err := strconv.ParseFloat(t.Text, 64)
	return err == nil
}
