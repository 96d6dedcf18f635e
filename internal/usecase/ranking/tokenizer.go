package ranking

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// DefaultMinTokenLength drops single-character tokens ("a", "c", "x").
const DefaultMinTokenLength = 2

// Tokenizer splits text into case-folded word tokens.
// A word is a maximal run of letters, numbers and underscores.
type Tokenizer struct {
	minLen int
}

// NewTokenizer creates a tokenizer that keeps tokens of at least minLen runes.
// Values below 1 fall back to DefaultMinTokenLength.
func NewTokenizer(minLen int) Tokenizer {
	if minLen < 1 {
		minLen = DefaultMinTokenLength
	}
	return Tokenizer{minLen: minLen}
}

// MinLength returns the minimum token length in runes.
func (t Tokenizer) MinLength() int { return t.minLen }

// Tokenize returns the tokens of text in order of appearance, duplicates included.
func (t Tokenizer) Tokenize(text string) []string {
	// cases.Caser is stateful, one per call.
	folded := cases.Fold().String(text)

	var tokens []string
	start := -1
	for i, r := range folded {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = t.appendToken(tokens, folded[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = t.appendToken(tokens, folded[start:])
	}
	return tokens
}

func (t Tokenizer) appendToken(tokens []string, tok string) []string {
	if utf8.RuneCountInString(tok) < t.minLen {
		return tokens
	}
	return append(tokens, tok)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
