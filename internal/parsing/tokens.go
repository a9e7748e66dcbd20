package parsing

import (
	"strings"
	"unicode"
)

// Tokenize lowercases the input and splits it into alphanumeric tokens,
// dropping single characters. Used by the deterministic skill-match fallback,
// so the output must be stable for a given input.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// TokenSet builds a membership set from the tokens of all given texts.
func TokenSet(texts ...string) map[string]bool {
	set := make(map[string]bool)
	for _, text := range texts {
		for _, tok := range Tokenize(text) {
			set[tok] = true
		}
	}
	return set
}
