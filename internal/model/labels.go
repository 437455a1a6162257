package model

import (
	"strings"
	"unicode"
)

// DefaultLabeler turns a field name such as "telephone" or "home_address" into
// a human-friendly label ("Telephone", "Home Address"). It splits on
// underscores, dashes, spaces and camelCase boundaries.
func DefaultLabeler(name string) string {
	words := strings.FieldsFunc(splitCamel(name), func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func splitCamel(input string) string {
	var out strings.Builder
	var prev rune
	for i, r := range input {
		if i > 0 && unicode.IsLower(prev) && unicode.IsUpper(r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
		prev = r
	}
	return out.String()
}
