// Package text provides the pure text primitives shared by chunking,
// scoring, and answer assembly: tokenisation, slug generation, and
// sentence splitting. Every function is deterministic and side-effect
// free.
package text

import (
	"strings"
	"unicode"
)

// Tokenize lowercases s and extracts maximal runs of alphanumeric or
// underscore characters in order. Punctuation and whitespace act as
// separators. Empty input yields an empty sequence.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Slugify lowercases s, replaces every maximal run of characters
// outside [a-z0-9] with a single underscore, and strips leading and
// trailing underscores. Slugifying a slug returns it unchanged.
func Slugify(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// Sentences splits s on end-of-sentence punctuation followed by
// whitespace. The punctuation stays attached to the preceding
// sentence; surrounding whitespace is trimmed. Text without a final
// terminator still yields its trailing sentence.
func Sentences(s string) []string {
	runes := []rune(strings.TrimSpace(s))

	var sentences []string
	var current strings.Builder
	flush := func() {
		if t := strings.TrimSpace(current.String()); t != "" {
			sentences = append(sentences, t)
		}
		current.Reset()
	}

	for i, r := range runes {
		current.WriteRune(r)
		if isTerminator(r) && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			flush()
		}
	}
	flush()

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
