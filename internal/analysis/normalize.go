package analysis

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeDisplay collapses whitespace runs to single spaces and trims the
// result, preserving case and punctuation. The output is NFC-normalized so
// combining sequences from PDF extraction render consistently. Used for
// presentation only.
func NormalizeDisplay(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

// NormalizeTokens lowercases the text, replaces every character that is not
// a lowercase ASCII letter, a digit, or whitespace with a space, then
// collapses whitespace runs. Punctuation and non-ASCII symbols are
// deliberately destroyed; the output feeds the tokenizer.
func NormalizeTokens(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
