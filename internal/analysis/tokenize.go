package analysis

import (
	"sort"
	"strings"
)

// DefaultMinTokenLength is the minimum token length gate: tokens must be
// strictly longer than this to survive filtering.
const DefaultMinTokenLength = 2

// Tokenizer splits text into lowercase alphanumeric tokens, dropping
// stopwords and short tokens.
type Tokenizer struct {
	stopwords map[string]struct{}
	minLen    int
}

// NewTokenizer builds a tokenizer over the given stopword set. minLen is the
// strict lower bound on token length; values <= 0 select
// DefaultMinTokenLength.
func NewTokenizer(stopwords map[string]struct{}, minLen int) *Tokenizer {
	if minLen <= 0 {
		minLen = DefaultMinTokenLength
	}
	if stopwords == nil {
		stopwords = map[string]struct{}{}
	}
	return &Tokenizer{stopwords: stopwords, minLen: minLen}
}

// Tokenize scans the text rune by rune, emitting maximal runs of ASCII
// letters and digits as lowercase tokens. A token is kept only if it is
// longer than the configured minimum and not a stopword. Feeding the output
// of NormalizeTokens reduces the scan to a whitespace split, but arbitrary
// text is handled the same way.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		tok := current.String()
		current.Reset()
		if t.keep(tok) {
			tokens = append(tokens, tok)
		}
	}

	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			current.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			current.WriteRune(r + ('a' - 'A'))
		default:
			flush()
		}
	}
	flush()

	return tokens
}

func (t *Tokenizer) keep(tok string) bool {
	if len(tok) <= t.minLen {
		return false
	}
	_, stop := t.stopwords[tok]
	return !stop
}

// TokenCount pairs a token with its occurrence count.
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// CountFrequencies tallies the token stream into a table sorted by
// descending count. Ties keep first-occurrence order, so identical inputs
// always produce identical tables.
func CountFrequencies(tokens []string) []TokenCount {
	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		if _, ok := counts[tok]; !ok {
			firstSeen[tok] = i
		}
		counts[tok]++
	}

	table := make([]TokenCount, 0, len(counts))
	for tok, n := range counts {
		table = append(table, TokenCount{Token: tok, Count: n})
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].Count != table[j].Count {
			return table[i].Count > table[j].Count
		}
		return firstSeen[table[i].Token] < firstSeen[table[j].Token]
	})
	return table
}

// TopN returns at most n leading entries of a frequency table.
// n <= 0 returns the whole table.
func TopN(table []TokenCount, n int) []TokenCount {
	if n <= 0 || n >= len(table) {
		return table
	}
	return table[:n]
}

// WordCloudInput joins the filtered token stream with single spaces; the
// result feeds an external word-cloud or bar-chart renderer.
func WordCloudInput(tokens []string) string {
	return strings.Join(tokens, " ")
}
