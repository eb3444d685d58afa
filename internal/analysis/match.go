package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// Policy decides how many keywords a paragraph must contain to match.
type Policy string

const (
	// PolicyAny matches a paragraph containing at least one keyword.
	PolicyAny Policy = "any"
	// PolicyAll matches a paragraph only if it contains every keyword.
	PolicyAll Policy = "all"
)

// Mode controls how a keyword is located inside a paragraph.
//
// ModeSubstring matches anywhere, so "ev" matches inside "every". That is
// the historical behavior and remains the default; ModeWord is the stricter
// opt-in that requires the keyword to appear as a whole word.
type Mode string

const (
	ModeSubstring Mode = "substring"
	ModeWord      Mode = "word"
)

// ErrNoKeywords reports that filtering was attempted with an empty keyword
// set. Callers must validate keyword input before running a pipeline.
var ErrNoKeywords = errors.New("analysis: keyword set is empty")

// ParsePolicy maps a user-supplied policy string to a Policy.
// An empty string selects PolicyAny.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return PolicyAny, nil
	case "all":
		return PolicyAll, nil
	}
	return "", fmt.Errorf("analysis: unknown match policy %q", s)
}

// ParseMode maps a user-supplied mode string to a Mode.
// An empty string selects ModeSubstring.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "substring":
		return ModeSubstring, nil
	case "word":
		return ModeWord, nil
	}
	return "", fmt.Errorf("analysis: unknown match mode %q", s)
}

// ParseKeywords splits a comma-separated keyword string into trimmed,
// non-empty terms, preserving order.
func ParseKeywords(s string) []string {
	var keywords []string
	for _, k := range strings.Split(s, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// FilterOptions configures paragraph filtering.
type FilterOptions struct {
	Policy Policy
	Mode   Mode
	// MinLength excludes paragraphs shorter than this many characters
	// before any keyword is consulted. Zero disables the gate.
	MinLength int
}

// FilterParagraphs returns the ordered subsequence of paragraphs satisfying
// the options against the keyword set. Matching is case-insensitive.
// Filtering never reorders; the result is a subset by index of the input.
// An empty keyword set returns ErrNoKeywords.
func FilterParagraphs(paragraphs []string, keywords []string, opts FilterOptions) ([]string, error) {
	if len(keywords) == 0 {
		return nil, ErrNoKeywords
	}
	if opts.Policy == "" {
		opts.Policy = PolicyAny
	}
	if opts.Mode == "" {
		opts.Mode = ModeSubstring
	}

	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			lowered = append(lowered, k)
		}
	}
	if len(lowered) == 0 {
		return nil, ErrNoKeywords
	}

	var matched []string
	for _, p := range paragraphs {
		if len(p) < opts.MinLength {
			continue
		}
		if paragraphMatches(strings.ToLower(p), lowered, opts.Policy, opts.Mode) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func paragraphMatches(lowerPara string, keywords []string, policy Policy, mode Mode) bool {
	for _, k := range keywords {
		found := keywordFound(lowerPara, k, mode)
		if policy == PolicyAll && !found {
			return false
		}
		if policy == PolicyAny && found {
			return true
		}
	}
	return policy == PolicyAll
}

func keywordFound(lowerPara, keyword string, mode Mode) bool {
	if mode == ModeWord {
		return containsWord(lowerPara, keyword)
	}
	return strings.Contains(lowerPara, keyword)
}

// containsWord reports whether keyword occurs in s with non-alphanumeric
// (or string-edge) characters on both sides.
func containsWord(s, keyword string) bool {
	if keyword == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(s[start:], keyword)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(keyword)
		leftOK := i == 0 || !isWordByte(s[i-1])
		rightOK := end == len(s) || !isWordByte(s[end])
		if leftOK && rightOK {
			return true
		}
		start = i + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// KeywordCounts reports, for each keyword, how many of the matched
// paragraphs contain it. It rescans the matched set with the same mode used
// for filtering; counts are case-insensitive.
func KeywordCounts(matched []string, keywords []string, mode Mode) map[string]int {
	if mode == "" {
		mode = ModeSubstring
	}
	counts := make(map[string]int, len(keywords))
	for _, k := range keywords {
		lk := strings.ToLower(k)
		n := 0
		for _, p := range matched {
			if keywordFound(strings.ToLower(p), lk, mode) {
				n++
			}
		}
		counts[k] = n
	}
	return counts
}
