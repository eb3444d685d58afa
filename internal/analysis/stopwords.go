package analysis

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"
	"sync"
)

//go:embed stopwords_en.txt
var englishStopwordsRaw []byte

var (
	englishOnce  sync.Once
	englishStops map[string]struct{}
)

// EnglishStopwords returns the embedded English stopword list. Loading
// happens once; repeated calls are cheap and return the same set. Callers
// must not mutate the returned map.
func EnglishStopwords() map[string]struct{} {
	englishOnce.Do(func() {
		englishStops = make(map[string]struct{}, 192)
		sc := bufio.NewScanner(bytes.NewReader(englishStopwordsRaw))
		for sc.Scan() {
			w := strings.ToLower(strings.TrimSpace(sc.Text()))
			if w == "" || strings.HasPrefix(w, "#") {
				continue
			}
			englishStops[w] = struct{}{}
		}
	})
	return englishStops
}

// CombinedStopwords unions the English list with caller-supplied
// domain-specific boilerplate terms (organization names, "annual", "report"
// and the like). The result is a fresh map; the base list is never mutated.
func CombinedStopwords(boilerplate []string) map[string]struct{} {
	base := EnglishStopwords()
	out := make(map[string]struct{}, len(base)+len(boilerplate))
	for w := range base {
		out[w] = struct{}{}
	}
	for _, w := range boilerplate {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			out[w] = struct{}{}
		}
	}
	return out
}
