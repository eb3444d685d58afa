package analysis

import (
	"reflect"
	"testing"
)

func TestTokenizer_FiltersShortAndStopTokens(t *testing.T) {
	// "AAAA note note page page" with custom stopwords {note, page} and a
	// min token length of 2 leaves only "aaaa".
	tok := NewTokenizer(CombinedStopwords([]string{"note", "page"}), 2)
	got := tok.Tokenize(NormalizeTokens("AAAA note note page page"))
	if !reflect.DeepEqual(got, []string{"aaaa"}) {
		t.Fatalf("expected [aaaa], got %q", got)
	}
}

func TestTokenizer_EnglishStopwordsApply(t *testing.T) {
	tok := NewTokenizer(CombinedStopwords(nil), 2)
	got := tok.Tokenize("the revenue and the growth were strong")
	want := []string{"revenue", "growth", "strong"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTokenizer_LowercasesAndSplitsOnPunctuation(t *testing.T) {
	tok := NewTokenizer(nil, 2)
	got := tok.Tokenize("Semiconductor/EV2024,growth")
	want := []string{"semiconductor", "ev2024", "growth"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	for _, w := range got {
		for _, r := range w {
			if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				t.Errorf("token %q contains non-alphanumeric rune %q", w, r)
			}
		}
	}
}

func TestTokenizer_MinLengthIsStrict(t *testing.T) {
	tok := NewTokenizer(nil, 3)
	got := tok.Tokenize("abc abcd")
	if !reflect.DeepEqual(got, []string{"abcd"}) {
		t.Fatalf("expected only tokens longer than 3, got %q", got)
	}
}

func TestCountFrequencies_DescendingWithStableTies(t *testing.T) {
	tokens := []string{"beta", "alpha", "beta", "gamma", "alpha", "beta"}
	table := CountFrequencies(tokens)

	want := []TokenCount{
		{Token: "beta", Count: 3},
		{Token: "alpha", Count: 2},
		{Token: "gamma", Count: 1},
	}
	if !reflect.DeepEqual(table, want) {
		t.Fatalf("expected %v, got %v", want, table)
	}

	// Ties break by first occurrence in the stream.
	tied := CountFrequencies([]string{"zulu", "alpha", "zulu", "alpha"})
	if tied[0].Token != "zulu" || tied[1].Token != "alpha" {
		t.Errorf("expected first-occurrence tie order, got %v", tied)
	}
}

func TestCountFrequencies_Deterministic(t *testing.T) {
	tokens := []string{"a1", "b2", "c3", "a1", "b2", "d4", "e5", "a1"}
	first := CountFrequencies(tokens)
	for i := 0; i < 10; i++ {
		if got := CountFrequencies(tokens); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: table differs: %v vs %v", i, got, first)
		}
	}
}

func TestTopN(t *testing.T) {
	table := []TokenCount{{"a", 3}, {"b", 2}, {"c", 1}}
	if got := TopN(table, 2); len(got) != 2 || got[1].Token != "b" {
		t.Errorf("TopN(2): got %v", got)
	}
	if got := TopN(table, 0); len(got) != 3 {
		t.Errorf("TopN(0) should return everything, got %v", got)
	}
	if got := TopN(table, 10); len(got) != 3 {
		t.Errorf("TopN(10) should return everything, got %v", got)
	}
}

func TestWordCloudInput(t *testing.T) {
	if got := WordCloudInput([]string{"revenue", "growth", "revenue"}); got != "revenue growth revenue" {
		t.Errorf("unexpected word cloud input: %q", got)
	}
	if got := WordCloudInput(nil); got != "" {
		t.Errorf("expected empty string for no tokens, got %q", got)
	}
}
