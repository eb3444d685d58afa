package analysis

import "testing"

func TestEnglishStopwords_LoadedOnceAndPopulated(t *testing.T) {
	first := EnglishStopwords()
	if len(first) == 0 {
		t.Fatal("expected a non-empty English stopword list")
	}
	for _, w := range []string{"the", "and", "of", "is", "not"} {
		if _, ok := first[w]; !ok {
			t.Errorf("expected %q in the English list", w)
		}
	}

	// Repeated calls return the same loaded set.
	second := EnglishStopwords()
	if len(second) != len(first) {
		t.Errorf("second load differs: %d vs %d entries", len(second), len(first))
	}
}

func TestCombinedStopwords_UnionWithoutMutatingBase(t *testing.T) {
	baseLen := len(EnglishStopwords())

	combined := CombinedStopwords([]string{"Mahindra", " ANNUAL ", "", "report"})
	for _, w := range []string{"mahindra", "annual", "report", "the"} {
		if _, ok := combined[w]; !ok {
			t.Errorf("expected %q in the combined set", w)
		}
	}

	if len(EnglishStopwords()) != baseLen {
		t.Error("combining mutated the base English list")
	}
	if _, ok := EnglishStopwords()["mahindra"]; ok {
		t.Error("custom term leaked into the base English list")
	}
}
