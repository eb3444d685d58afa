package analysis

import (
	"strings"
	"testing"
)

func TestSegment_SplitsOnBlankLines(t *testing.T) {
	pages := []string{"Revenue grew 10%.\n\nCosts declined.", "Semiconductor orders rose."}
	got := Segment(pages)

	want := []string{"Revenue grew 10%.", "Costs declined.", "Semiconductor orders rose."}
	if len(got) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paragraph[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSegment_NeverReturnsBlankParagraphs(t *testing.T) {
	inputs := [][]string{
		{""},
		{"", "", ""},
		{"\n\n\n"},
		{"  \n\n  \t \n\n  "},
		{"one\n\n\n\ntwo", "", "\n\nthree\n\n"},
		{"a\n\n \n\nb"},
	}
	for _, pages := range inputs {
		for i, p := range Segment(pages) {
			if strings.TrimSpace(p) == "" {
				t.Errorf("pages %q: paragraph[%d] is blank", pages, i)
			}
			if p != strings.TrimSpace(p) {
				t.Errorf("pages %q: paragraph[%d] %q not trimmed", pages, i, p)
			}
		}
	}
}

func TestSegment_EmptyInputYieldsEmptyResult(t *testing.T) {
	if got := Segment(nil); len(got) != 0 {
		t.Errorf("expected no paragraphs for nil input, got %q", got)
	}
	if got := Segment([]string{"", ""}); len(got) != 0 {
		t.Errorf("expected no paragraphs for empty pages, got %q", got)
	}
}

func TestSegment_FailedPageDoesNotBreakNeighbors(t *testing.T) {
	// Page two failed extraction and came back empty.
	pages := []string{"First page text.", "", "Third page text."}
	got := Segment(pages)
	if len(got) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %q", len(got), got)
	}
	if got[0] != "First page text." || got[1] != "Third page text." {
		t.Errorf("unexpected paragraphs: %q", got)
	}
}

func TestSegment_SingleNewlineDoesNotSplit(t *testing.T) {
	got := Segment([]string{"line one\nline two"})
	if len(got) != 1 {
		t.Fatalf("expected 1 paragraph, got %d: %q", len(got), got)
	}
	if got[0] != "line one\nline two" {
		t.Errorf("expected internal newline preserved, got %q", got[0])
	}
}

func TestSegment_PageJoinCreatesBreakWithTrailingNewline(t *testing.T) {
	// A page ending in a newline plus the join newline forms a blank-line
	// break at the page boundary.
	got := Segment([]string{"ends with newline\n", "next page"})
	if len(got) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %q", len(got), got)
	}
}
