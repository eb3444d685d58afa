package analysis

import (
	"errors"
	"reflect"
	"testing"
)

var scenarioPages = []string{
	"Revenue grew 10%.\n\nCosts declined.",
	"Semiconductor orders rose.",
}

func TestRun_AnyPolicyScenario(t *testing.T) {
	res, err := Run(Request{
		Pages:              scenarioPages,
		Keywords:           []string{"revenue", "semiconductor"},
		Policy:             PolicyAny,
		MinParagraphLength: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.ParagraphCount != 3 {
		t.Errorf("expected 3 paragraphs total, got %d", res.ParagraphCount)
	}
	wantMatched := []string{"Revenue grew 10%.", "Semiconductor orders rose."}
	if !reflect.DeepEqual(res.Matched, wantMatched) {
		t.Errorf("expected matches %q, got %q", wantMatched, res.Matched)
	}
	if res.KeywordCounts["revenue"] != 1 || res.KeywordCounts["semiconductor"] != 1 {
		t.Errorf("unexpected keyword counts: %v", res.KeywordCounts)
	}
	if res.TokenTotal == 0 || len(res.Tokens) == 0 {
		t.Error("expected surviving tokens for matched paragraphs")
	}
}

func TestRun_AllPolicyEmptyResultIsNotAnError(t *testing.T) {
	res, err := Run(Request{
		Pages:              scenarioPages,
		Keywords:           []string{"revenue", "semiconductor"},
		Policy:             PolicyAll,
		MinParagraphLength: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Matched) != 0 {
		t.Errorf("expected no matches under ALL, got %q", res.Matched)
	}
	if len(res.Tokens) != 0 || res.TokenTotal != 0 || res.WordCloud != "" {
		t.Errorf("expected empty downstream outputs, got %+v", res)
	}
}

func TestRun_EmptyKeywordsFailsBeforeSegmentation(t *testing.T) {
	_, err := Run(Request{Pages: scenarioPages})
	if !errors.Is(err, ErrNoKeywords) {
		t.Fatalf("expected ErrNoKeywords, got %v", err)
	}
}

func TestRun_Idempotent(t *testing.T) {
	req := Request{
		Pages:              scenarioPages,
		Keywords:           []string{"revenue", "semiconductor", "costs"},
		Policy:             PolicyAny,
		MinParagraphLength: 5,
		Boilerplate:        []string{"orders"},
	}
	first, err := Run(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Run(req)
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\nfirst: %+v\nagain: %+v", i, first, again)
		}
	}
}

func TestRun_BoilerplateTermsAreDropped(t *testing.T) {
	res, err := Run(Request{
		Pages:    []string{"Annual report revenue revenue growth."},
		Keywords: []string{"revenue"},
		Policy:   PolicyAny,
		// "annual" and "report" are document scaffolding, not content.
		Boilerplate: []string{"annual", "report"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tc := range res.Tokens {
		if tc.Token == "annual" || tc.Token == "report" {
			t.Errorf("boilerplate term %q survived filtering", tc.Token)
		}
	}
	if len(res.Tokens) == 0 || res.Tokens[0].Token != "revenue" || res.Tokens[0].Count != 2 {
		t.Errorf("expected revenue x2 on top, got %v", res.Tokens)
	}
}

func TestResult_DisplayParagraphs(t *testing.T) {
	res := &Result{Matched: []string{"Revenue  grew\n10%."}}
	got := res.DisplayParagraphs()
	if len(got) != 1 || got[0] != "Revenue grew 10%." {
		t.Errorf("unexpected display paragraphs: %q", got)
	}
}
