// Package analysis implements the keyword paragraph-extraction pipeline:
// per-page texts are segmented into paragraphs, filtered against a keyword
// set under an explicit match policy, and the matches are tokenized into a
// stopword-filtered frequency table. Every stage is a pure function of its
// input; empty results at any stage are valid outcomes, not errors.
package analysis

// Request carries the inputs of one analysis run.
type Request struct {
	// Pages holds per-page extracted text in page order. A failed page
	// extraction appears as an empty string.
	Pages []string

	// Keywords are the match terms; at least one is required.
	Keywords []string

	Policy Policy
	Mode   Mode

	// MinParagraphLength excludes short paragraphs before matching.
	MinParagraphLength int
	// MinTokenLength is the strict lower bound on surviving token length;
	// <= 0 selects DefaultMinTokenLength.
	MinTokenLength int

	// Boilerplate terms are unioned with the English stopword list for the
	// frequency stage (organization names, report scaffolding, ...).
	Boilerplate []string
}

// Result is the outcome of one analysis run.
type Result struct {
	// ParagraphCount is the total number of paragraphs segmented from the
	// input, before filtering.
	ParagraphCount int `json:"paragraph_count"`

	// Matched holds the raw matched paragraphs in document order.
	Matched []string `json:"-"`

	// Tokens is the full frequency table, descending by count.
	Tokens []TokenCount `json:"tokens"`
	// TokenTotal counts surviving token occurrences (with repeats).
	TokenTotal int `json:"token_total"`

	// KeywordCounts maps each keyword to the number of matched paragraphs
	// containing it.
	KeywordCounts map[string]int `json:"keyword_counts"`

	// WordCloud is the space-joined filtered token stream.
	WordCloud string `json:"word_cloud"`
}

// Run executes the full pipeline: segment, filter, normalize, tokenize,
// count. It returns ErrNoKeywords before touching the pages when the
// keyword set is empty; every other edge case degrades to empty results.
func Run(req Request) (*Result, error) {
	if len(req.Keywords) == 0 {
		return nil, ErrNoKeywords
	}

	paragraphs := Segment(req.Pages)

	matched, err := FilterParagraphs(paragraphs, req.Keywords, FilterOptions{
		Policy:    req.Policy,
		Mode:      req.Mode,
		MinLength: req.MinParagraphLength,
	})
	if err != nil {
		return nil, err
	}

	tokenizer := NewTokenizer(CombinedStopwords(req.Boilerplate), req.MinTokenLength)
	var tokens []string
	for _, p := range matched {
		tokens = append(tokens, tokenizer.Tokenize(NormalizeTokens(p))...)
	}

	return &Result{
		ParagraphCount: len(paragraphs),
		Matched:        matched,
		Tokens:         CountFrequencies(tokens),
		TokenTotal:     len(tokens),
		KeywordCounts:  KeywordCounts(matched, req.Keywords, req.Mode),
		WordCloud:      WordCloudInput(tokens),
	}, nil
}

// DisplayParagraphs returns the matched paragraphs in display-normalized
// form (whitespace collapsed, case and punctuation preserved).
func (r *Result) DisplayParagraphs() []string {
	out := make([]string, len(r.Matched))
	for i, p := range r.Matched {
		out[i] = NormalizeDisplay(p)
	}
	return out
}
