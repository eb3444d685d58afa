package analysis

import (
	"regexp"
	"strings"
)

var paragraphBreak = regexp.MustCompile(`\n{2,}`)

// Segment turns per-page extracted texts into an ordered sequence of
// trimmed, non-empty paragraphs. Pages are joined with a single newline, so
// a paragraph can only span a page break when the source itself inserted
// blank-line spacing. Paragraphs are delimited by runs of two or more
// newlines.
//
// A page whose extraction failed arrives as an empty string; it contributes
// no text and does not disturb segmentation of its neighbors. An all-empty
// input yields an empty (valid) result.
func Segment(pages []string) []string {
	full := strings.Join(pages, "\n")

	var paragraphs []string
	for _, frag := range paragraphBreak.Split(full, -1) {
		frag = strings.TrimSpace(frag)
		if frag != "" {
			paragraphs = append(paragraphs, frag)
		}
	}
	return paragraphs
}
