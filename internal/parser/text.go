package parser

import (
	"io"
	"strings"
)

// TextParser handles plain text files. The whole file becomes a single page;
// paragraph segmentation happens downstream on blank lines.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// Normalize line endings so blank-line detection works on CRLF files.
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	doc := &Document{Title: strings.TrimSuffix(filename, ".txt")}
	if strings.TrimSpace(text) != "" {
		doc.Pages = []string{text}
	}
	return doc, nil
}
