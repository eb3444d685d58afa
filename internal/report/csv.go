// Package report serializes analysis results for external consumers: a
// one-column paragraph CSV and a token,count CSV, both UTF-8.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/parascope/parascope/internal/analysis"
)

// WriteParagraphsCSV writes the matched paragraphs as a CSV with a single
// "paragraph" column, one row per paragraph, in document order.
func WriteParagraphsCSV(w io.Writer, paragraphs []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"paragraph"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range paragraphs {
		if err := cw.Write([]string{p}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadParagraphsCSV parses a CSV produced by WriteParagraphsCSV back into
// the ordered paragraph list.
func ReadParagraphsCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 || records[0][0] != "paragraph" {
		return nil, fmt.Errorf("read csv: missing paragraph header")
	}

	paragraphs := make([]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		paragraphs = append(paragraphs, rec[0])
	}
	return paragraphs, nil
}

// WriteTokensCSV writes a frequency table as token,count rows in table
// order (descending count).
func WriteTokensCSV(w io.Writer, table []analysis.TokenCount) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"token", "count"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, tc := range table {
		if err := cw.Write([]string{tc.Token, strconv.Itoa(tc.Count)}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
