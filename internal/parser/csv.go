package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVParser handles CSV files. Rows render as "header: cell" lines, one row
// per paragraph, batched into pages so very large files stay manageable.
type CSVParser struct{}

const csvRowsPerPage = 20

func (p *CSVParser) Parse(r io.Reader, filename string) (*Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	doc := &Document{Title: strings.TrimSuffix(filename, ".csv")}
	if len(records) == 0 {
		return doc, nil
	}

	// First row is headers.
	headers := records[0]
	dataRows := records[1:]

	for i := 0; i < len(dataRows); i += csvRowsPerPage {
		end := i + csvRowsPerPage
		if end > len(dataRows) {
			end = len(dataRows)
		}

		var page strings.Builder
		for j, row := range dataRows[i:end] {
			if j > 0 {
				page.WriteString("\n\n")
			}
			for k, cell := range row {
				if k > 0 {
					page.WriteString(", ")
				}
				if k < len(headers) {
					page.WriteString(headers[k] + ": " + cell)
				} else {
					page.WriteString(cell)
				}
			}
		}
		doc.Pages = append(doc.Pages, page.String())
	}

	return doc, nil
}
