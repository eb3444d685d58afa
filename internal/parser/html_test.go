package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_HeadingsAndContent(t *testing.T) {
	input := `<html><head><title>Quarterly Report</title></head><body>
<h1>Overview</h1>
<p>Revenue grew.</p>
<p>Costs declined.</p>
<h1>Outlook</h1>
<p>Semiconductor orders rose.</p>
<script>ignore_me();</script>
</body></html>`

	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "report.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "Quarterly Report" {
		t.Errorf("expected title from <title>, got %q", doc.Title)
	}
	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d: %q", len(doc.Pages), doc.Pages)
	}
	if !strings.HasPrefix(doc.Pages[0], "Overview") {
		t.Errorf("page 0 should open with the heading, got %q", doc.Pages[0])
	}
	if !strings.Contains(doc.Pages[0], "Revenue grew.") ||
		!strings.Contains(doc.Pages[0], "Costs declined.") {
		t.Errorf("page 0 missing paragraph content: %q", doc.Pages[0])
	}
	if strings.Contains(doc.Pages[0]+doc.Pages[1], "ignore_me") {
		t.Error("script content leaked into pages")
	}
}

func TestHTMLParser_NoHeadings(t *testing.T) {
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader("<p>Only one paragraph.</p>"), "frag.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
	if doc.Pages[0] != "Only one paragraph." {
		t.Errorf("unexpected page content: %q", doc.Pages[0])
	}
}
