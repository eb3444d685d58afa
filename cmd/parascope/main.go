// Command parascope runs the keyword paragraph analysis once against a
// local file and prints the results.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/parascope/parascope/internal/analysis"
	"github.com/parascope/parascope/internal/parser"
	"github.com/parascope/parascope/internal/profile"
	"github.com/parascope/parascope/internal/report"
)

func main() {
	var (
		filePath    = flag.String("file", "", "Document to analyze: pdf, txt, md, html, docx or csv (required)")
		keywords    = flag.String("keywords", "", "Comma-separated keywords (required unless -profile is given)")
		profilePath = flag.String("profile", "", "YAML analysis profile supplying keyword and stopword defaults")
		policy      = flag.String("policy", "", "Match policy: any or all (default any)")
		mode        = flag.String("mode", "", "Match mode: substring or word (default substring)")
		minLength   = flag.Int("min-length", 50, "Minimum paragraph length in characters")
		minToken    = flag.Int("min-token-length", 2, "Keep tokens strictly longer than this")
		boilerplate = flag.String("boilerplate", "", "Comma-separated extra stopword terms")
		top         = flag.Int("top", 50, "Number of top tokens to print")
		showParas   = flag.Bool("show-paragraphs", false, "Print matched paragraphs")
		cloud       = flag.Bool("cloud", false, "Print the word-cloud input string")
		csvOut      = flag.String("csv", "", "Write matched paragraphs CSV to this path")
		tokensOut   = flag.String("tokens-csv", "", "Write token frequency CSV to this path")
		noFallback  = flag.Bool("no-pdftotext", false, "Disable the pdftotext fallback for PDFs")
	)
	flag.Parse()

	if *filePath == "" {
		log.Fatal("-file required")
	}

	req := analysis.Request{
		MinParagraphLength: *minLength,
		MinTokenLength:     *minToken,
	}

	policyStr, modeStr := *policy, *mode

	if *profilePath != "" {
		prof, err := profile.Load(*profilePath)
		if err != nil {
			log.Fatal(err)
		}
		req.Keywords = prof.Keywords
		req.Boilerplate = prof.Boilerplate
		if prof.MinParagraphLength > 0 {
			req.MinParagraphLength = prof.MinParagraphLength
		}
		if prof.MinTokenLength > 0 {
			req.MinTokenLength = prof.MinTokenLength
		}
		if policyStr == "" {
			policyStr = prof.Policy
		}
		if modeStr == "" {
			modeStr = prof.Mode
		}
	}
	if *keywords != "" {
		req.Keywords = analysis.ParseKeywords(*keywords)
	}
	if len(req.Keywords) == 0 {
		log.Fatal("-keywords or a -profile with keywords required")
	}
	if *boilerplate != "" {
		req.Boilerplate = analysis.ParseKeywords(*boilerplate)
	}

	var err error
	if req.Policy, err = analysis.ParsePolicy(policyStr); err != nil {
		log.Fatal(err)
	}
	if req.Mode, err = analysis.ParseMode(modeStr); err != nil {
		log.Fatal(err)
	}

	doc, err := parseFile(*filePath, !*noFallback)
	if err != nil {
		log.Fatal(err)
	}
	req.Pages = doc.Pages

	result, err := analysis.Run(req)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Document:   %s (%d pages)\n", doc.Title, len(doc.Pages))
	fmt.Printf("Paragraphs: %d extracted, %d matched\n", result.ParagraphCount, len(result.Matched))
	fmt.Println()

	fmt.Println("Keyword match counts:")
	for _, k := range req.Keywords {
		fmt.Printf("  %-20s %d\n", k, result.KeywordCounts[k])
	}
	fmt.Println()

	if *showParas {
		for i, p := range result.DisplayParagraphs() {
			fmt.Printf("Paragraph %d: %s\n", i+1, p)
		}
		fmt.Println()
	}

	if len(result.Matched) == 0 {
		fmt.Println("No paragraphs matched. Try broader keywords or a lower -min-length.")
		return
	}

	table := analysis.TopN(result.Tokens, *top)
	fmt.Printf("Top %d tokens (%d total occurrences):\n", len(table), result.TokenTotal)
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "token\tcount")
	for _, tc := range table {
		fmt.Fprintf(tw, "%s\t%d\n", tc.Token, tc.Count)
	}
	tw.Flush()

	if *cloud {
		fmt.Println()
		fmt.Println("Word cloud input:")
		fmt.Println(result.WordCloud)
	}

	if *csvOut != "" {
		if err := writeCSV(*csvOut, func(f *os.File) error {
			return report.WriteParagraphsCSV(f, result.Matched)
		}); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\nWrote matched paragraphs to %s\n", *csvOut)
	}
	if *tokensOut != "" {
		if err := writeCSV(*tokensOut, func(f *os.File) error {
			return report.WriteTokensCSV(f, result.Tokens)
		}); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote token frequencies to %s\n", *tokensOut)
	}
}

func parseFile(path string, pdfFallback bool) (*parser.Document, error) {
	p, err := parser.ForFile(path)
	if err != nil {
		return nil, err
	}
	if pdfParser, ok := p.(*parser.PDFParser); ok {
		pdfParser.FallbackPdftotext = pdfFallback
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return p.Parse(f, filepath.Base(path))
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
