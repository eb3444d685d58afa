package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/parascope/parascope/internal/analysis"
	"github.com/parascope/parascope/internal/parser"
	"github.com/parascope/parascope/internal/runstore"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	req, err := s.analysisRequest(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	p, err := parser.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pdfParser, ok := p.(*parser.PDFParser); ok {
		pdfParser.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	doc, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		jsonError(w, "failed to parse document: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	req.Pages = doc.Pages

	start := time.Now()
	result, err := analysis.Run(*req)
	if err != nil {
		if errors.Is(err, analysis.ErrNoKeywords) {
			jsonError(w, "at least one keyword is required", http.StatusBadRequest)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	duration := time.Since(start)

	run := &runstore.Run{
		ID:         s.runs.NewID(),
		Filename:   filename,
		Title:      doc.Title,
		Keywords:   req.Keywords,
		Policy:     req.Policy,
		Mode:       req.Mode,
		Result:     result,
		CreatedAt:  time.Now(),
		DurationMs: duration.Milliseconds(),
	}
	s.runs.Put(run)

	s.log.Info("analysis run",
		"run_id", run.ID,
		"filename", filename,
		"pages", len(doc.Pages),
		"paragraphs", result.ParagraphCount,
		"matched", len(result.Matched),
		"duration_ms", run.DurationMs,
	)

	topTokens := formInt(r, "top", s.cfg.DefaultTopTokens)
	maxParagraphs := formInt(r, "max_paragraphs", s.cfg.DefaultMaxParagraphs)
	paragraphs := result.DisplayParagraphs()
	if maxParagraphs > 0 && len(paragraphs) > maxParagraphs {
		paragraphs = paragraphs[:maxParagraphs]
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"run_id":          run.ID,
		"filename":        filename,
		"title":           doc.Title,
		"keywords":        req.Keywords,
		"policy":          req.Policy,
		"mode":            req.Mode,
		"page_count":      len(doc.Pages),
		"paragraph_count": result.ParagraphCount,
		"matched_count":   len(result.Matched),
		"paragraphs":      paragraphs,
		"tokens":          analysis.TopN(result.Tokens, topTokens),
		"token_total":     result.TokenTotal,
		"keyword_counts":  result.KeywordCounts,
		"word_cloud":      result.WordCloud,
		"duration_ms":     run.DurationMs,
		"paragraphs_csv":  fmt.Sprintf("/api/runs/%s/paragraphs.csv", run.ID),
		"tokens_csv":      fmt.Sprintf("/api/runs/%s/tokens.csv", run.ID),
	})
}

// analysisRequest assembles pipeline inputs from form values, layered over
// an optional named profile.
func (s *Server) analysisRequest(r *http.Request) (*analysis.Request, error) {
	req := &analysis.Request{
		MinParagraphLength: s.cfg.DefaultMinParagraphLength,
		MinTokenLength:     s.cfg.DefaultMinTokenLength,
	}

	policyStr := r.FormValue("policy")
	modeStr := r.FormValue("mode")

	if name := r.FormValue("profile"); name != "" {
		prof, ok := s.profiles[name]
		if !ok {
			return nil, fmt.Errorf("unknown profile: %s", name)
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

	if kw := r.FormValue("keywords"); kw != "" {
		req.Keywords = analysis.ParseKeywords(kw)
	}
	if len(req.Keywords) == 0 {
		return nil, fmt.Errorf("at least one keyword is required")
	}

	var err error
	if req.Policy, err = analysis.ParsePolicy(policyStr); err != nil {
		return nil, err
	}
	if req.Mode, err = analysis.ParseMode(modeStr); err != nil {
		return nil, err
	}

	if bp := r.FormValue("boilerplate"); bp != "" {
		req.Boilerplate = analysis.ParseKeywords(bp)
	}
	if v := formInt(r, "min_length", -1); v >= 0 {
		req.MinParagraphLength = v
	}
	if v := formInt(r, "min_token_length", -1); v > 0 {
		req.MinTokenLength = v
	}

	return req, nil
}

func formInt(r *http.Request, key string, fallback int) int {
	if v := r.FormValue(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
