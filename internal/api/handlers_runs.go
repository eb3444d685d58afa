package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/parascope/parascope/internal/profile"
	"github.com/parascope/parascope/internal/report"
	"github.com/parascope/parascope/internal/runstore"
)

func (s *Server) getRun(w http.ResponseWriter, r *http.Request) *runstore.Run {
	run := s.runs.Get(chi.URLParam(r, "runID"))
	if run == nil {
		jsonError(w, "run not found or expired", http.StatusNotFound)
		return nil
	}
	return run
}

// handleGetRun returns a run summary.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run := s.getRun(w, r)
	if run == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"run_id":          run.ID,
		"filename":        run.Filename,
		"title":           run.Title,
		"keywords":        run.Keywords,
		"policy":          run.Policy,
		"mode":            run.Mode,
		"paragraph_count": run.Result.ParagraphCount,
		"matched_count":   len(run.Result.Matched),
		"keyword_counts":  run.Result.KeywordCounts,
		"token_total":     run.Result.TokenTotal,
		"created_at":      run.CreatedAt,
		"duration_ms":     run.DurationMs,
	})
}

// handleRunParagraphsCSV streams the matched paragraphs as CSV.
func (s *Server) handleRunParagraphsCSV(w http.ResponseWriter, r *http.Request) {
	run := s.getRun(w, r)
	if run == nil {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="matched_paragraphs.csv"`)
	if err := report.WriteParagraphsCSV(w, run.Result.Matched); err != nil {
		s.log.Error("write paragraphs csv", "run_id", run.ID, "error", err)
	}
}

// handleRunTokensCSV streams the token frequency table as CSV.
func (s *Server) handleRunTokensCSV(w http.ResponseWriter, r *http.Request) {
	run := s.getRun(w, r)
	if run == nil {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "token_frequencies.csv"))
	if err := report.WriteTokensCSV(w, run.Result.Tokens); err != nil {
		s.log.Error("write tokens csv", "run_id", run.ID, "error", err)
	}
}

// handleListProfiles lists the loaded analysis profiles.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	out := make([]*profile.Profile, 0, len(s.profiles))
	for _, name := range profile.Names(s.profiles) {
		out = append(out, s.profiles[name])
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"profiles": out})
}

// handleRunStats reports rolling pipeline duration stats.
func (s *Server) handleRunStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"retained_runs": s.runs.Len(),
		"stats":         s.runs.Stats().Snapshot(),
	})
}
