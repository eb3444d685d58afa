// Package runstore keeps recently completed analysis runs in memory so
// their CSV artifacts can be fetched after the fact, and tracks rolling
// pipeline latency stats. Nothing here persists across process restarts.
package runstore

import (
	"context"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/parascope/parascope/internal/analysis"
)

// Run records one completed analysis invocation. Runs are immutable once
// stored; the pipeline finishes before Put is called.
type Run struct {
	ID       string `json:"run_id"`
	Filename string `json:"filename"`
	Title    string `json:"title"`

	Keywords []string        `json:"keywords"`
	Policy   analysis.Policy `json:"policy"`
	Mode     analysis.Mode   `json:"mode"`

	Result *analysis.Result `json:"-"`

	CreatedAt  time.Time `json:"created_at"`
	DurationMs int64     `json:"duration_ms"`
}

// Store is a thread-safe in-memory run registry with TTL eviction.
type Store struct {
	mu   sync.Mutex
	runs map[string]*Run
	ttl  time.Duration

	stats *DurationStats
}

// New creates a store evicting runs older than ttl. The stats window
// matches the TTL.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{
		runs:  make(map[string]*Run),
		ttl:   ttl,
		stats: NewDurationStats(ttl),
	}
}

// NewID returns a fresh, lexicographically sortable run ID.
func (s *Store) NewID() string {
	return ulid.Make().String()
}

// Put registers a completed run and records its duration sample.
func (s *Store) Put(run *Run) {
	s.mu.Lock()
	s.runs[run.ID] = run
	s.mu.Unlock()

	s.stats.Record(time.Duration(run.DurationMs) * time.Millisecond)
}

// Get returns the run with the given ID, or nil.
func (s *Store) Get(id string) *Run {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs[id]
}

// Len reports how many runs are currently retained.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.runs)
}

// Stats exposes the rolling duration statistics.
func (s *Store) Stats() *DurationStats {
	return s.stats
}

// Cleanup removes expired runs.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, run := range s.runs {
		if now.Sub(run.CreatedAt) > s.ttl {
			delete(s.runs, id)
		}
	}
}

// StartCleanup evicts expired runs on the given interval until ctx is done.
func (s *Store) StartCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Cleanup()
			}
		}
	}()
}
