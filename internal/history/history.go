// Package history persists solver run outcomes to disk as a JSON-file
// Store, keyed by board source and strategy preset, appending every
// run instead of keeping only a personal best.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Outcome records one completed (or abandoned) solver run.
type Outcome struct {
	Result     string `json:"result"` // "solved", "mine_hit", "stuck"
	Iterations int    `json:"iterations"`
	Revealed   int    `json:"revealed"`
	Flagged    int    `json:"flagged"`
	Unknown    int    `json:"unknown"`
	DurationMS int64  `json:"duration_ms"`
	Date       string `json:"date"`
}

// Log is the full persisted history: every recorded run, grouped by a
// caller-chosen key (typically "<board source>|<preset name>").
type Log struct {
	Runs map[string][]Outcome `json:"runs,omitempty"`
}

// Store manages run-history persistence.
type Store struct {
	path string
	Log  Log
}

// Load reads the history file from its default location.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads history from a specific path. If path is empty, uses
// the default location (~/.msolve/history.json). A missing file
// yields an empty, ready-to-use store.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{Log: Log{Runs: map[string][]Outcome{}}}, err
		}
		path = filepath.Join(home, ".msolve", "history.json")
	}

	s := &Store{path: path, Log: Log{Runs: map[string][]Outcome{}}}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Log); err != nil {
		return s, err
	}
	if s.Log.Runs == nil {
		s.Log.Runs = map[string][]Outcome{}
	}
	return s, nil
}

// Save writes the history to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Log, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Record appends a run outcome under key, stamping its Date with
// today's date if unset.
func (s *Store) Record(key string, outcome Outcome) {
	if outcome.Date == "" {
		outcome.Date = time.Now().Format("2006-01-02")
	}
	if s.Log.Runs == nil {
		s.Log.Runs = map[string][]Outcome{}
	}
	s.Log.Runs[key] = append(s.Log.Runs[key], outcome)
}

// Runs returns every recorded outcome for key, oldest first.
func (s *Store) Runs(key string) []Outcome {
	return s.Log.Runs[key]
}

// SolveRate reports the fraction of recorded runs under key that
// finished with Result == "solved", and whether any runs exist at all.
func (s *Store) SolveRate(key string) (float64, bool) {
	runs := s.Log.Runs[key]
	if len(runs) == 0 {
		return 0, false
	}
	solved := 0
	for _, r := range runs {
		if r.Result == "solved" {
			solved++
		}
	}
	return float64(solved) / float64(len(runs)), true
}
