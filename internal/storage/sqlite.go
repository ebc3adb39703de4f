// Package storage provides SQLite-based persistence for bench run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout is the SQLite DATETIME text form.
const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one headless bench run.
type Run struct {
	ID             int64
	StartedAt      time.Time
	Seed           int64
	Frames         int
	Swaps          int
	Matches        int
	TotalNs        int64
	MaxFrameNs     int64
	PeakAnimations int
}

// AvgFrame returns the mean wall time per frame.
func (r Run) AvgFrame() time.Duration {
	if r.Frames == 0 {
		return 0
	}
	return time.Duration(r.TotalNs / int64(r.Frames))
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS bench_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at DATETIME NOT NULL,
			seed INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			swaps INTEGER NOT NULL DEFAULT 0,
			matches INTEGER NOT NULL DEFAULT 0,
			total_ns INTEGER NOT NULL,
			max_frame_ns INTEGER NOT NULL,
			peak_animations INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_bench_runs_started ON bench_runs(started_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a bench run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO bench_runs
		 (started_at, seed, frames, swaps, matches, total_ns, max_frame_ns, peak_animations)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.StartedAt.UTC().Format(timeLayout),
		r.Seed,
		r.Frames,
		r.Swaps,
		r.Matches,
		r.TotalNs,
		r.MaxFrameNs,
		r.PeakAnimations,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, started_at, seed, frames, swaps, matches, total_ns, max_frame_ns, peak_animations
		 FROM bench_runs
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt any
		if err := rows.Scan(
			&r.ID,
			&startedAt,
			&r.Seed,
			&r.Frames,
			&r.Swaps,
			&r.Matches,
			&r.TotalNs,
			&r.MaxFrameNs,
			&r.PeakAnimations,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.StartedAt = parseTime(startedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunStats contains aggregated statistics over all runs.
type RunStats struct {
	Runs        int
	TotalFrames int64
	AvgFrameNs  float64
	WorstFrame  int64
	LastRun     time.Time
}

// Stats retrieves aggregated statistics over the whole history.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}

	var lastRun any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(frames), 0),
		        COALESCE(CAST(SUM(total_ns) AS REAL) / NULLIF(SUM(frames), 0), 0),
		        COALESCE(MAX(max_frame_ns), 0), MAX(started_at)
		 FROM bench_runs`,
	).Scan(&stats.Runs, &stats.TotalFrames, &stats.AvgFrameNs, &stats.WorstFrame, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastRun = parseTime(lastRun)

	return stats, nil
}

// ClearRuns deletes the whole run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM bench_runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse(timeLayout, string(t)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
