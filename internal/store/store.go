// Package store persists generated runs to SQLite so corpora can be
// accumulated and inspected across invocations.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"minpairs/internal/generator"
)

// CorpusStore writes generation runs to a SQLite database.
type CorpusStore struct {
	db   *sql.DB
	path string
}

// Open initializes the SQLite database at the given path, creating the
// schema if needed.
func Open(path string) (*CorpusStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &CorpusStore{db: db, path: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// initialize creates the required tables.
func (s *CorpusStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		requested INTEGER NOT NULL,
		produced INTEGER NOT NULL,
		shortfall INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS pairs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		ordinal INTEGER NOT NULL,
		good_sentence TEXT NOT NULL,
		bad_sentence TEXT NOT NULL,
		good_sequence TEXT NOT NULL,
		bad_sequence TEXT NOT NULL,
		degenerate INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);
	CREATE INDEX IF NOT EXISTS idx_pairs_run ON pairs(run_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveRun persists one run and its pairs in a single transaction.
func (s *CorpusStore) SaveRun(runID string, requested int, pairs []generator.Pair, shortfall int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, requested, produced, shortfall, created_at) VALUES (?, ?, ?, ?, ?)`,
		runID, requested, len(pairs), shortfall, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO pairs (run_id, ordinal, good_sentence, bad_sentence, good_sequence, bad_sequence, degenerate)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range pairs {
		degenerate := 0
		if p.Degenerate {
			degenerate = 1
		}
		_, err = stmt.Exec(runID, i+1, p.Good, p.Bad,
			strings.Join(p.GoodSeq, " "), strings.Join(p.BadSeq, " "), degenerate)
		if err != nil {
			return fmt.Errorf("failed to insert pair %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

// RunSummary describes one persisted run.
type RunSummary struct {
	ID        string
	Requested int
	Produced  int
	Shortfall int
	CreatedAt time.Time
}

// Runs lists persisted runs, newest first.
func (s *CorpusStore) Runs() ([]RunSummary, error) {
	rows, err := s.db.Query(
		`SELECT id, requested, produced, shortfall, created_at FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Requested, &r.Produced, &r.Shortfall, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountPairs returns the number of pairs persisted for a run.
func (s *CorpusStore) CountPairs(runID string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM pairs WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count pairs: %w", err)
	}
	return n, nil
}

// Pairs returns a run's pairs in insertion order.
func (s *CorpusStore) Pairs(runID string) ([]generator.Pair, error) {
	rows, err := s.db.Query(
		`SELECT good_sentence, bad_sentence, good_sequence, bad_sequence, degenerate
		 FROM pairs WHERE run_id = ? ORDER BY ordinal`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pairs: %w", err)
	}
	defer rows.Close()

	var out []generator.Pair
	for rows.Next() {
		var p generator.Pair
		var goodSeq, badSeq string
		var degenerate int
		if err := rows.Scan(&p.Good, &p.Bad, &goodSeq, &badSeq, &degenerate); err != nil {
			return nil, fmt.Errorf("failed to scan pair: %w", err)
		}
		p.GoodSeq = strings.Fields(goodSeq)
		p.BadSeq = strings.Fields(badSeq)
		p.Degenerate = degenerate != 0
		out = append(out, p)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *CorpusStore) Close() error {
	return s.db.Close()
}
