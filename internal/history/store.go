// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists split run records in a local SQLite database so
// past runs can be reviewed without re-reading manifests scattered across
// output directories.
// Implements: prd002-history; docs/ARCHITECTURE § Run History.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/talentops/candidate-split/pkg/types"
)

const dbFile = "history.db"

// Store manages the run history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at cfg.Dir/history.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "history"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			started TEXT NOT NULL,
			pages INTEGER NOT NULL,
			written INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sections (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			name TEXT NOT NULL,
			title TEXT,
			page_from INTEGER NOT NULL,
			page_thru INTEGER NOT NULL,
			path TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sections_run_id ON sections(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts a run and its sections in one transaction and returns the
// assigned run ID.
func (s *Store) Record(run types.RunRecord) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (source, started, pages, written, failed) VALUES (?, ?, ?, ?, ?)`,
		run.Source, run.Started.UTC().Format(time.RFC3339), run.Pages, run.Written, run.Failed,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO sections (run_id, name, title, page_from, page_thru, path) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing section insert: %w", err)
	}
	defer stmt.Close()

	for _, sec := range run.Sections {
		if _, err := stmt.Exec(id, sec.Name, sec.Title, sec.PageFrom, sec.PageThru, sec.Path); err != nil {
			return 0, fmt.Errorf("inserting section %s: %w", sec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}

// Recent returns up to limit runs, newest first, each with its sections.
// A limit <= 0 defaults to 10.
func (s *Store) Recent(limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, source, started, pages, written, failed FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.RunRecord
	for rows.Next() {
		var run types.RunRecord
		var started string
		if err := rows.Scan(&run.ID, &run.Source, &started, &run.Pages, &run.Written, &run.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, started); parseErr == nil {
			run.Started = t
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	for i := range runs {
		sections, err := s.runSections(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Sections = sections
	}
	return runs, nil
}

func (s *Store) runSections(runID int64) ([]types.Section, error) {
	rows, err := s.db.Query(
		`SELECT name, title, page_from, page_thru, path FROM sections WHERE run_id = ? ORDER BY page_from`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying sections for run %d: %w", runID, err)
	}
	defer rows.Close()

	var sections []types.Section
	for rows.Next() {
		var sec types.Section
		if err := rows.Scan(&sec.Name, &sec.Title, &sec.PageFrom, &sec.PageThru, &sec.Path); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		sections = append(sections, sec)
	}
	return sections, rows.Err()
}
