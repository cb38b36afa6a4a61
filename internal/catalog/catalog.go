// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists conversion history in a SQLite database. It is
// a driver-level convenience: the conversion core stays stateless and the
// catalog never influences output bytes.
package catalog

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pt2gff/pkg/types"
)

// Store manages the conversion history database.
type Store struct {
	db *sql.DB
}

// Entry is one recorded file conversion.
type Entry struct {
	types.FileReport
	ConvertedAt time.Time
}

// Open opens or creates the catalog database at path and bootstraps the
// schema if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS conversions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		status TEXT NOT NULL,
		records INTEGER NOT NULL,
		regions INTEGER NOT NULL,
		skipped_tokens INTEGER NOT NULL,
		error TEXT,
		converted_at TEXT NOT NULL
	)`)
	return err
}

// Record appends one file report to the history.
func (s *Store) Record(r types.FileReport) error {
	_, err := s.db.Exec(
		`INSERT INTO conversions (input, output, status, records, regions, skipped_tokens, error, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Input, r.Output, string(r.Status), r.Records, r.Regions, r.SkippedTokens, r.Error,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording conversion: %w", err)
	}
	return nil
}

// RecordBatch appends every report of a batch run.
func (s *Store) RecordBatch(reports []types.FileReport) error {
	for _, r := range reports {
		if err := s.Record(r); err != nil {
			return err
		}
	}
	return nil
}

// Recent returns up to n history entries, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT input, output, status, records, regions, skipped_tokens, error, converted_at
		 FROM conversions ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e      Entry
			status string
			ts     string
		)
		if err := rows.Scan(&e.Input, &e.Output, &status, &e.Records, &e.Regions,
			&e.SkippedTokens, &e.Error, &ts); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		e.Status = types.ConversionStatus(status)
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			e.ConvertedAt = parsed
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
