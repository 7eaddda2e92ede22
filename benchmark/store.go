// SPDX-License-Identifier: MIT
package benchmark

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

type (
	// Store keeps the history of benchmark runs in SQLite.
	//
	// Every record written through one Store shares its run ID.
	Store struct {
		db    *sql.DB
		runID uuid.UUID
		now   func() time.Time
	}

	// Entry is a historical record.
	Entry struct {
		Record
		RunID      uuid.UUID
		RecordedAt time.Time
	}
)

// OpenStore creates or opens a SQLite database at path.
func OpenStore(path string) (s *Store, err error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		err = fmt.Errorf("failed to open database: %w", err)
		return
	}

	if err = db.Ping(); err != nil {
		db.Close()
		err = fmt.Errorf("failed to connect to database: %w", err)
		return
	}

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err = db.Exec(schemaSQL); err != nil {
		db.Close()
		err = fmt.Errorf("failed to apply schema: %w", err)
		return
	}

	s = &Store{db: db, runID: uuid.New(), now: time.Now}

	return
}

// RunID retrieves the ID shared by this Store's records.
func (s *Store) RunID() uuid.UUID { return s.runID }

// Write inserts a record.
func (s *Store) Write(ctx context.Context, rec Record) (err error) {
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, label, description, micros, iterations, checksum, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.runID.String(), rec.Label, rec.Description, rec.Micros, int64(rec.Iterations), rec.Checksum,
		s.now().UnixNano(),
	)
	if err != nil {
		err = fmt.Errorf("failed to insert record: %w", err)
	}

	return
}

// History lists the records of a case, oldest first.
func (s *Store) History(ctx context.Context, label, description string) (entries []Entry, err error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, micros, iterations, checksum, recorded_at FROM runs
		WHERE label = ? AND description = ? ORDER BY id`,
		label, description,
	)
	if err != nil {
		err = fmt.Errorf("failed to query history: %w", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var (
			runID      string
			iterations int64
			recordedAt int64
		)

		entry := Entry{Record: Record{Label: label, Description: description}}
		if err = rows.Scan(&runID, &entry.Micros, &iterations, &entry.Checksum, &recordedAt); err != nil {
			return
		}

		if entry.RunID, err = uuid.Parse(runID); err != nil {
			return
		}
		entry.Iterations = uint64(iterations)
		entry.RecordedAt = time.Unix(0, recordedAt)

		entries = append(entries, entry)
	}

	err = rows.Err()

	return
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
