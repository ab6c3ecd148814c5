package eventlog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mosa3ed/launchicon/internal/paths"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) a SQLite database at path and
// creates the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := paths.EnsureParent(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite pragma: %w", err)
	}

	ddl := `
CREATE TABLE IF NOT EXISTS generations (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp TEXT    NOT NULL,
    source    TEXT    NOT NULL,
    output    TEXT    NOT NULL,
    size      INTEGER NOT NULL,
    width     INTEGER NOT NULL DEFAULT 0,
    height    INTEGER NOT NULL DEFAULT 0,
    offset_x  INTEGER NOT NULL DEFAULT 0,
    offset_y  INTEGER NOT NULL DEFAULT 0,
    status    INTEGER NOT NULL,
    error     TEXT    NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_generations_output ON generations(output);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Path() string {
	return s.path
}

// Log inserts r. A zero Time is replaced with the current time.
func (s *SQLiteStore) Log(r Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO generations (timestamp, source, output, size, width, height, offset_x, offset_y, status, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ts.Format(time.RFC3339), r.Source, r.Output, r.Size,
		r.Width, r.Height, r.X, r.Y, int(r.Status), r.Error,
	)
	return err
}

func (s *SQLiteStore) Recent(n int) ([]Record, error) {
	query := `SELECT timestamp, source, output, size, width, height, offset_x, offset_y, status, error
		FROM generations ORDER BY id DESC`
	var args []any
	if n > 0 {
		query += ` LIMIT ?`
		args = append(args, n)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var tsStr string
		var status int
		if err := rows.Scan(&tsStr, &r.Source, &r.Output, &r.Size,
			&r.Width, &r.Height, &r.X, &r.Y, &status, &r.Error); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, tsStr)
		if err != nil {
			continue
		}
		r.Time = ts
		r.Status = Status(status)
		records = append(records, r)
	}
	return records, rows.Err()
}
