// internal/save/sqlite.go
package save

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

// saveKey is the single row the record lives in.
const saveKey = "save"

// SQLiteStore keeps the save record as a JSON blob in a SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the save database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open save db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS saves (
		key TEXT PRIMARY KEY,
		blob TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load returns the stored record. A missing or unreadable blob yields the
// default record; only database failures are returned as errors.
func (s *SQLiteStore) Load(ctx context.Context) (Record, error) {
	var blob string
	err := s.db.QueryRowContext(ctx, `SELECT blob FROM saves WHERE key = ?`, saveKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultRecord(), nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("load save: %w", err)
	}

	r, err := Decode([]byte(blob))
	if err != nil {
		slog.WarnContext(ctx, "save record unreadable, using default", "error", err)
		return DefaultRecord(), nil
	}
	return r, nil
}

func (s *SQLiteStore) Save(ctx context.Context, r Record) error {
	blob, err := Encode(r)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO saves (key, blob) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET blob = excluded.blob, updated_at = CURRENT_TIMESTAMP`,
		saveKey, string(blob))
	if err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// writeRaw stores an arbitrary blob; tests use it to plant corrupt data.
func (s *SQLiteStore) writeRaw(ctx context.Context, blob string) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO saves (key, blob) VALUES (?, ?)`, saveKey, blob)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
