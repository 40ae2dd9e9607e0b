package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteSlotStore keeps every slot as a row in a single slots table.
type SQLiteSlotStore struct {
	db *sql.DB
}

func NewSQLiteSlotStore(dbPath string) (*SQLiteSlotStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteSlotStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSlotStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS slots (
  key TEXT PRIMARY KEY,
  payload TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create slots table: %w", err)
	}
	return nil
}

func (s *SQLiteSlotStore) Load(ctx context.Context, slot string, v any) error {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM slots WHERE key = ?`, slot).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("read slot %s: %w", slot, err)
	}
	_ = json.Unmarshal([]byte(payload), v)
	return nil
}

func (s *SQLiteSlotStore) Save(ctx context.Context, slot string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal slot %s: %w", slot, err)
	}
	const stmt = `
INSERT INTO slots (key, payload) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET payload=excluded.payload;
`
	if _, err := s.db.ExecContext(ctx, stmt, slot, string(payload)); err != nil {
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	return nil
}

func (s *SQLiteSlotStore) Delete(ctx context.Context, slot string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, slot); err != nil {
		return fmt.Errorf("delete slot %s: %w", slot, err)
	}
	return nil
}

func (s *SQLiteSlotStore) Close() error {
	return s.db.Close()
}
