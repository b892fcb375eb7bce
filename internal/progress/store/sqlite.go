package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/celestial/celestial-chronicles/internal/model"
)

// SQLiteStore keeps progress records in a local sqlite database. The record
// payload stays a single JSON document so the persisted shape matches the
// JSON-file driver byte for byte.
type SQLiteStore struct {
	db *sqlx.DB
}

// OpenSQLite opens (or creates) the database file and ensures the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	s := &SQLiteStore{db: db}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS ProgressRecords (
        RecordKey  TEXT PRIMARY KEY,
        Payload    TEXT NOT NULL,
        UpdateTime TIMESTAMP NOT NULL
    );`)
	if err != nil {
		return fmt.Errorf("ensure progress schema: %w", err)
	}
	return nil
}

// Load reads and decodes the record under key.
func (s *SQLiteStore) Load(ctx context.Context, key string) (*model.UserProgress, error) {
	var payload string
	err := s.db.GetContext(ctx, &payload, `SELECT Payload FROM ProgressRecords WHERE RecordKey = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	var p model.UserProgress
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("decode progress payload: %w", err)
	}
	return &p, nil
}

// Save upserts the serialized record under key.
func (s *SQLiteStore) Save(ctx context.Context, key string, p *model.UserProgress) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress payload: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO ProgressRecords (RecordKey, Payload, UpdateTime) VALUES (?,?,?)
        ON CONFLICT(RecordKey) DO UPDATE SET Payload = excluded.Payload, UpdateTime = excluded.UpdateTime`,
		key, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
