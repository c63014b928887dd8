package kv

import (
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradecal/pkg/id"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(key, value string) error {
	now := time.Now().UTC()
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, rev, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			rev = excluded.rev,
			updated_at = excluded.updated_at`,
		key, value, id.New(now), now,
	)
	return err
}

// Rev returns the revision ID of the last write to key.
func (s *SQLiteStore) Rev(key string) (string, error) {
	var rev string
	err := s.db.QueryRow(`SELECT rev FROM kv WHERE key = ?`, key).Scan(&rev)
	return rev, err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
