// Package store keeps a local history of finished sessions in SQLite. It is
// write-only from the bot's point of view: nothing here feeds back into move
// decisions.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store wraps the games database.
type Store struct {
	db *sql.DB
}

// Record is one finished session.
type Record struct {
	ID        string
	BotName   string
	ServerURL string
	StartedAt time.Time
	EndedAt   time.Time
	Turns     int
	Outcome   string
}

// Open opens (creating if needed) the database at dbPath and ensures the
// schema exists.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		bot_name TEXT,
		server_url TEXT,
		started_at DATETIME,
		ended_at DATETIME,
		turns INTEGER,
		outcome TEXT
	);
	`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create games table: %w", err)
	}

	return &Store{db: db}, nil
}

// RecordGame inserts one finished session and returns its generated id.
func (s *Store) RecordGame(rec Record) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	insertSQL := `
	INSERT INTO games (id, bot_name, server_url, started_at, ended_at, turns, outcome)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(insertSQL,
		rec.ID,
		rec.BotName,
		rec.ServerURL,
		rec.StartedAt,
		rec.EndedAt,
		rec.Turns,
		rec.Outcome,
	)
	if err != nil {
		return "", fmt.Errorf("insert game %s: %w", rec.ID, err)
	}
	return rec.ID, nil
}

// Games returns all recorded sessions, most recent first.
func (s *Store) Games() ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT id, bot_name, server_url, started_at, ended_at, turns, outcome
		FROM games
		ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		err := rows.Scan(&rec.ID, &rec.BotName, &rec.ServerURL,
			&rec.StartedAt, &rec.EndedAt, &rec.Turns, &rec.Outcome)
		if err != nil {
			return nil, fmt.Errorf("scan game row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
