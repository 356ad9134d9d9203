// Package store persists the player save slot and the attempt history in
// SQLite.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// KV is the durable key-value surface the persistence gateway runs on.
// Implementations must treat a missing key as (value "", ok false, nil).
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Attempt is one graded level attempt, appended to the attempt log.
type Attempt struct {
	ID             string    `json:"id"`
	LevelID        string    `json:"levelId"`
	Score          int       `json:"score"`
	MaxScore       int       `json:"maxScore"`
	CorrectAnswers int       `json:"correctAnswers"`
	Stars          int       `json:"stars"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AttemptsPage is a paginated attempt log response.
type AttemptsPage struct {
	Attempts   []Attempt `json:"attempts"`
	TotalCount int       `json:"totalCount"`
	Page       int       `json:"page"`
	PerPage    int       `json:"perPage"`
	TotalPages int       `json:"totalPages"`
}

// SQLiteDB implements KV and the attempt log over a single SQLite file.
type SQLiteDB struct {
	db *sql.DB
}

// New opens the SQLite database at path and enables WAL.
func New(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	// SQLite is single-writer; one pooled connection also keeps :memory:
	// databases from splitting across connections.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("store: enable WAL: %w", err)
	}
	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Migrate creates tables and indexes. Safe to run on every startup.
func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS save_data (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS attempts (
			id TEXT PRIMARY KEY,
			level_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_score INTEGER NOT NULL,
			correct_answers INTEGER NOT NULL DEFAULT 0,
			stars INTEGER NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_level_id ON attempts(level_id, created_at DESC)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("store: migrate: %w", err)
		}
	}
	return nil
}

// Get returns the value stored under key.
func (s *SQLiteDB) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM save_data WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any prior value.
func (s *SQLiteDB) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO save_data (key, value)
		 VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   value = excluded.value,
		   updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store: set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *SQLiteDB) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM save_data WHERE key = ?`, key); err != nil {
		return fmt.Errorf("store: delete %q: %w", key, err)
	}
	return nil
}

// LogAttempt appends a graded attempt to the attempt log. A missing id is
// filled in.
func (s *SQLiteDB) LogAttempt(a Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO attempts (id, level_id, score, max_score, correct_answers, stars)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.LevelID, a.Score, a.MaxScore, a.CorrectAnswers, a.Stars,
	)
	if err != nil {
		return fmt.Errorf("store: log attempt: %w", err)
	}
	return nil
}

// ListAttempts returns attempts for a level, newest first, paginated.
func (s *SQLiteDB) ListAttempts(levelID string, page, perPage int) (*AttemptsPage, error) {
	var totalCount int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM attempts WHERE level_id = ?`, levelID).Scan(&totalCount)
	if err != nil {
		return nil, fmt.Errorf("store: count attempts: %w", err)
	}

	if perPage <= 0 {
		perPage = 50
	}
	if page <= 0 {
		page = 1
	}
	totalPages := (totalCount + perPage - 1) / perPage
	offset := (page - 1) * perPage

	rows, err := s.db.Query(
		`SELECT id, level_id, score, max_score, correct_answers, stars, created_at
		 FROM attempts WHERE level_id = ?
		 ORDER BY created_at DESC, id
		 LIMIT ? OFFSET ?`,
		levelID, perPage, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("store: query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.ID, &a.LevelID, &a.Score, &a.MaxScore, &a.CorrectAnswers, &a.Stars, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate attempts: %w", err)
	}

	return &AttemptsPage{
		Attempts:   attempts,
		TotalCount: totalCount,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}
