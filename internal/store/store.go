// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/wordlens/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const (
	keyDraft = "draft"
	keyTheme = "theme"
)

// Store wraps SQLite access for the draft, preferences and snapshots.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY,
			saved_at TEXT NOT NULL,
			word_count INTEGER NOT NULL,
			char_count INTEGER NOT NULL,
			sentence_count INTEGER NOT NULL,
			readability_score INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_saved_at ON snapshots(saved_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, s.now().Format(time.RFC3339Nano))
	return err
}

func (s *Store) get(ctx context.Context, key string) (string, time.Time, bool, error) {
	var value, updatedAt string
	err := s.db.QueryRowContext(ctx, `SELECT value, updated_at FROM kv WHERE key = ?`, key).Scan(&value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", time.Time{}, false, nil
	}
	if err != nil {
		return "", time.Time{}, false, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return "", time.Time{}, false, err
	}
	return value, parsed, true, nil
}

// SaveDraft stores the editor text.
func (s *Store) SaveDraft(ctx context.Context, text string) error {
	return s.put(ctx, keyDraft, text)
}

// LoadDraft returns the saved draft. A missing draft is returned as an
// empty Draft without error.
func (s *Store) LoadDraft(ctx context.Context) (model.Draft, error) {
	value, updatedAt, ok, err := s.get(ctx, keyDraft)
	if err != nil || !ok {
		return model.Draft{}, err
	}
	return model.Draft{Text: value, UpdatedAt: updatedAt}, nil
}

// ClearDraft removes the saved draft.
func (s *Store) ClearDraft(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, keyDraft)
	return err
}

// SetTheme persists the editor theme.
func (s *Store) SetTheme(ctx context.Context, theme model.Theme) error {
	return s.put(ctx, keyTheme, string(theme))
}

// Theme returns the persisted theme, or fallback when none is stored.
func (s *Store) Theme(ctx context.Context, fallback model.Theme) (model.Theme, error) {
	value, _, ok, err := s.get(ctx, keyTheme)
	if err != nil || !ok {
		return fallback, err
	}
	switch theme := model.Theme(value); theme {
	case model.ThemeDark, model.ThemeLight:
		return theme, nil
	default:
		return fallback, nil
	}
}

// SaveDraftWithSnapshot stores the draft and records a snapshot of its
// metrics in one transaction.
func (s *Store) SaveDraftWithSnapshot(ctx context.Context, text string, res model.AnalysisResult) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	now := s.now().Format(time.RFC3339Nano)
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		keyDraft, text, now); err != nil {
		return 0, err
	}
	result, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (saved_at, word_count, char_count, sentence_count, readability_score)
		 VALUES (?, ?, ?, ?, ?)`,
		now, res.WordCount, res.CharCount, res.SentenceCount, res.ReadabilityScore)
	if err != nil {
		return 0, err
	}
	id, err = result.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListSnapshots returns snapshots oldest first. A positive last limits the
// result to the most recent entries. Rows are ordered by id since saved_at
// text does not sort chronologically.
func (s *Store) ListSnapshots(ctx context.Context, last int) ([]model.Snapshot, error) {
	query := `SELECT id, saved_at, word_count, char_count, sentence_count, readability_score
		FROM (SELECT * FROM snapshots ORDER BY id DESC LIMIT ?)
		ORDER BY id ASC`
	limit := -1
	if last > 0 {
		limit = last
	}
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var snapshots []model.Snapshot
	for rows.Next() {
		var snap model.Snapshot
		var savedAt string
		if err := rows.Scan(&snap.ID, &savedAt, &snap.WordCount, &snap.CharCount, &snap.SentenceCount, &snap.ReadabilityScore); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, savedAt)
		if err != nil {
			return nil, err
		}
		snap.SavedAt = parsed
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return snapshots, nil
}
