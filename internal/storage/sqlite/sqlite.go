// Package sqlite implements the quote store on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/quotekeeper/quotes/internal/types"
)

// historyLimit mirrors the jsonfile backend's display-history cap.
const historyLimit = 21

const lastDailyKey = "last_daily_display"

// Store is a SQLite-backed quote store.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at path and applies the schema.
// The special path ":memory:" creates an in-memory database for tests.
func New(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		dsn = "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

const quoteColumns = `id, text, author, source, personal_note, categories,
	date_added, date_modified, last_shown, times_shown, ai_metadata`

func scanQuote(row interface{ Scan(...any) error }) (*types.Quote, error) {
	var (
		q            types.Quote
		categories   string
		aiMeta       string
		dateAdded    string
		dateModified sql.NullString
		lastShown    sql.NullString
	)
	err := row.Scan(&q.ID, &q.Text, &q.Author, &q.Source, &q.PersonalNote,
		&categories, &dateAdded, &dateModified, &lastShown, &q.TimesShown, &aiMeta)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(categories), &q.Categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories for %s: %w", q.ID, err)
	}
	if err := json.Unmarshal([]byte(aiMeta), &q.AIMetadata); err != nil {
		return nil, fmt.Errorf("failed to decode ai_metadata for %s: %w", q.ID, err)
	}

	q.DateAdded, err = time.Parse(time.RFC3339Nano, dateAdded)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date_added for %s: %w", q.ID, err)
	}
	if dateModified.Valid {
		t, err := time.Parse(time.RFC3339Nano, dateModified.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date_modified for %s: %w", q.ID, err)
		}
		q.DateModified = &t
	}
	if lastShown.Valid {
		t, err := time.Parse(time.RFC3339Nano, lastShown.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse last_shown for %s: %w", q.ID, err)
		}
		q.LastShown = &t
	}
	return &q, nil
}

func quoteArgs(q *types.Quote) ([]any, error) {
	categories, err := json.Marshal(q.Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to encode categories: %w", err)
	}
	aiMeta, err := json.Marshal(q.AIMetadata)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ai_metadata: %w", err)
	}

	var dateModified, lastShown any
	if q.DateModified != nil {
		dateModified = q.DateModified.Format(time.RFC3339Nano)
	}
	if q.LastShown != nil {
		lastShown = q.LastShown.Format(time.RFC3339Nano)
	}

	return []any{
		q.ID, q.Text, q.Author, q.Source, q.PersonalNote, string(categories),
		q.DateAdded.Format(time.RFC3339Nano), dateModified, lastShown,
		q.TimesShown, string(aiMeta),
	}, nil
}

// ListQuotes returns all quotes in insertion order.
func (s *Store) ListQuotes(ctx context.Context) ([]*types.Quote, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+quoteColumns+` FROM quotes ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*types.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotes: %w", err)
	}
	return quotes, nil
}

// GetQuote returns the quote with the exact ID, or ErrQuoteNotFound.
func (s *Store) GetQuote(ctx context.Context, id string) (*types.Quote, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+quoteColumns+` FROM quotes WHERE id = ?`, id)
	q, err := scanQuote(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("get quote %s: %w", id, types.ErrQuoteNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote %s: %w", id, err)
	}
	return q, nil
}

// InsertQuote stores a new quote.
func (s *Store) InsertQuote(ctx context.Context, q *types.Quote) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("invalid quote: %w", err)
	}
	args, err := quoteArgs(q)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO quotes (`+quoteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	if err != nil {
		return fmt.Errorf("failed to insert quote: %w", err)
	}
	return nil
}

// UpdateQuote overwrites the stored quote with the same ID.
func (s *Store) UpdateQuote(ctx context.Context, q *types.Quote) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("invalid quote: %w", err)
	}
	args, err := quoteArgs(q)
	if err != nil {
		return err
	}
	// Shift id to the WHERE clause.
	args = append(args[1:], q.ID)
	res, err := s.db.ExecContext(ctx, `UPDATE quotes SET
		text = ?, author = ?, source = ?, personal_note = ?, categories = ?,
		date_added = ?, date_modified = ?, last_shown = ?, times_shown = ?,
		ai_metadata = ? WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("failed to update quote %s: %w", q.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update quote %s: %w", q.ID, types.ErrQuoteNotFound)
	}
	return nil
}

// DeleteQuote removes the quote with the given ID.
func (s *Store) DeleteQuote(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quote %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete quote %s: %w", id, types.ErrQuoteNotFound)
	}
	return nil
}

// DisplayHistory returns the recent daily-display records, oldest first.
func (s *Store) DisplayHistory(ctx context.Context) ([]types.DisplayRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT quote_id, shown_at FROM display_history ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to read display history: %w", err)
	}
	defer rows.Close()

	var records []types.DisplayRecord
	for rows.Next() {
		var rec types.DisplayRecord
		var shownAt string
		if err := rows.Scan(&rec.QuoteID, &shownAt); err != nil {
			return nil, fmt.Errorf("failed to scan display record: %w", err)
		}
		rec.ShownAt, err = time.Parse(time.RFC3339Nano, shownAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse shown_at: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate display history: %w", err)
	}
	return records, nil
}

// RecordDisplay appends a display record, trims the history, and stamps the
// last daily display time.
func (s *Store) RecordDisplay(ctx context.Context, quoteID string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO display_history (quote_id, shown_at) VALUES (?, ?)`,
		quoteID, now); err != nil {
		return fmt.Errorf("failed to record display: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM display_history WHERE seq NOT IN
		(SELECT seq FROM display_history ORDER BY seq DESC LIMIT ?)`,
		historyLimit); err != nil {
		return fmt.Errorf("failed to trim display history: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		lastDailyKey, now); err != nil {
		return fmt.Errorf("failed to stamp last daily display: %w", err)
	}
	return tx.Commit()
}

// LastDailyDisplay returns when the daily quote was last shown, if ever.
func (s *Store) LastDailyDisplay(ctx context.Context) (time.Time, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM meta WHERE key = ?`, lastDailyKey).Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read last daily display: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse last daily display: %w", err)
	}
	return t, true, nil
}
