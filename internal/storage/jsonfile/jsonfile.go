// Package jsonfile implements the quote store as a single JSON document.
//
// The on-disk document carries the quote list plus daily-display bookkeeping:
//
//	{
//	  "version": "1.0",
//	  "quotes": [...],
//	  "display_history": [{"quote_id": "...", "shown_at": "..."}],
//	  "last_daily_display": "...",
//	  "stats": {"total_quotes": N, ...}
//	}
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/quotekeeper/quotes/internal/types"
)

// historyLimit caps the display history; with one daily quote this covers
// roughly three weeks of no-repeat selection.
const historyLimit = 21

type document struct {
	Version          string                `json:"version"`
	Quotes           []*types.Quote        `json:"quotes"`
	DisplayHistory   []types.DisplayRecord `json:"display_history"`
	LastDailyDisplay *time.Time            `json:"last_daily_display"`
	Stats            stats                 `json:"stats"`
}

type stats struct {
	TotalQuotes      int     `json:"total_quotes"`
	MostShownQuoteID *string `json:"most_shown_quote_id"`
}

// Store is a JSON-document quote store.
type Store struct {
	path string
}

// New creates a jsonfile store rooted at path, creating the parent directory.
// The data file itself is created lazily on first write.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{path: path}, nil
}

// load reads the whole document. A missing or corrupt file yields an empty
// document rather than an error so a damaged file never bricks the tool.
func (s *Store) load() *document {
	doc := &document{Version: "1.0"}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return doc
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return &document{Version: "1.0"}
	}
	if doc.Version == "" {
		doc.Version = "1.0"
	}
	return doc
}

// save writes the document atomically (temp file + rename).
func (s *Store) save(doc *document) error {
	doc.Stats.TotalQuotes = len(doc.Quotes)
	doc.Stats.MostShownQuoteID = mostShownID(doc.Quotes)
	if doc.Quotes == nil {
		doc.Quotes = []*types.Quote{}
	}
	if doc.DisplayHistory == nil {
		doc.DisplayHistory = []types.DisplayRecord{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal quotes document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".quotes-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write quotes document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace quotes document: %w", err)
	}
	return nil
}

func mostShownID(quotes []*types.Quote) *string {
	var best *types.Quote
	for _, q := range quotes {
		if q.TimesShown > 0 && (best == nil || q.TimesShown > best.TimesShown) {
			best = q
		}
	}
	if best == nil {
		return nil
	}
	id := best.ID
	return &id
}

// ListQuotes returns a snapshot of all quotes.
func (s *Store) ListQuotes(ctx context.Context) ([]*types.Quote, error) {
	doc := s.load()
	out := make([]*types.Quote, len(doc.Quotes))
	for i, q := range doc.Quotes {
		cp := *q
		out[i] = &cp
	}
	return out, nil
}

// GetQuote returns the quote with the exact ID, or ErrQuoteNotFound.
func (s *Store) GetQuote(ctx context.Context, id string) (*types.Quote, error) {
	doc := s.load()
	for _, q := range doc.Quotes {
		if q.ID == id {
			cp := *q
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("get quote %s: %w", id, types.ErrQuoteNotFound)
}

// InsertQuote appends a new quote.
func (s *Store) InsertQuote(ctx context.Context, q *types.Quote) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("invalid quote: %w", err)
	}
	doc := s.load()
	for _, existing := range doc.Quotes {
		if existing.ID == q.ID {
			return fmt.Errorf("quote %s already exists", q.ID)
		}
	}
	cp := *q
	doc.Quotes = append(doc.Quotes, &cp)
	return s.save(doc)
}

// UpdateQuote overwrites the stored quote with the same ID.
func (s *Store) UpdateQuote(ctx context.Context, q *types.Quote) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("invalid quote: %w", err)
	}
	doc := s.load()
	for i, existing := range doc.Quotes {
		if existing.ID == q.ID {
			cp := *q
			doc.Quotes[i] = &cp
			return s.save(doc)
		}
	}
	return fmt.Errorf("update quote %s: %w", q.ID, types.ErrQuoteNotFound)
}

// DeleteQuote removes the quote with the given ID.
func (s *Store) DeleteQuote(ctx context.Context, id string) error {
	doc := s.load()
	for i, existing := range doc.Quotes {
		if existing.ID == id {
			doc.Quotes = append(doc.Quotes[:i], doc.Quotes[i+1:]...)
			return s.save(doc)
		}
	}
	return fmt.Errorf("delete quote %s: %w", id, types.ErrQuoteNotFound)
}

// DisplayHistory returns the recent daily-display records, oldest first.
func (s *Store) DisplayHistory(ctx context.Context) ([]types.DisplayRecord, error) {
	doc := s.load()
	return append([]types.DisplayRecord(nil), doc.DisplayHistory...), nil
}

// RecordDisplay appends to the display history, trims it to the history
// limit, and stamps the last daily display time.
func (s *Store) RecordDisplay(ctx context.Context, quoteID string) error {
	doc := s.load()
	now := time.Now().UTC()
	doc.DisplayHistory = append(doc.DisplayHistory, types.DisplayRecord{
		QuoteID: quoteID,
		ShownAt: now,
	})
	if len(doc.DisplayHistory) > historyLimit {
		doc.DisplayHistory = doc.DisplayHistory[len(doc.DisplayHistory)-historyLimit:]
	}
	doc.LastDailyDisplay = &now
	return s.save(doc)
}

// LastDailyDisplay returns when the daily quote was last shown, if ever.
func (s *Store) LastDailyDisplay(ctx context.Context) (time.Time, bool, error) {
	doc := s.load()
	if doc.LastDailyDisplay == nil {
		return time.Time{}, false, nil
	}
	return *doc.LastDailyDisplay, true, nil
}

// Close implements the storage interface; a file store has nothing to release.
func (s *Store) Close() error {
	return nil
}
