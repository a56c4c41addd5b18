// Package storage defines the quote store interface and backend selection.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/quotekeeper/quotes/internal/storage/jsonfile"
	"github.com/quotekeeper/quotes/internal/storage/sqlite"
	"github.com/quotekeeper/quotes/internal/types"
)

// ErrNotFound is returned when a quote ID does not exist in the store.
var ErrNotFound = types.ErrQuoteNotFound

// Storage is the interface consumed by commands and the duplicate pipeline.
//
// ListQuotes returns a snapshot: callers may mutate the returned quotes
// freely and nothing is persisted until UpdateQuote or InsertQuote is called.
type Storage interface {
	// Quotes
	ListQuotes(ctx context.Context) ([]*types.Quote, error)
	GetQuote(ctx context.Context, id string) (*types.Quote, error)
	InsertQuote(ctx context.Context, q *types.Quote) error
	UpdateQuote(ctx context.Context, q *types.Quote) error
	DeleteQuote(ctx context.Context, id string) error

	// Daily quote display tracking
	DisplayHistory(ctx context.Context) ([]types.DisplayRecord, error)
	RecordDisplay(ctx context.Context, quoteID string) error
	LastDailyDisplay(ctx context.Context) (time.Time, bool, error)

	// Lifecycle
	Close() error
}

// Config selects and locates a storage backend.
type Config struct {
	// Backend is "jsonfile" or "sqlite"
	Backend string

	// Dir is the data directory; the backend picks its file name inside it
	Dir string

	// Path overrides the backend's default file location when set
	Path string
}

// New opens the configured backend.
func New(cfg *Config) (Storage, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = "jsonfile"
	}

	switch backend {
	case "jsonfile":
		path := cfg.Path
		if path == "" {
			path = filepath.Join(cfg.Dir, "quotes.json")
		}
		return jsonfile.New(path)
	case "sqlite":
		path := cfg.Path
		if path == "" {
			path = filepath.Join(cfg.Dir, "quotes.db")
		}
		return sqlite.New(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want jsonfile or sqlite)", backend)
	}
}
