package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/quotekeeper/quotes/internal/storage"
	"github.com/quotekeeper/quotes/internal/types"
)

// resolveQuote finds a quote by full ID or unambiguous ID prefix (the
// 8-char short IDs shown in listings are the common case).
func resolveQuote(ctx context.Context, store storage.Storage, ref string) (*types.Quote, error) {
	quotes, err := store.ListQuotes(ctx)
	if err != nil {
		return nil, err
	}
	return findByRef(quotes, ref)
}

func findByRef(quotes []*types.Quote, ref string) (*types.Quote, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return nil, fmt.Errorf("empty quote ID: %w", types.ErrQuoteNotFound)
	}

	var matches []*types.Quote
	for _, q := range quotes {
		id := strings.ToLower(q.ID)
		if id == ref {
			return q, nil
		}
		if strings.HasPrefix(id, ref) {
			matches = append(matches, q)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no quote with ID %q: %w", ref, types.ErrQuoteNotFound)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, q := range matches {
			ids[i] = q.ShortID()
		}
		return nil, fmt.Errorf("ID %q is ambiguous, matches: %s", ref, strings.Join(ids, ", "))
	}
}
