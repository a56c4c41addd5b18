package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/quotekeeper/quotes/internal/types"
)

func quoteWithID(id string) *types.Quote {
	q := types.NewQuote("placeholder text", "Author", "", "", nil)
	q.ID = id
	return q
}

func TestFindByRef(t *testing.T) {
	quotes := []*types.Quote{
		quoteWithID("aaaa1111-0000-0000-0000-000000000000"),
		quoteWithID("aaaa2222-0000-0000-0000-000000000000"),
		quoteWithID("bbbb3333-0000-0000-0000-000000000000"),
	}

	t.Run("full id", func(t *testing.T) {
		q, err := findByRef(quotes, "bbbb3333-0000-0000-0000-000000000000")
		if err != nil {
			t.Fatalf("findByRef: %v", err)
		}
		if q != quotes[2] {
			t.Errorf("wrong quote resolved")
		}
	})

	t.Run("unique prefix", func(t *testing.T) {
		q, err := findByRef(quotes, "aaaa2")
		if err != nil {
			t.Fatalf("findByRef: %v", err)
		}
		if q != quotes[1] {
			t.Errorf("wrong quote resolved")
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		q, err := findByRef(quotes, "BBBB3333")
		if err != nil {
			t.Fatalf("findByRef: %v", err)
		}
		if q != quotes[2] {
			t.Errorf("wrong quote resolved")
		}
	})

	t.Run("ambiguous prefix", func(t *testing.T) {
		_, err := findByRef(quotes, "aaaa")
		if err == nil || !strings.Contains(err.Error(), "ambiguous") {
			t.Errorf("expected ambiguity error, got %v", err)
		}
	})

	t.Run("no match", func(t *testing.T) {
		_, err := findByRef(quotes, "cccc")
		if !errors.Is(err, types.ErrQuoteNotFound) {
			t.Errorf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("empty ref", func(t *testing.T) {
		_, err := findByRef(quotes, "  ")
		if !errors.Is(err, types.ErrQuoteNotFound) {
			t.Errorf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}
