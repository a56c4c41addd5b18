package types

import (
	"testing"
	"time"
)

func TestNewQuoteDefaults(t *testing.T) {
	q := NewQuote("  The  obstacle   is the way.  ", "", " Meditations ", "", []string{"Wisdom", "wisdom", " Growth "})

	if q.ID == "" {
		t.Error("expected a generated ID")
	}
	if q.Text != "The obstacle is the way." {
		t.Errorf("expected normalized text, got %q", q.Text)
	}
	if q.Author != AuthorUnknown {
		t.Errorf("expected empty author to become %q, got %q", AuthorUnknown, q.Author)
	}
	if q.Source != "Meditations" {
		t.Errorf("expected trimmed source, got %q", q.Source)
	}
	if len(q.Categories) != 2 || q.Categories[0] != "wisdom" || q.Categories[1] != "growth" {
		t.Errorf("expected deduplicated lowercase categories, got %v", q.Categories)
	}
	if q.DateAdded.IsZero() {
		t.Error("expected DateAdded to be set")
	}
	if q.TimesShown != 0 || q.LastShown != nil {
		t.Error("expected fresh quote to have no display history")
	}
}

func TestQuoteValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Quote)
		wantErr bool
	}{
		{"valid", func(q *Quote) {}, false},
		{"empty text", func(q *Quote) { q.Text = "" }, true},
		{"whitespace text", func(q *Quote) { q.Text = "   " }, true},
		{"missing id", func(q *Quote) { q.ID = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuote("Some text.", "Someone", "", "", nil)
			tt.mutate(q)
			err := q.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMarkShown(t *testing.T) {
	q := NewQuote("Some text.", "Someone", "", "", nil)
	before := time.Now().UTC().Add(-time.Second)

	q.MarkShown()
	q.MarkShown()

	if q.TimesShown != 2 {
		t.Errorf("expected TimesShown 2, got %d", q.TimesShown)
	}
	if q.LastShown == nil || q.LastShown.Before(before) {
		t.Errorf("expected recent LastShown, got %v", q.LastShown)
	}
}

func TestShortID(t *testing.T) {
	q := NewQuote("Some text.", "Someone", "", "", nil)
	if len(q.ShortID()) != 8 {
		t.Errorf("expected 8-char short ID, got %q", q.ShortID())
	}

	q.ID = "abc"
	if q.ShortID() != "abc" {
		t.Errorf("expected short IDs to pass through, got %q", q.ShortID())
	}
}

func TestNormalizeCategoriesEmpty(t *testing.T) {
	if got := NormalizeCategories([]string{" ", ""}); got != nil {
		t.Errorf("expected nil for all-blank input, got %v", got)
	}
}

func TestHasCategory(t *testing.T) {
	q := NewQuote("Some text.", "Someone", "", "", []string{"wisdom"})
	if !q.HasCategory("Wisdom") {
		t.Error("expected case-insensitive category lookup to match")
	}
	if q.HasCategory("humor") {
		t.Error("did not expect humor to match")
	}
}
