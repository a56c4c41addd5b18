// Package types defines the quote model shared by storage, the duplicate
// pipeline and the CLI commands.
package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AuthorUnknown is the author recorded when no attribution is known.
const AuthorUnknown = "Anonymous"

// AIMetadata records what the AI features decided about a quote.
type AIMetadata struct {
	// AuthorConfidence is the model's certainty in the attribution (0.0-1.0).
	AuthorConfidence float64 `json:"author_confidence,omitempty"`

	// SuggestedCategories is what the categorizer proposed, kept even when
	// the user overrode it.
	SuggestedCategories []string `json:"suggested_categories,omitempty"`

	// CategoryConfidence is the model's certainty in the categorization.
	CategoryConfidence float64 `json:"category_confidence,omitempty"`

	// DuplicateCheckedAt is when the quote last went through the duplicate
	// scan; nil when it never did (e.g. added with AI disabled).
	DuplicateCheckedAt *time.Time `json:"duplicate_check_date,omitempty"`
}

// Quote is a single saved quote.
type Quote struct {
	ID           string     `json:"id"`
	Text         string     `json:"text"`
	Author       string     `json:"author"`
	Source       string     `json:"source,omitempty"`
	PersonalNote string     `json:"personal_note,omitempty"`
	Categories   []string   `json:"categories"`
	DateAdded    time.Time  `json:"date_added"`
	DateModified *time.Time `json:"date_modified,omitempty"`
	LastShown    *time.Time `json:"last_shown,omitempty"`
	TimesShown   int        `json:"times_shown"`
	AIMetadata   AIMetadata `json:"ai_metadata"`
}

// NewQuote builds a quote with a fresh ID and normalized fields. An empty
// author becomes AuthorUnknown.
func NewQuote(text, author, source, note string, categories []string) *Quote {
	author = strings.TrimSpace(author)
	if author == "" {
		author = AuthorUnknown
	}
	return &Quote{
		ID:           uuid.New().String(),
		Text:         NormalizeText(text),
		Author:       author,
		Source:       strings.TrimSpace(source),
		PersonalNote: strings.TrimSpace(note),
		Categories:   NormalizeCategories(categories),
		DateAdded:    time.Now().UTC(),
	}
}

// NormalizeText collapses internal whitespace and trims the ends.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeCategories lowercases, trims and de-duplicates category tags,
// preserving first-seen order. Returns nil when nothing survives.
func NormalizeCategories(categories []string) []string {
	seen := make(map[string]struct{}, len(categories))
	var out []string
	for _, cat := range categories {
		cat = strings.ToLower(strings.TrimSpace(cat))
		if cat == "" {
			continue
		}
		if _, dup := seen[cat]; dup {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	return out
}

// Validate checks the quote is storable.
func (q *Quote) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("quote text cannot be empty")
	}
	if q.ID == "" {
		return fmt.Errorf("quote ID cannot be empty")
	}
	return nil
}

// ShortID returns the first 8 characters of the ID, the form shown in
// listings and accepted by commands.
func (q *Quote) ShortID() string {
	if len(q.ID) <= 8 {
		return q.ID
	}
	return q.ID[:8]
}

// MarkShown records a display of this quote.
func (q *Quote) MarkShown() {
	now := time.Now().UTC()
	q.LastShown = &now
	q.TimesShown++
}

// Touch updates the modification timestamp.
func (q *Quote) Touch() {
	now := time.Now().UTC()
	q.DateModified = &now
}

// HasCategory reports whether the quote carries the given tag.
func (q *Quote) HasCategory(category string) bool {
	category = strings.ToLower(strings.TrimSpace(category))
	for _, cat := range q.Categories {
		if cat == category {
			return true
		}
	}
	return false
}

// DisplayRecord is one entry in the daily display history.
type DisplayRecord struct {
	QuoteID string    `json:"quote_id"`
	ShownAt time.Time `json:"shown_at"`
}
