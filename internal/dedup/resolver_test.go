package dedup

import (
	"context"
	"errors"
	"testing"

	"github.com/quotekeeper/quotes/internal/types"
)

// fakePrompter replays a scripted sequence of answers and records what it
// was shown.
type fakePrompter struct {
	answers   []string
	presented []Match
}

func (f *fakePrompter) ChooseAction(match Match, position, total int) (string, error) {
	f.presented = append(f.presented, match)
	if len(f.answers) == 0 {
		return "", nil
	}
	answer := f.answers[0]
	f.answers = f.answers[1:]
	return answer, nil
}

// fakeStore records writes and can be scripted to fail.
type fakeStore struct {
	inserted  []*types.Quote
	updated   []*types.Quote
	insertErr error
	updateErr error
}

func (f *fakeStore) InsertQuote(ctx context.Context, q *types.Quote) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, q)
	return nil
}

func (f *fakeStore) UpdateQuote(ctx context.Context, q *types.Quote) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, q)
	return nil
}

func matchFor(text string, score float64) Match {
	return Match{Candidate: quoteWithText(text), Score: score, Rationale: "scripted"}
}

func TestResolveUpdateMergesFields(t *testing.T) {
	store := &fakeStore{}
	prompter := &fakePrompter{answers: []string{"u"}}
	r := NewResolver(store, prompter, DefaultConfig())

	existing := types.NewQuote("the original text", "", "", "existing note", []string{"wisdom"})
	incoming := types.NewQuote("the original text slightly reworded", "Marcus Aurelius", "Meditations", "", []string{"growth"})

	res, err := r.Resolve(context.Background(), incoming, []Match{{Candidate: existing, Score: 0.92}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Outcome != OutcomeUpdated {
		t.Fatalf("outcome = %v, want OutcomeUpdated", res.Outcome)
	}
	if len(store.updated) != 1 {
		t.Fatalf("store.updated = %d writes, want 1", len(store.updated))
	}

	got := store.updated[0]
	if got.Text != incoming.Text {
		t.Errorf("text = %q, want incoming text applied", got.Text)
	}
	if got.Author != "Marcus Aurelius" {
		t.Errorf("author = %q, want incoming author", got.Author)
	}
	if got.Source != "Meditations" {
		t.Errorf("source = %q, want incoming source", got.Source)
	}
	if got.PersonalNote != "existing note" {
		t.Errorf("note = %q, want existing note kept (incoming was empty)", got.PersonalNote)
	}
	if !got.HasCategory("wisdom") || !got.HasCategory("growth") {
		t.Errorf("categories = %v, want union of existing and incoming", got.Categories)
	}
	if got.ID != existing.ID {
		t.Errorf("id changed during update")
	}
}

func TestResolveUpdateKeepsUnsuppliedFields(t *testing.T) {
	store := &fakeStore{}
	prompter := &fakePrompter{answers: []string{"u"}}
	r := NewResolver(store, prompter, DefaultConfig())

	existing := types.NewQuote("the original text", "Seneca", "Letters", "", nil)
	incoming := types.NewQuote("the original text", "", "", "", nil)

	_, err := r.Resolve(context.Background(), incoming, []Match{{Candidate: existing, Score: 0.97}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	got := store.updated[0]
	if got.Author != "Seneca" {
		t.Errorf("author = %q, want existing kept for unattributed incoming", got.Author)
	}
	if got.Source != "Letters" {
		t.Errorf("source = %q, want existing kept for empty incoming source", got.Source)
	}
}

func TestResolveDefaultsToNext(t *testing.T) {
	store := &fakeStore{}
	// Empty and garbage input both mean "not a duplicate, keep going".
	prompter := &fakePrompter{answers: []string{"", "what?"}}
	r := NewResolver(store, prompter, DefaultConfig())

	incoming := quoteWithText("brand new quote text")
	res, err := r.Resolve(context.Background(), incoming, []Match{
		matchFor("first candidate", 0.9),
		matchFor("second candidate", 0.8),
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Outcome != OutcomeInsertedAsNew {
		t.Errorf("outcome = %v, want OutcomeInsertedAsNew after exhausting matches", res.Outcome)
	}
	if len(prompter.presented) != 2 {
		t.Errorf("presented %d matches, want 2", len(prompter.presented))
	}
	if len(store.inserted) != 1 || store.inserted[0] != incoming {
		t.Errorf("incoming quote was not inserted")
	}
}

func TestResolveCancel(t *testing.T) {
	store := &fakeStore{}
	prompter := &fakePrompter{answers: []string{"n", "c"}}
	r := NewResolver(store, prompter, DefaultConfig())

	res, err := r.Resolve(context.Background(), quoteWithText("incoming"), []Match{
		matchFor("first", 0.9),
		matchFor("second", 0.85),
		matchFor("third", 0.8),
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Outcome != OutcomeCancelled {
		t.Errorf("outcome = %v, want OutcomeCancelled", res.Outcome)
	}
	if res.Quote != nil {
		t.Errorf("cancelled resolution carries a quote: %v", res.Quote)
	}
	if len(store.inserted)+len(store.updated) != 0 {
		t.Errorf("store written on cancel")
	}
	if len(prompter.presented) != 2 {
		t.Errorf("presented %d matches before cancel, want 2", len(prompter.presented))
	}
}

func TestResolvePresentsAtMostThree(t *testing.T) {
	store := &fakeStore{}
	prompter := &fakePrompter{answers: []string{"n", "n", "n", "n", "n"}}
	r := NewResolver(store, prompter, DefaultConfig())

	matches := []Match{
		matchFor("one", 0.99),
		matchFor("two", 0.95),
		matchFor("three", 0.9),
		matchFor("four", 0.85),
		matchFor("five", 0.8),
	}
	res, err := r.Resolve(context.Background(), quoteWithText("incoming"), matches)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(prompter.presented) != 3 {
		t.Errorf("presented %d matches, want 3", len(prompter.presented))
	}
	if prompter.presented[0].Candidate.Text != "one" {
		t.Errorf("first presented = %q, want highest scored", prompter.presented[0].Candidate.Text)
	}
	if res.Outcome != OutcomeInsertedAsNew {
		t.Errorf("outcome = %v, want OutcomeInsertedAsNew", res.Outcome)
	}
}

func TestResolveNoMatchesInserts(t *testing.T) {
	store := &fakeStore{}
	prompter := &fakePrompter{}
	r := NewResolver(store, prompter, DefaultConfig())

	incoming := quoteWithText("unique text")
	res, err := r.Resolve(context.Background(), incoming, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Outcome != OutcomeInsertedAsNew {
		t.Errorf("outcome = %v, want OutcomeInsertedAsNew", res.Outcome)
	}
	if len(prompter.presented) != 0 {
		t.Errorf("prompter consulted with no matches")
	}
	if len(store.inserted) != 1 {
		t.Errorf("quote not inserted")
	}
}

func TestResolveStoreFailurePropagates(t *testing.T) {
	writeErr := errors.New("disk full")

	t.Run("update failure", func(t *testing.T) {
		store := &fakeStore{updateErr: writeErr}
		prompter := &fakePrompter{answers: []string{"u"}}
		r := NewResolver(store, prompter, DefaultConfig())

		_, err := r.Resolve(context.Background(), quoteWithText("incoming"), []Match{matchFor("existing", 0.9)})
		if !errors.Is(err, writeErr) {
			t.Errorf("error = %v, want wrapped store error", err)
		}
	})

	t.Run("insert failure", func(t *testing.T) {
		store := &fakeStore{insertErr: writeErr}
		prompter := &fakePrompter{}
		r := NewResolver(store, prompter, DefaultConfig())

		_, err := r.Resolve(context.Background(), quoteWithText("incoming"), nil)
		if !errors.Is(err, writeErr) {
			t.Errorf("error = %v, want wrapped store error", err)
		}
	})
}

func TestNormalizeAction(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"u", ActionUpdate},
		{"U", ActionUpdate},
		{"update", ActionUpdate},
		{"c", ActionCancel},
		{"Cancel", ActionCancel},
		{"n", ActionNext},
		{"", ActionNext},
		{"  ", ActionNext},
		{"yes", ActionNext},
	}
	for _, tt := range tests {
		if got := normalizeAction(tt.input); got != tt.want {
			t.Errorf("normalizeAction(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
