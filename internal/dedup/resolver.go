package dedup

import (
	"context"
	"fmt"
	"strings"

	"github.com/quotekeeper/quotes/internal/types"
)

// Outcome is the terminal state of a conflict resolution.
type Outcome int

const (
	// OutcomeInsertedAsNew means the incoming quote was stored as a new
	// entry despite the matches.
	OutcomeInsertedAsNew Outcome = iota
	// OutcomeUpdated means an existing quote absorbed the incoming one.
	OutcomeUpdated
	// OutcomeCancelled means the user abandoned the add entirely.
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInsertedAsNew:
		return "inserted as new"
	case OutcomeUpdated:
		return "updated existing"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Action codes a Prompter may return.
const (
	ActionUpdate = "u"
	ActionNext   = "n"
	ActionCancel = "c"
)

// Prompter presents one match to the user and collects their decision.
// Implementations should return one of the Action codes; anything else is
// treated as ActionNext.
type Prompter interface {
	ChooseAction(match Match, position, total int) (string, error)
}

// Store is the slice of the storage layer the resolver writes through.
type Store interface {
	InsertQuote(ctx context.Context, quote *types.Quote) error
	UpdateQuote(ctx context.Context, quote *types.Quote) error
}

// Resolution is the result of resolving a potential duplicate.
type Resolution struct {
	Outcome Outcome
	// Quote is the stored quote after resolution: the merged existing
	// quote for OutcomeUpdated, the incoming quote for
	// OutcomeInsertedAsNew, nil for OutcomeCancelled.
	Quote *types.Quote
}

// Resolver walks duplicate matches with the user and commits the chosen
// outcome to storage.
type Resolver struct {
	store        Store
	prompter     Prompter
	maxPresented int
}

// NewResolver returns a Resolver honoring cfg.MaxPresented.
func NewResolver(store Store, prompter Prompter, cfg Config) *Resolver {
	return &Resolver{store: store, prompter: prompter, maxPresented: cfg.MaxPresented}
}

// Resolve presents the top matches one at a time. For each, the user may
// update the existing quote with the incoming fields, move on to the next
// match, or cancel the add. Running out of matches inserts the incoming
// quote as new. Storage write failures are returned to the caller.
func (r *Resolver) Resolve(ctx context.Context, incoming *types.Quote, matches []Match) (*Resolution, error) {
	if len(matches) > r.maxPresented {
		matches = matches[:r.maxPresented]
	}

	for i, match := range matches {
		choice, err := r.prompter.ChooseAction(match, i+1, len(matches))
		if err != nil {
			return nil, fmt.Errorf("reading duplicate decision: %w", err)
		}

		switch normalizeAction(choice) {
		case ActionUpdate:
			merged := mergeQuote(match.Candidate, incoming)
			if err := r.store.UpdateQuote(ctx, merged); err != nil {
				return nil, fmt.Errorf("updating quote %s: %w", merged.ShortID(), err)
			}
			return &Resolution{Outcome: OutcomeUpdated, Quote: merged}, nil
		case ActionCancel:
			return &Resolution{Outcome: OutcomeCancelled}, nil
		case ActionNext:
			// fall through to the next match
		}
	}

	if err := r.store.InsertQuote(ctx, incoming); err != nil {
		return nil, fmt.Errorf("inserting quote: %w", err)
	}
	return &Resolution{Outcome: OutcomeInsertedAsNew, Quote: incoming}, nil
}

// normalizeAction maps raw user input to an Action code. Unrecognized or
// empty input means "next" so that pressing enter never destroys data.
func normalizeAction(input string) string {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case ActionUpdate, "update":
		return ActionUpdate
	case ActionCancel, "cancel":
		return ActionCancel
	default:
		return ActionNext
	}
}

// mergeQuote folds the supplied fields of the incoming quote into a copy
// of the existing one. Empty incoming fields never blank out existing
// data; categories are unioned. Identity, timestamps and display counters
// stay with the existing quote.
func mergeQuote(existing, incoming *types.Quote) *types.Quote {
	merged := *existing

	if incoming.Text != "" {
		merged.Text = incoming.Text
	}
	if incoming.Author != "" && incoming.Author != types.AuthorUnknown {
		merged.Author = incoming.Author
	}
	if incoming.Source != "" {
		merged.Source = incoming.Source
	}
	if incoming.PersonalNote != "" {
		merged.PersonalNote = incoming.PersonalNote
	}
	if len(incoming.Categories) > 0 {
		merged.Categories = types.NormalizeCategories(append(append([]string{}, existing.Categories...), incoming.Categories...))
	}

	merged.Touch()
	return &merged
}
