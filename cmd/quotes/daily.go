package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/quotekeeper/quotes/internal/types"
)

var (
	dailyForce bool
	dailyQuiet bool
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show today's quote",
	Long: `Show the quote of the day. Each day gets a fresh quote that has not
appeared in the last 21 days; running the command again on the same day
shows the same quote unless --force picks a new one.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		if !cfg.Daily.Enabled {
			render.Warning("daily quotes are disabled in config")
			return
		}

		quotes, err := store.ListQuotes(ctx)
		if err != nil {
			fatal("failed to load quotes: %v", err)
		}
		if len(quotes) == 0 {
			render.Info("no quotes yet, add one with: quotes add")
			return
		}

		history, err := store.DisplayHistory(ctx)
		if err != nil {
			fatal("failed to load display history: %v", err)
		}
		lastDaily, hasLast, err := store.LastDailyDisplay(ctx)
		if err != nil {
			fatal("failed to load display history: %v", err)
		}

		now := time.Now()
		rng := rand.New(rand.NewSource(now.UnixNano()))
		if dailyForce {
			hasLast = false
		}
		quote, reshow := pickDaily(quotes, history, lastDaily, hasLast, now, rng)
		if quote == nil {
			render.Info("no quotes yet, add one with: quotes add")
			return
		}

		if dailyQuiet {
			render.Info("%q — %s", quote.Text, quote.Author)
		} else {
			render.QuoteBox(quote)
		}

		if reshow {
			return
		}
		if err := store.RecordDisplay(ctx, quote.ID); err != nil {
			fatal("failed to record display: %v", err)
		}
		quote.MarkShown()
		if err := store.UpdateQuote(ctx, quote); err != nil {
			fatal("failed to record display: %v", err)
		}
	},
}

// pickDaily chooses today's quote. If a daily quote was already shown
// today, that same quote is returned with reshow set. Otherwise a random
// quote is picked from those absent from the recent display history;
// when every quote is in the history, the whole collection is eligible
// again.
func pickDaily(quotes []*types.Quote, history []types.DisplayRecord, lastDaily time.Time, hasLast bool, now time.Time, rng *rand.Rand) (*types.Quote, bool) {
	if len(quotes) == 0 {
		return nil, false
	}

	byID := make(map[string]*types.Quote, len(quotes))
	for _, q := range quotes {
		byID[q.ID] = q
	}

	if hasLast && sameDay(lastDaily, now) && len(history) > 0 {
		if q, ok := byID[history[len(history)-1].QuoteID]; ok {
			return q, true
		}
		// today's quote was deleted, pick a fresh one
	}

	recent := make(map[string]struct{}, len(history))
	for _, rec := range history {
		recent[rec.QuoteID] = struct{}{}
	}

	var eligible []*types.Quote
	for _, q := range quotes {
		if _, shown := recent[q.ID]; !shown {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		eligible = quotes
	}
	return eligible[rng.Intn(len(eligible))], false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

func init() {
	dailyCmd.Flags().BoolVar(&dailyForce, "force", false, "pick a fresh quote even if one was already shown today")
	dailyCmd.Flags().BoolVarP(&dailyQuiet, "quiet", "q", false, "single-line output, suitable for shell prompts")
	rootCmd.AddCommand(dailyCmd)
}
