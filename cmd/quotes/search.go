package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quotekeeper/quotes/internal/types"
)

var searchCaseSensitive bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search quotes by text, author, source or note",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		query := strings.Join(args, " ")

		quotes, err := store.ListQuotes(ctx)
		if err != nil {
			fatal("failed to load quotes: %v", err)
		}

		var hits []*types.Quote
		for _, q := range quotes {
			if matchesQueryFold(q, query, searchCaseSensitive) {
				hits = append(hits, q)
			}
		}

		if len(hits) == 0 {
			render.Info("no quotes matching %q", query)
			return
		}
		for _, q := range hits {
			render.QuoteLine(q)
		}
		render.Info("\n%d match(es)", len(hits))
	},
}

// matchesQuery does a case-insensitive substring search over the fields a
// user is likely to remember.
func matchesQuery(q *types.Quote, query string) bool {
	return matchesQueryFold(q, query, false)
}

func matchesQueryFold(q *types.Quote, query string, caseSensitive bool) bool {
	fold := func(s string) string {
		if caseSensitive {
			return s
		}
		return strings.ToLower(s)
	}
	query = fold(query)
	for _, field := range []string{q.Text, q.Author, q.Source, q.PersonalNote} {
		if strings.Contains(fold(field), query) {
			return true
		}
	}
	for _, cat := range q.Categories {
		// categories are stored lowercase already
		if strings.Contains(cat, query) {
			return true
		}
	}
	return false
}

func init() {
	searchCmd.Flags().BoolVar(&searchCaseSensitive, "case-sensitive", false, "match case exactly")
	rootCmd.AddCommand(searchCmd)
}
