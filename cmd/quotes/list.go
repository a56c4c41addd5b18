package main

import (
	"context"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var (
	listCategory string
	listAuthor   string
	listLimit    int
	listAll      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved quotes",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		quotes, err := store.ListQuotes(ctx)
		if err != nil {
			fatal("failed to load quotes: %v", err)
		}

		filtered := quotes[:0:0]
		for _, q := range quotes {
			if listCategory != "" && !q.HasCategory(listCategory) {
				continue
			}
			if listAuthor != "" && !strings.EqualFold(q.Author, listAuthor) {
				continue
			}
			filtered = append(filtered, q)
		}

		if len(filtered) == 0 {
			render.Info("no quotes found")
			return
		}

		// Newest first.
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DateAdded.After(filtered[j].DateAdded)
		})

		total := len(filtered)
		if !listAll && listLimit > 0 && len(filtered) > listLimit {
			filtered = filtered[:listLimit]
		}
		for _, q := range filtered {
			render.QuoteLine(q)
		}
		if len(filtered) < total {
			render.Info("\nshowing %d of %d quote(s), use --all for everything", len(filtered), total)
		} else {
			render.Info("\n%d quote(s)", total)
		}
	},
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "only quotes with this category")
	listCmd.Flags().StringVarP(&listAuthor, "author", "a", "", "only quotes by this author")
	listCmd.Flags().IntVarP(&listLimit, "limit", "l", 20, "maximum quotes to show")
	listCmd.Flags().BoolVar(&listAll, "all", false, "show every quote")
	rootCmd.AddCommand(listCmd)
}
