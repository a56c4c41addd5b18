package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/quotekeeper/quotes/internal/input"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a quote",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		quote, err := resolveQuote(ctx, store, args[0])
		if err != nil {
			fatal("%v", err)
		}

		if !deleteForce {
			render.QuoteBox(quote)
			reader, err := input.NewReader()
			if err != nil {
				fatal("failed to open terminal: %v", err)
			}
			defer reader.Close()

			ok, err := reader.Confirm("Delete this quote?", false)
			if err != nil && !errors.Is(err, input.ErrCancelled) {
				fatal("%v", err)
			}
			if !ok {
				render.Warning("delete cancelled")
				return
			}
		}

		if err := store.DeleteQuote(ctx, quote.ID); err != nil {
			fatal("failed to delete quote: %v", err)
		}
		render.Success("deleted quote %s", quote.ShortID())
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "delete without confirmation")
	rootCmd.AddCommand(deleteCmd)
}
