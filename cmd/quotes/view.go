package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/quotekeeper/quotes/internal/input"
	"github.com/quotekeeper/quotes/internal/types"
)

var viewExplain bool

var viewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one quote in full",
	Long: `Show a quote by ID (the short 8-character form from listings is
enough). With --explain, an AI-written explanation of the quote's meaning
and context is included.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		quote, err := resolveQuote(ctx, store, args[0])
		if err != nil {
			fatal("%v", err)
		}

		render.QuoteDetail(quote)

		if viewExplain {
			if !cfg.AI.EnableExplanations {
				render.Warning("explanations are disabled in config")
				return
			}
			client := aiClient()
			if client == nil {
				render.Warning("set ANTHROPIC_API_KEY to enable explanations")
				return
			}
			explanation, err := client.Explain(ctx, quote)
			if err != nil {
				fatal("failed to get explanation: %v", err)
			}
			render.Explanation(explanation)
			offerExplanationSave(ctx, quote, explanation)
		}
	},
}

// offerExplanationSave asks whether to keep the explanation in the
// quote's personal note. Declining or interrupting just moves on.
func offerExplanationSave(ctx context.Context, quote *types.Quote, explanation string) {
	reader, err := input.NewReader()
	if err != nil {
		return
	}
	defer reader.Close()

	ok, err := reader.Confirm("Append this explanation to the personal note?", false)
	if err != nil || !ok {
		return
	}

	if quote.PersonalNote != "" {
		quote.PersonalNote += "\n\n"
	}
	quote.PersonalNote += explanation
	quote.Touch()
	if err := store.UpdateQuote(ctx, quote); err != nil {
		fatal("failed to save quote: %v", err)
	}
	render.Success("explanation saved to quote %s", quote.ShortID())
}

func init() {
	viewCmd.Flags().BoolVarP(&viewExplain, "explain", "e", false, "include an AI explanation of the quote")
	rootCmd.AddCommand(viewCmd)
}
