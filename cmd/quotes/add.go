package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/quotekeeper/quotes/internal/ai"
	"github.com/quotekeeper/quotes/internal/dedup"
	"github.com/quotekeeper/quotes/internal/display"
	"github.com/quotekeeper/quotes/internal/input"
	"github.com/quotekeeper/quotes/internal/types"
)

var (
	addText       string
	addAuthor     string
	addSource     string
	addNote       string
	addCategories []string
	addSkipAI     bool
)

var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a new quote",
	Long: `Add a quote to your collection. With no text argument, prompts
interactively. Unless --skip-ai is given, the author and categories are
filled in by AI when missing, and the new quote is checked against the
collection for duplicates.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		text := addText
		if len(args) == 1 {
			text = args[0]
		}
		interactive := strings.TrimSpace(text) == ""

		reader, err := input.NewReader()
		if err != nil {
			fatal("failed to open terminal: %v", err)
		}
		defer reader.Close()

		if strings.TrimSpace(text) == "" {
			text, err = reader.Line("Quote text: ")
			if err != nil {
				if errors.Is(err, input.ErrCancelled) {
					render.Warning("add cancelled")
					return
				}
				fatal("%v", err)
			}
		}
		if strings.TrimSpace(text) == "" {
			fatal("quote text cannot be empty")
		}

		if interactive {
			if err := promptOptionalFields(reader); err != nil {
				if errors.Is(err, input.ErrCancelled) {
					render.Warning("add cancelled")
					return
				}
				fatal("%v", err)
			}
		}

		quote := types.NewQuote(text, addAuthor, addSource, addNote, addCategories)

		client := aiClient()
		useAI := client != nil && !addSkipAI

		if useAI {
			enrichQuote(ctx, client, quote)
		}

		if useAI && cfg.AI.EnableDuplicateDetection {
			reportOutcome(runDuplicateCheck(ctx, client, reader, quote))
			return
		}

		if err := store.InsertQuote(ctx, quote); err != nil {
			fatal("failed to save quote: %v", err)
		}
		render.Success("added quote %s", quote.ShortID())
	},
}

// promptOptionalFields collects author, source, note and categories in
// interactive mode. Empty answers leave the AI (or defaults) to fill in.
func promptOptionalFields(reader *input.Reader) error {
	var err error
	if addAuthor, err = reader.Line("Author (blank to auto-detect): "); err != nil {
		return err
	}
	if addSource, err = reader.Line("Source (optional): "); err != nil {
		return err
	}
	if addNote, err = reader.Line("Personal note (optional): "); err != nil {
		return err
	}
	available := append(append([]string{}, types.PredefinedCategories...), cfg.CustomCategories...)
	render.Info("categories: %s", strings.Join(available, ", "))
	cats, err := reader.Line("Categories, comma-separated (blank to auto-suggest): ")
	if err != nil {
		return err
	}
	addCategories = nil
	if cats != "" {
		addCategories = strings.Split(cats, ",")
	}
	return nil
}

// enrichQuote fills in a missing author and missing categories, running
// both lookups concurrently. Failures degrade to the plain quote.
func enrichQuote(ctx context.Context, client *ai.Client, quote *types.Quote) {
	needAuthor := cfg.AI.EnableAuthorLookup && quote.Author == types.AuthorUnknown
	needCategories := len(quote.Categories) == 0

	if !needAuthor && !needCategories {
		return
	}

	var (
		authorResult   *ai.AuthorResult
		categoryResult *ai.CategoryResult
	)
	g, gctx := errgroup.WithContext(ctx)
	if needAuthor {
		g.Go(func() error {
			res, err := client.IdentifyAuthor(gctx, quote.Text, cfg.AI.EnableWebSearchAuthor)
			if err == nil {
				authorResult = res
			}
			return nil // enrichment is best effort
		})
	}
	if needCategories {
		g.Go(func() error {
			res, err := client.SuggestCategories(gctx, quote.Text)
			if err == nil {
				categoryResult = res
			}
			return nil
		})
	}
	g.Wait()

	if authorResult != nil && authorResult.Author != types.AuthorUnknown {
		quote.Author = authorResult.Author
		quote.AIMetadata.AuthorConfidence = authorResult.Confidence
		render.Info("author: %s (%.0f%% confidence, via %s)",
			authorResult.Author, authorResult.Confidence*100, authorResult.Source)
	}
	if categoryResult != nil {
		quote.Categories = categoryResult.Categories
		quote.AIMetadata.SuggestedCategories = categoryResult.Categories
		quote.AIMetadata.CategoryConfidence = categoryResult.Confidence
		render.Info("categories: %s", strings.Join(categoryResult.Categories, ", "))
	}
}

// runDuplicateCheck scans the collection and resolves any matches with
// the user, returning the final resolution.
func runDuplicateCheck(ctx context.Context, client *ai.Client, reader *input.Reader, quote *types.Quote) *dedup.Resolution {
	candidates, err := store.ListQuotes(ctx)
	if err != nil {
		fatal("failed to load quotes: %v", err)
	}

	scanner, err := dedup.NewScanner(client, dedup.ConfigFromEnv())
	if err != nil {
		fatal("%v", err)
	}

	matches, stats, err := scanner.Scan(ctx, quote.Text, candidates)
	if err != nil {
		if errors.Is(err, dedup.ErrEmptyText) {
			fatal("quote text cannot be empty")
		}
		fatal("duplicate scan failed: %v", err)
	}
	now := time.Now().UTC()
	quote.AIMetadata.DuplicateCheckedAt = &now

	if stats.Skipped > 0 {
		render.Warning("%d similarity checks failed and were skipped", stats.Skipped)
	}

	prompter := &consolePrompter{reader: reader, render: render, incoming: quote}
	resolver := dedup.NewResolver(store, prompter, dedup.ConfigFromEnv())
	resolution, err := resolver.Resolve(ctx, quote, matches)
	if err != nil {
		fatal("%v", err)
	}
	return resolution
}

func reportOutcome(res *dedup.Resolution) {
	switch res.Outcome {
	case dedup.OutcomeUpdated:
		render.Success("updated existing quote %s", res.Quote.ShortID())
	case dedup.OutcomeInsertedAsNew:
		render.Success("added quote %s", res.Quote.ShortID())
	case dedup.OutcomeCancelled:
		render.Warning("add cancelled, nothing saved")
	}
}

// consolePrompter renders a duplicate match and reads the user's
// decision. Ctrl-C while deciding cancels the whole add.
type consolePrompter struct {
	reader   *input.Reader
	render   *display.Renderer
	incoming *types.Quote
}

func (p *consolePrompter) ChooseAction(match dedup.Match, position, total int) (string, error) {
	p.render.Match(match, p.incoming, position, total)
	choice, err := p.reader.Choice(
		"[u]pdate existing / [n]ot a duplicate / [c]ancel (default n): ",
		[]string{dedup.ActionUpdate, dedup.ActionNext, dedup.ActionCancel},
		dedup.ActionNext,
	)
	if errors.Is(err, input.ErrCancelled) {
		return dedup.ActionCancel, nil
	}
	return choice, err
}

func init() {
	addCmd.Flags().StringVarP(&addText, "text", "t", "", "quote text (may also be given as the argument)")
	addCmd.Flags().StringVarP(&addAuthor, "author", "a", "", "quote author")
	addCmd.Flags().StringVarP(&addSource, "source", "s", "", "where the quote is from")
	addCmd.Flags().StringVarP(&addNote, "note", "n", "", "personal note")
	addCmd.Flags().StringSliceVarP(&addCategories, "categories", "c", nil, "comma-separated categories")
	addCmd.Flags().BoolVar(&addSkipAI, "skip-ai", false, "skip AI enrichment and duplicate detection")
	rootCmd.AddCommand(addCmd)
}
