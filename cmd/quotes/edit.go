package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quotekeeper/quotes/internal/input"
	"github.com/quotekeeper/quotes/internal/types"
)

var (
	editText       string
	editAuthor     string
	editSource     string
	editNote       string
	editCategories []string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit fields of an existing quote",
	Long: `Edit a quote in place. With field flags, only those fields change;
without flags, every field is offered interactively and enter keeps the
current value.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		quote, err := resolveQuote(ctx, store, args[0])
		if err != nil {
			fatal("%v", err)
		}

		changed := false
		if cmd.Flags().Changed("text") {
			text := types.NormalizeText(editText)
			if text == "" {
				fatal("quote text cannot be empty")
			}
			quote.Text = text
			changed = true
		}
		if cmd.Flags().Changed("author") {
			author := strings.TrimSpace(editAuthor)
			if author == "" {
				author = types.AuthorUnknown
			}
			quote.Author = author
			quote.AIMetadata.AuthorConfidence = 0 // manual attribution
			changed = true
		}
		if cmd.Flags().Changed("source") {
			quote.Source = strings.TrimSpace(editSource)
			changed = true
		}
		if cmd.Flags().Changed("note") {
			quote.PersonalNote = strings.TrimSpace(editNote)
			changed = true
		}
		if cmd.Flags().Changed("categories") {
			quote.Categories = types.NormalizeCategories(editCategories)
			changed = true
		}

		if !changed {
			var err error
			changed, err = editInteractive(quote)
			if err != nil {
				if errors.Is(err, input.ErrCancelled) {
					render.Warning("edit cancelled")
					return
				}
				fatal("%v", err)
			}
			if !changed {
				render.Info("nothing changed")
				return
			}
		}

		quote.Touch()
		if err := store.UpdateQuote(ctx, quote); err != nil {
			fatal("failed to save quote: %v", err)
		}
		render.Success("updated quote %s", quote.ShortID())
	},
}

// editInteractive walks every field, showing the current value; a blank
// answer keeps it. Reports whether anything changed.
func editInteractive(quote *types.Quote) (bool, error) {
	reader, err := input.NewReader()
	if err != nil {
		return false, err
	}
	defer reader.Close()

	changed := false

	render.QuoteDetail(quote)
	render.Info("press enter to keep a field as is")

	if text, err := reader.Line(fmt.Sprintf("text [%s]: ", quote.Text)); err != nil {
		return false, err
	} else if text != "" {
		quote.Text = types.NormalizeText(text)
		changed = true
	}
	if author, err := reader.Line(fmt.Sprintf("author [%s]: ", quote.Author)); err != nil {
		return false, err
	} else if author != "" {
		quote.Author = author
		quote.AIMetadata.AuthorConfidence = 0
		changed = true
	}
	if source, err := reader.Line(fmt.Sprintf("source [%s]: ", quote.Source)); err != nil {
		return false, err
	} else if source != "" {
		quote.Source = source
		changed = true
	}
	if note, err := reader.Line(fmt.Sprintf("note [%s]: ", quote.PersonalNote)); err != nil {
		return false, err
	} else if note != "" {
		quote.PersonalNote = note
		changed = true
	}
	if cats, err := reader.Line(fmt.Sprintf("categories [%s]: ", strings.Join(quote.Categories, ", "))); err != nil {
		return false, err
	} else if cats != "" {
		quote.Categories = types.NormalizeCategories(strings.Split(cats, ","))
		changed = true
	}

	return changed, nil
}

func init() {
	editCmd.Flags().StringVarP(&editText, "text", "t", "", "replace the quote text")
	editCmd.Flags().StringVarP(&editAuthor, "author", "a", "", "replace the author")
	editCmd.Flags().StringVarP(&editSource, "source", "s", "", "replace the source")
	editCmd.Flags().StringVarP(&editNote, "note", "n", "", "replace the personal note")
	editCmd.Flags().StringSliceVarP(&editCategories, "categories", "c", nil, "replace the categories")
	rootCmd.AddCommand(editCmd)
}
