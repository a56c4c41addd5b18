package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/quotekeeper/quotes/internal/dedup"
	"github.com/quotekeeper/quotes/internal/types"
)

const boxWidth = 68

// Renderer writes themed output. Commands hold one renderer for the whole
// invocation.
type Renderer struct {
	out   io.Writer
	theme *Theme
}

// NewRenderer returns a renderer writing to out with the given theme.
func NewRenderer(out io.Writer, theme *Theme) *Renderer {
	return &Renderer{out: out, theme: theme}
}

// Theme exposes the active theme for callers that color ad-hoc strings.
func (r *Renderer) Theme() *Theme { return r.theme }

// QuoteBox renders a quote in a bordered box, the format used by daily
// and view.
func (r *Renderer) QuoteBox(q *types.Quote) {
	border := r.theme.Border.Sprint(strings.Repeat("─", boxWidth))
	fmt.Fprintf(r.out, "%s\n", border)
	for _, line := range wrapText(q.Text, boxWidth-4) {
		fmt.Fprintf(r.out, "  %s\n", r.theme.Primary.Sprint(line))
	}
	attribution := "— " + q.Author
	if q.Source != "" {
		attribution += ", " + q.Source
	}
	fmt.Fprintf(r.out, "  %s\n", r.theme.Secondary.Sprint(attribution))
	if q.PersonalNote != "" {
		fmt.Fprintf(r.out, "  %s\n", r.theme.Dim.Sprint("note: "+q.PersonalNote))
	}
	fmt.Fprintf(r.out, "%s\n", border)
}

// QuoteDetail renders the full record for a single quote.
func (r *Renderer) QuoteDetail(q *types.Quote) {
	r.QuoteBox(q)
	fmt.Fprintf(r.out, "%s %s\n", r.theme.Dim.Sprint("id:"), r.theme.Emphasis.Sprint(q.ShortID()))
	if len(q.Categories) > 0 {
		fmt.Fprintf(r.out, "%s %s\n", r.theme.Dim.Sprint("categories:"), strings.Join(q.Categories, ", "))
	}
	fmt.Fprintf(r.out, "%s %s\n", r.theme.Dim.Sprint("added:"), q.DateAdded.Format("2006-01-02"))
	if q.TimesShown > 0 {
		fmt.Fprintf(r.out, "%s %d\n", r.theme.Dim.Sprint("times shown:"), q.TimesShown)
	}
	if q.AIMetadata.AuthorConfidence > 0 {
		fmt.Fprintf(r.out, "%s %.0f%%\n", r.theme.Dim.Sprint("attribution confidence:"), q.AIMetadata.AuthorConfidence*100)
	}
}

// QuoteLine renders one row of a listing: short ID, truncated text,
// author, categories.
func (r *Renderer) QuoteLine(q *types.Quote) {
	text := q.Text
	if len(text) > 60 {
		text = text[:57] + "..."
	}
	line := fmt.Sprintf("%s  %-60s  %s",
		r.theme.Emphasis.Sprint(q.ShortID()),
		r.theme.Primary.Sprint(text),
		r.theme.Secondary.Sprint(q.Author))
	if len(q.Categories) > 0 {
		line += "  " + r.theme.Dim.Sprint("["+strings.Join(q.Categories, ", ")+"]")
	}
	fmt.Fprintln(r.out, line)
}

// Match renders one duplicate candidate next to the incoming quote, the
// way the resolver presents it: existing quote, new quote, similarity
// percentage with its level label, and the oracle's rationale.
func (r *Renderer) Match(m dedup.Match, incoming *types.Quote, position, total int) {
	fmt.Fprintf(r.out, "\n%s\n",
		r.theme.Warning.Sprintf("Possible duplicate %d of %d (%.0f%%, %s):",
			position, total, m.Score*100, m.Level()))
	r.QuoteBox(m.Candidate)
	fmt.Fprintf(r.out, "%s\n", r.theme.Emphasis.Sprint("Your new quote:"))
	r.QuoteBox(incoming)
	if m.Rationale != "" {
		fmt.Fprintf(r.out, "%s\n", r.theme.Dim.Sprint(m.Rationale))
	}
}

// Explanation renders explainer prose under a heading.
func (r *Renderer) Explanation(text string) {
	fmt.Fprintf(r.out, "\n%s\n\n", r.theme.Emphasis.Sprint("About this quote"))
	for _, line := range wrapText(text, boxWidth) {
		fmt.Fprintln(r.out, line)
	}
}

// Success prints a checkmarked status line.
func (r *Renderer) Success(format string, args ...any) {
	fmt.Fprintf(r.out, "%s %s\n", r.theme.Success.Sprint("✓"), fmt.Sprintf(format, args...))
}

// Warning prints a warning status line.
func (r *Renderer) Warning(format string, args ...any) {
	fmt.Fprintf(r.out, "%s %s\n", r.theme.Warning.Sprint("⚠"), fmt.Sprintf(format, args...))
}

// Error prints an error status line.
func (r *Renderer) Error(format string, args ...any) {
	fmt.Fprintf(r.out, "%s %s\n", r.theme.Error.Sprint("✗"), fmt.Sprintf(format, args...))
}

// Info prints an unadorned line in the primary color.
func (r *Renderer) Info(format string, args ...any) {
	fmt.Fprintf(r.out, "%s\n", r.theme.Primary.Sprintf(format, args...))
}

// wrapText breaks text into lines no wider than width, on word
// boundaries. Words longer than width get their own line.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}
