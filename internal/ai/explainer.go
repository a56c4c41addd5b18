package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/quotekeeper/quotes/internal/types"
)

// Explain produces a short essay on a quote's meaning and context. Unlike
// the structured operations this returns prose, so no JSON parsing is
// involved.
func (c *Client) Explain(ctx context.Context, quote *types.Quote) (string, error) {
	prompt := buildExplainPrompt(quote)

	responseText, err := c.Complete(ctx, prompt, "explanation", 800)
	if err != nil {
		return "", err
	}

	explanation := strings.TrimSpace(responseText)
	if explanation == "" {
		return "", fmt.Errorf("empty explanation response")
	}
	return explanation, nil
}

func buildExplainPrompt(quote *types.Quote) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Explain the meaning and significance of this quote in 200-400 words.\n\n")
	fmt.Fprintf(&sb, "Quote: \"%s\"\n", quote.Text)
	if quote.Author != "" && quote.Author != types.AuthorUnknown {
		fmt.Fprintf(&sb, "Author: %s\n", quote.Author)
	}
	if quote.Source != "" {
		fmt.Fprintf(&sb, "Source: %s\n", quote.Source)
	}
	sb.WriteString(`
Cover:
- What the quote means
- The context in which it was said or written, if known
- Why it resonates with people

Write in plain prose, no headings or bullet points.`)
	return sb.String()
}
