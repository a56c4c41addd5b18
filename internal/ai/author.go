package ai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/quotekeeper/quotes/internal/types"
)

// AuthorResult holds an author identification attempt. Confidence is the
// model's self-reported certainty in [0,1]; Source records where the answer
// came from ("ai" or "web").
type AuthorResult struct {
	Author     string
	Confidence float64
	Source     string
}

// webSearchConfidenceFloor is the confidence below which we try to confirm
// the attribution with a web search.
const webSearchConfidenceFloor = 0.70

// webSearchTimeout bounds the DuckDuckGo fallback lookup.
const webSearchTimeout = 5 * time.Second

type authorResponse struct {
	Author     string  `json:"author"`
	Confidence float64 `json:"confidence"`
}

// IdentifyAuthor asks the model who said a quote. When the model is unsure
// (confidence below 0.70) and webFallback is set, a DuckDuckGo search is
// used to try to confirm or find the attribution. An unidentifiable quote
// yields AuthorUnknown with zero confidence rather than an error.
func (c *Client) IdentifyAuthor(ctx context.Context, text string, webFallback bool) (*AuthorResult, error) {
	prompt := buildAuthorPrompt(text)

	responseText, err := c.Complete(ctx, prompt, "author_identification", 200)
	if err != nil {
		return nil, err
	}

	result := Parse[authorResponse](responseText)
	if !result.Success {
		return nil, fmt.Errorf("failed to parse author response: %s (response: %s)",
			result.Error, truncate(responseText, 200))
	}

	author := strings.TrimSpace(result.Data.Author)
	confidence := result.Data.Confidence
	if confidence < 0.0 || confidence > 1.0 {
		return nil, fmt.Errorf("invalid author confidence: %.2f (must be 0.0-1.0)", confidence)
	}
	if author == "" || strings.EqualFold(author, "unknown") {
		author = types.AuthorUnknown
		confidence = 0.0
	}

	out := &AuthorResult{Author: author, Confidence: confidence, Source: "ai"}

	if webFallback && confidence < webSearchConfidenceFloor {
		if webAuthor := searchAuthorWeb(ctx, text); webAuthor != "" {
			out.Author = webAuthor
			out.Confidence = webSearchConfidenceFloor
			out.Source = "web"
		}
	}
	return out, nil
}

func buildAuthorPrompt(text string) string {
	return fmt.Sprintf(`Who is the author of this quote? If you are not certain, say so.

Quote: """%s"""

Respond with ONLY a JSON object in this exact format:
{
    "author": "Full Name",
    "confidence": 0.9
}

Rules:
- confidence is 0.0-1.0 reflecting how certain you are of the attribution
- Use the most commonly accepted attribution
- If the quote is commonly misattributed, give the actual author
- If you cannot identify the author, use "Unknown" with confidence 0.0

DO NOT include any text outside the JSON object.`, text)
}

// searchAuthorWeb scrapes the DuckDuckGo HTML endpoint for a likely
// attribution. Best effort: any failure returns "".
func searchAuthorWeb(ctx context.Context, text string) string {
	ctx, cancel := context.WithTimeout(ctx, webSearchTimeout)
	defer cancel()

	query := fmt.Sprintf("%q quote author", truncate(text, 100))
	searchURL := "https://html.duckduckgo.com/html/?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; quotes-cli)")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return ""
	}
	return extractAuthorFromResults(doc)
}

// extractAuthorFromResults walks the parsed result page collecting snippet
// text and looks for a "- Author Name" or "by Author Name" pattern.
func extractAuthorFromResults(doc *html.Node) string {
	var snippets []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "a" || n.Data == "h2") {
			for _, attr := range n.Attr {
				if attr.Key == "class" && strings.Contains(attr.Val, "result__") {
					snippets = append(snippets, nodeText(n))
					break
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	for _, snippet := range snippets {
		if author := parseAttributionSnippet(snippet); author != "" {
			return author
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// parseAttributionSnippet pulls a plausible author name out of a search
// result title like "Quote text... - Albert Einstein" or
// "... by Maya Angelou | BrainyQuote".
func parseAttributionSnippet(snippet string) string {
	for _, sep := range []string{" - ", " — ", " by "} {
		idx := strings.LastIndex(snippet, sep)
		if idx < 0 {
			continue
		}
		candidate := snippet[idx+len(sep):]
		if pipe := strings.IndexAny(candidate, "|("); pipe >= 0 {
			candidate = candidate[:pipe]
		}
		candidate = strings.TrimSpace(candidate)
		if isPlausibleName(candidate) {
			return candidate
		}
	}
	return ""
}

// isPlausibleName accepts short title-cased phrases and rejects obvious
// site names and sentence fragments.
func isPlausibleName(s string) bool {
	words := strings.Fields(s)
	if len(words) < 1 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		r := rune(w[0])
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	lower := strings.ToLower(s)
	for _, bad := range []string{"quote", "goodreads", "brainy", "wikiquote", "pinterest"} {
		if strings.Contains(lower, bad) {
			return false
		}
	}
	return true
}
