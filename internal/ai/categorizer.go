package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/quotekeeper/quotes/internal/types"
)

// CategoryResult holds suggested categories for a quote together with the
// model's confidence in the suggestion.
type CategoryResult struct {
	Categories []string
	Confidence float64
}

type categoryResponse struct {
	Categories []string `json:"categories"`
	Confidence float64  `json:"confidence"`
}

// SuggestCategories asks the model to tag a quote with 2-4 categories drawn
// from the predefined set. Unknown categories in the response are dropped;
// if none survive, the quote falls back to "inspiration".
func (c *Client) SuggestCategories(ctx context.Context, text string) (*CategoryResult, error) {
	prompt := buildCategoryPrompt(text)

	responseText, err := c.Complete(ctx, prompt, "categorization", 200)
	if err != nil {
		return nil, err
	}

	result := Parse[categoryResponse](responseText)
	if !result.Success {
		return nil, fmt.Errorf("failed to parse category response: %s (response: %s)",
			result.Error, truncate(responseText, 200))
	}

	confidence := result.Data.Confidence
	if confidence < 0.0 || confidence > 1.0 {
		return nil, fmt.Errorf("invalid category confidence: %.2f (must be 0.0-1.0)", confidence)
	}

	var categories []string
	for _, cat := range result.Data.Categories {
		cat = strings.ToLower(strings.TrimSpace(cat))
		if types.IsPredefinedCategory(cat) {
			categories = append(categories, cat)
		}
		if len(categories) == 4 {
			break
		}
	}
	if len(categories) == 0 {
		categories = []string{"inspiration"}
		confidence = 0.0
	}

	return &CategoryResult{Categories: categories, Confidence: confidence}, nil
}

func buildCategoryPrompt(text string) string {
	return fmt.Sprintf(`Categorize this quote using ONLY categories from this list:
%s

Quote: """%s"""

Respond with ONLY a JSON object in this exact format:
{
    "categories": ["wisdom", "growth"],
    "confidence": 0.85
}

Rules:
- Choose 2-4 categories that best fit the quote
- Only use categories from the list above
- confidence is 0.0-1.0 for the overall categorization

DO NOT include any text outside the JSON object.`,
		strings.Join(types.PredefinedCategories, ", "), text)
}
