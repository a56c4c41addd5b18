package ai

import (
	"context"
	"fmt"
)

// similarityResponse is the JSON shape the model is asked to produce when
// comparing two quotes.
type similarityResponse struct {
	Similarity float64 `json:"similarity"`
	Reason     string  `json:"reason"`
}

// Compare judges the semantic similarity of two quote texts, returning a
// score in [0,1] and a short rationale. It satisfies the duplicate
// scanner's oracle interface.
func (c *Client) Compare(ctx context.Context, textA, textB string) (float64, string, error) {
	prompt := buildSimilarityPrompt(textA, textB)

	responseText, err := c.Complete(ctx, prompt, "similarity_check", 300)
	if err != nil {
		return 0, "", err
	}

	result := Parse[similarityResponse](responseText)
	if !result.Success {
		return 0, "", fmt.Errorf("failed to parse similarity response: %s (response: %s)",
			result.Error, truncate(responseText, 200))
	}

	score := result.Data.Similarity
	if score < 0.0 || score > 1.0 {
		return 0, "", fmt.Errorf("invalid similarity score: %.2f (must be 0.0-1.0)", score)
	}
	return score, result.Data.Reason, nil
}

func buildSimilarityPrompt(textA, textB string) string {
	return fmt.Sprintf(`Compare these two quotes for semantic similarity.
Consider:
- Same core message/meaning (high weight)
- Similar wording or phrasing
- Minor differences like punctuation, capitalization don't matter much

Quote 1: """%s"""
Quote 2: """%s"""

Respond with ONLY a JSON object in this exact format:
{
    "similarity": 0.85,
    "reason": "brief explanation of similarity or difference"
}

Similarity scale:
- 0.95-1.0: Essentially identical (maybe minor punctuation differences)
- 0.85-0.94: High similarity (same core message, slightly different wording)
- 0.70-0.84: Medium similarity (related themes but different expression)
- 0.0-0.69: Different quotes

DO NOT include any text outside the JSON object.`, textA, textB)
}
