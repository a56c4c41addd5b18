package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type parseTarget struct {
	Similarity float64 `json:"similarity"`
	Reason     string  `json:"reason"`
}

func TestParseDirectJSON(t *testing.T) {
	result := Parse[parseTarget](`{"similarity": 0.85, "reason": "same message"}`)
	assert.True(t, result.Success)
	assert.Equal(t, 0.85, result.Data.Similarity)
	assert.Equal(t, "same message", result.Data.Reason)
}

func TestParseCodeFencedJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"json fence", "```json\n{\"similarity\": 0.9, \"reason\": \"x\"}\n```"},
		{"bare fence", "```\n{\"similarity\": 0.9, \"reason\": \"x\"}\n```"},
		{"fence without newlines", "```json{\"similarity\": 0.9, \"reason\": \"x\"}```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse[parseTarget](tt.input)
			assert.True(t, result.Success, "error: %s", result.Error)
			assert.Equal(t, 0.9, result.Data.Similarity)
		})
	}
}

func TestParseTrailingComma(t *testing.T) {
	result := Parse[parseTarget](`{"similarity": 0.7, "reason": "close",}`)
	assert.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, 0.7, result.Data.Similarity)
}

func TestParseEmbeddedInProse(t *testing.T) {
	input := `Here is my analysis: {"similarity": 0.95, "reason": "identical"} Hope that helps!`
	result := Parse[parseTarget](input)
	assert.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, 0.95, result.Data.Similarity)
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   \n  "},
		{"no json at all", "I cannot answer that."},
		{"broken json", `{"similarity": }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse[parseTarget](tt.input)
			assert.False(t, result.Success)
			assert.NotEmpty(t, result.Error)
		})
	}
}

func TestParseArray(t *testing.T) {
	result := Parse[[]string](`The tags are: ["wisdom", "growth"]`)
	assert.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, []string{"wisdom", "growth"}, result.Data)
}
