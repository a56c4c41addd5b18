package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Models are told to answer with raw JSON, but in practice responses arrive
// wrapped in code fences, prefixed with prose, or carrying trailing commas.
// Parse tries a sequence of cleanup strategies before giving up.

var (
	codeFenceRegex     = regexp.MustCompile("(?s)`{3}(?:json)?\\s*\\n?([\\s\\S]*?)\\n?`{3}")
	trailingCommaRegex = regexp.MustCompile(`,(\s*[}\]])`)
	objectRegex        = regexp.MustCompile(`(?s)\{[\s\S]*\}`)
	arrayRegex         = regexp.MustCompile(`(?s)\[[\s\S]*\]`)
)

// ParseResult carries the outcome of one parse attempt.
type ParseResult[T any] struct {
	Success bool
	Data    T
	Error   string
}

// Parse extracts a JSON value of type T from model output.
//
// Strategy sequence:
//  1. direct parse
//  2. strip code fences and retry
//  3. remove trailing commas and retry
//  4. extract the first JSON object/array from mixed content and retry
func Parse[T any](text string) ParseResult[T] {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ParseResult[T]{Error: "empty input"}
	}

	if data, err := tryParse[T](trimmed); err == nil {
		return ParseResult[T]{Success: true, Data: data}
	}

	if m := codeFenceRegex.FindStringSubmatch(trimmed); m != nil {
		if data, err := tryParse[T](strings.TrimSpace(m[1])); err == nil {
			return ParseResult[T]{Success: true, Data: data}
		}
		trimmed = strings.TrimSpace(m[1])
	}

	cleaned := trailingCommaRegex.ReplaceAllString(trimmed, "$1")
	if data, err := tryParse[T](cleaned); err == nil {
		return ParseResult[T]{Success: true, Data: data}
	}

	if extracted := extractJSON(cleaned); extracted != "" {
		if data, err := tryParse[T](extracted); err == nil {
			return ParseResult[T]{Success: true, Data: data}
		}
	}

	_, err := tryParse[T](trimmed)
	return ParseResult[T]{Error: fmt.Sprintf("no parseable JSON found: %v", err)}
}

func tryParse[T any](text string) (T, error) {
	var data T
	err := json.Unmarshal([]byte(text), &data)
	return data, err
}

// extractJSON pulls the first object or array out of surrounding prose.
func extractJSON(text string) string {
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return ""
	}
	rest := text[start:]
	if rest[0] == '{' {
		return objectRegex.FindString(rest)
	}
	return arrayRegex.FindString(rest)
}

// truncate shortens a string for inclusion in error messages.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
