// Package ai wraps the Anthropic API for the quote tool's language-model
// features: similarity comparison, author identification, category
// suggestion, and quote explanation.
package ai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/time/rate"
)

// DefaultModel is the model used for all quote analysis calls.
const DefaultModel = "claude-sonnet-4-20250514"

// ErrUnavailable is returned when no API credential is configured. Callers
// treat this as "AI features off", never as a user-facing error.
var ErrUnavailable = errors.New("anthropic API key not configured")

// GetModel returns the model to use, checking QUOTES_MODEL first.
func GetModel() string {
	if model := os.Getenv("QUOTES_MODEL"); model != "" {
		return model
	}
	return DefaultModel
}

// Available reports whether an API credential is present, without
// constructing a client. Checked once per operation that wants AI.
func Available() bool {
	key := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	return key != "" && key != "your_api_key_here"
}

// Client is the shared Anthropic client for all AI features.
type Client struct {
	api     *anthropic.Client
	model   string
	retry   RetryConfig
	limiter *rate.Limiter
}

// Config holds client construction options.
type Config struct {
	APIKey string      // if empty, read from ANTHROPIC_API_KEY
	Model  string      // if empty, GetModel()
	Retry  RetryConfig // zero value means DefaultRetryConfig()

	// RequestsPerSecond limits the client-side API call rate.
	// Zero means DefaultRequestsPerSecond.
	RequestsPerSecond float64
}

// DefaultRequestsPerSecond is a conservative client-side rate limit; the
// add flow can fire a burst of per-candidate similarity calls.
const DefaultRequestsPerSecond = 2.0

// NewClient creates a client, or ErrUnavailable when no credential is set.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrUnavailable
	}

	model := cfg.Model
	if model == "" {
		model = GetModel()
	}

	retry := cfg.Retry
	if retry.MaxRetries == 0 && retry.Timeout == 0 {
		retry = DefaultRetryConfig()
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}

	api := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		api:     &api,
		model:   model,
		retry:   retry,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

// Available implements the oracle availability check for a constructed client.
func (c *Client) Available() bool {
	return c != nil && c.api != nil
}

// Complete sends a single-prompt completion request and returns the
// response text. Retries with backoff on transient failures and honors the
// client-side rate limit.
func (c *Client) Complete(ctx context.Context, prompt string, operation string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	var response *anthropic.Message
	err := c.retryWithBackoff(ctx, operation, func(attemptCtx context.Context) error {
		if err := c.limiter.Wait(attemptCtx); err != nil {
			return err
		}
		resp, apiErr := c.api.Messages.New(attemptCtx, anthropic.MessageNewParams{
			Model:     anthropic.Model(c.model),
			MaxTokens: int64(maxTokens),
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
			},
		})
		if apiErr != nil {
			return apiErr
		}
		response = resp
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("anthropic %s call failed: %w", operation, err)
	}

	var text strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return text.String(), nil
}
