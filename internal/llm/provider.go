// Package llm is the optional language-model collaborator. Every feature here
// has a rule-based fallback; a nil Generator, a provider error or a timeout
// all degrade to that fallback and never fail an analysis.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnavailable is returned when no generator is configured
var ErrUnavailable = errors.New("llm unavailable")

// Generator is the single capability the pipeline depends on
type Generator interface {
	// Name returns the provider name
	Name() string

	// Generate returns the model's completion for a system and user prompt
	Generate(ctx context.Context, system, prompt string) (*Response, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// Response is a completed generation
type Response struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout bounds a single generation
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 1000,
	}
}

const (
	defaultMaxTokens = 1000
	temperature      = 0.3
)

func (c Config) timeout(fallback time.Duration) time.Duration {
	if c.Timeout <= 0 {
		return fallback
	}
	return time.Duration(c.Timeout) * time.Second
}

func (c Config) maxTokens() int {
	if c.MaxTokens <= 0 {
		return defaultMaxTokens
	}
	return c.MaxTokens
}

// call runs one bounded generation. A nil generator yields ErrUnavailable.
func call(ctx context.Context, gen Generator, timeout time.Duration, system, prompt string) (string, error) {
	if gen == nil {
		return "", ErrUnavailable
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := gen.Generate(ctx, system, prompt)
	if err != nil {
		return "", fmt.Errorf("%s generate: %w", gen.Name(), err)
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%s generate: empty response", gen.Name())
	}
	return text, nil
}
