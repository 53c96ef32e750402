package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Completer is the one call shape every rewrite provider hides behind.
// Implementations differ only in endpoint, auth and response field layout.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

var (
	// ErrNoAPIKey means no key was configured for the selected provider.
	ErrNoAPIKey = errors.New("missing api key for provider")
	// ErrUnknownProvider means the provider identifier is not one of ours.
	ErrUnknownProvider = errors.New("unknown provider")
)

// ProviderError carries an upstream non-2xx response.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s api error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

// TransientError wraps a network-level failure (timeout, connection reset).
// Callers may retry once.
type TransientError struct {
	Provider string
	Err      error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// New returns the client for a provider identifier. The key is resolved by
// the caller (per-session override or process config).
func New(provider, apiKey string) (Completer, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoAPIKey, provider)
	}
	switch provider {
	case "openai":
		return newOpenAIClient(apiKey), nil
	case "anthropic":
		return newAnthropicClient(apiKey), nil
	case "deepseek":
		return newDeepSeekClient(apiKey), nil
	case "perplexity":
		return newPerplexityClient(apiKey), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
}
