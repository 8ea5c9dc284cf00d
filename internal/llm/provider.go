package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ustaoglu/kiracap/internal/model"
)

// Provider generates negotiation notes from computed results. Providers
// never see or influence the computation itself; the numbers in the result
// are final before any provider runs.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Summarize turns an increase result into a negotiation note.
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest is the input for note generation.
type SummarizeRequest struct {
	// Result is the computed increase result. Read-only for the provider.
	Result model.IncreaseResult

	// Mode tones the note (calm or assertive). Passed explicitly; never
	// read from ambient state.
	Mode model.NegotiationMode

	// Model overrides the configured model when non-empty.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// SummarizeResponse is the generated note.
type SummarizeResponse struct {
	Note       string
	Model      string
	TokensUsed int
}

// Config holds provider configuration.
type Config struct {
	Provider  string // "openai" or "" (disabled)
	Model     string
	APIKey    string
	BaseURL   string // custom endpoints (OpenAI-compatible servers)
	Timeout   int    // seconds
	MaxTokens int
}

// NewProvider creates a provider from configuration. An empty provider
// name means the feature is disabled and returns nil, nil.
func NewProvider(cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIProvider(cfg)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", cfg.Provider)
	}
}

// ConfigFromModel converts the application config section.
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:  mc.Provider,
		Model:     mc.Model,
		APIKey:    mc.APIKey,
		BaseURL:   mc.BaseURL,
		Timeout:   mc.Timeout,
		MaxTokens: mc.MaxTokens,
	}
}
