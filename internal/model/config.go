package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the full application configuration.
type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	Tufe   TufeConfig   `yaml:"tufe"`
	LLM    LLMConfig    `yaml:"llm"`
	Output OutputConfig `yaml:"output"`
}

// HTTPConfig controls the outbound HTTP client.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
}

// TufeConfig controls the authoritative index source and its cache.
// There is exactly one source; no fallback provider is configurable.
type TufeConfig struct {
	BaseURL           string        `yaml:"base_url"`
	APIKey            string        `yaml:"api_key"`
	TTL               time.Duration `yaml:"ttl"`
	CacheDir          string        `yaml:"cache_dir"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
}

// LLMConfig controls the optional negotiation-note summarizer.
// It never affects computed amounts.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Config{
		HTTP: HTTPConfig{
			Timeout:      5 * time.Second,
			UserAgent:    "kiracap/0.1 (+https://github.com/ustaoglu/kiracap)",
			MaxBodyBytes: 1 << 20,
		},
		Tufe: TufeConfig{
			BaseURL:           "https://evds2.tcmb.gov.tr/service/kiracap",
			TTL:               24 * time.Hour,
			CacheDir:          filepath.Join(home, ".kiracap", "tufe"),
			RequestsPerSecond: 1,
			Burst:             2,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 600,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
