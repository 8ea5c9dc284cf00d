package cli

import (
	"os"

	"github.com/spf13/viper"
	"github.com/ustaoglu/kiracap/internal/calc"
	"github.com/ustaoglu/kiracap/internal/model"
	"github.com/ustaoglu/kiracap/internal/rules"
	"github.com/ustaoglu/kiracap/internal/tufe"
)

// loadConfig builds the effective configuration: defaults, then config
// file / environment, flags apply on top in each command.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("tufe.base_url"); v != "" {
		cfg.Tufe.BaseURL = v
	}
	if v := viper.GetString("tufe.api_key"); v != "" {
		cfg.Tufe.APIKey = v
	}
	if v := os.Getenv("KIRACAP_TUFE_API_KEY"); v != "" {
		cfg.Tufe.APIKey = v
	}
	if v := viper.GetString("tufe.cache_dir"); v != "" {
		cfg.Tufe.CacheDir = v
	}
	if v := viper.GetDuration("tufe.ttl"); v > 0 {
		cfg.Tufe.TTL = v
	}
	if v := viper.GetString("llm.provider"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if viper.IsSet("output.include_footer") {
		cfg.Output.IncludeFooter = viper.GetBool("output.include_footer")
	}
	cfg.Output.Verbose = verbose

	return cfg
}

// newTufeCache wires the cache over the official client and the disk store.
func newTufeCache(cfg *model.Config) *tufe.Cache {
	client := tufe.NewClient(cfg)
	store := tufe.NewStore(cfg.Tufe.CacheDir)
	return tufe.NewCache(client, store, cfg.Tufe.TTL, cfg.HTTP.Timeout)
}

// newCalculator wires the full evaluation stack.
func newCalculator(cfg *model.Config) *calc.Calculator {
	registry := rules.DefaultRegistry()
	segmenter := rules.NewSegmenter(registry)
	return calc.NewCalculator(segmenter, newTufeCache(cfg))
}
