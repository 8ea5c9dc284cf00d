package cli

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := loadConfig()
	if !cfg.Output.IncludeFooter {
		t.Error("IncludeFooter default = false, want true")
	}
	if cfg.Tufe.TTL != 24*time.Hour {
		t.Errorf("TTL default = %v, want 24h", cfg.Tufe.TTL)
	}
}

func TestLoadConfig_IncludeFooterFromConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("output.include_footer", false)
	cfg := loadConfig()
	if cfg.Output.IncludeFooter {
		t.Error("IncludeFooter = true, want false from config")
	}

	viper.Set("output.include_footer", true)
	cfg = loadConfig()
	if !cfg.Output.IncludeFooter {
		t.Error("IncludeFooter = false, want true from config")
	}
}

func TestLoadConfig_TufeOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("tufe.base_url", "http://localhost:9999")
	viper.Set("tufe.ttl", "1h")
	cfg := loadConfig()
	if cfg.Tufe.BaseURL != "http://localhost:9999" {
		t.Errorf("BaseURL = %q, want override", cfg.Tufe.BaseURL)
	}
	if cfg.Tufe.TTL != time.Hour {
		t.Errorf("TTL = %v, want 1h", cfg.Tufe.TTL)
	}
}
