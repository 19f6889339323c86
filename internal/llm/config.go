package llm

import (
	"os"
	"strconv"
)

// Tier identifies one of the model configurations, tried in a fixed
// fallback order by callers that need degradation.
type Tier string

const (
	// TierThinking is the high-reasoning model used for compliance analysis.
	TierThinking Tier = "thinking"
	// TierStandard is the general, tool-capable model used for chat and
	// as the analysis fallback.
	TierStandard Tier = "standard"
	// TierFast is the low-latency model used for parsing and insights.
	TierFast Tier = "fast"
)

// TierConfig holds per-tier model parameters.
type TierConfig struct {
	Model          string
	TimeoutMs      int
	ThinkingBudget int // tokens; 0 disables extended reasoning
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	APIKey   string
	Endpoint string
	LogCalls bool
	Tiers    map[Tier]TierConfig
}

// DefaultConfig returns a Config with the stock model tiers.
func DefaultConfig() Config {
	return Config{
		Endpoint: "https://generativelanguage.googleapis.com/v1beta",
		Tiers: map[Tier]TierConfig{
			TierThinking: {Model: "gemini-3-pro-preview", TimeoutMs: 60000, ThinkingBudget: 2048},
			TierStandard: {Model: "gemini-2.5-flash", TimeoutMs: 30000},
			TierFast:     {Model: "gemini-2.5-flash-lite", TimeoutMs: 15000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values. The API key comes
// from RESISYNC_API_KEY or, failing that, GEMINI_API_KEY.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("RESISYNC_API_KEY")
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if v := os.Getenv("RESISYNC_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("RESISYNC_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	applyTierModelEnv(&cfg, TierThinking, "RESISYNC_LLM_THINKING_MODEL")
	applyTierModelEnv(&cfg, TierStandard, "RESISYNC_LLM_STANDARD_MODEL")
	applyTierModelEnv(&cfg, TierFast, "RESISYNC_LLM_FAST_MODEL")

	applyTierTimeoutEnv(&cfg, TierThinking, "RESISYNC_LLM_THINKING_TIMEOUT_MS")
	applyTierTimeoutEnv(&cfg, TierStandard, "RESISYNC_LLM_STANDARD_TIMEOUT_MS")
	applyTierTimeoutEnv(&cfg, TierFast, "RESISYNC_LLM_FAST_TIMEOUT_MS")

	return cfg
}

// TierTimeout returns the effective timeout in milliseconds for a tier.
func (c Config) TierTimeout(tier Tier) int {
	if tc, ok := c.Tiers[tier]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return 30000
}

func applyTierModelEnv(cfg *Config, tier Tier, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	tc := cfg.Tiers[tier]
	tc.Model = v
	cfg.Tiers[tier] = tc
}

func applyTierTimeoutEnv(cfg *Config, tier Tier, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tiers[tier]
	tc.TimeoutMs = n
	cfg.Tiers[tier] = tc
}
