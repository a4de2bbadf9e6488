package gen

import (
	"os"
	"strconv"
)

// Provider names accepted in configuration.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Temperature bounds for the creativity knob. Values outside the range
// are clamped, not rejected.
const (
	MinTemperature = 0.1
	MaxTemperature = 1.0
)

// Config holds all configuration for the generation subsystem.
type Config struct {
	Provider    string
	Model       string
	APIKey      string
	Endpoint    string // base URL override for OpenAI-compatible services
	TimeoutMs   int
	MaxTokens   int
	ArtAttempts int     // fetch attempts for art before giving up
	Temperature float64 // session default, adjustable at runtime
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		TimeoutMs:   30000,
		MaxTokens:   2048,
		ArtAttempts: 1,
		Temperature: 0.7,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset values. API keys come from the conventional
// provider variables (GEMINI_API_KEY, OPENAI_API_KEY).
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RABBITHOLE_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("RABBITHOLE_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("RABBITHOLE_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("RABBITHOLE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("RABBITHOLE_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("RABBITHOLE_ART_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.ArtAttempts = n
		}
	}
	if v := os.Getenv("RABBITHOLE_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Temperature = ClampTemperature(f)
		}
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	default:
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	return cfg
}

// ClampTemperature bounds a creativity value to the supported range.
func ClampTemperature(v float64) float64 {
	if v < MinTemperature {
		return MinTemperature
	}
	if v > MaxTemperature {
		return MaxTemperature
	}
	return v
}
