package gen

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// GenerateRequest holds the parameters for a single generation call.
type GenerateRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int // 0 uses the configured default
}

// GenerateResponse holds the raw result of a generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// TextGenerator produces raw text from a generative model. Implementations
// bind a concrete provider; callers never see provider types.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// NewTextGenerator builds the provider binding selected by cfg.
// A missing credential is a configuration error reported here, before any
// call is made.
func NewTextGenerator(ctx context.Context, cfg Config, log *zap.Logger) (TextGenerator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	switch cfg.Provider {
	case ProviderGemini:
		return newGeminiGenerator(ctx, cfg, log)
	case ProviderOpenAI:
		return newOpenAIGenerator(cfg, log), nil
	default:
		return nil, ErrUnknownProvider
	}
}

// logCall records one generation call for diagnostics. Transport failures
// and validation failures stay distinguishable here even though callers
// collapse them into a single user-facing message.
func logCall(log *zap.Logger, provider, model string, latencyMs int64, err error) {
	if err != nil {
		log.Warn("generation call failed",
			zap.String("provider", provider),
			zap.String("model", model),
			zap.Int64("latency_ms", latencyMs),
			zap.Error(err),
		)
		return
	}
	log.Debug("generation call",
		zap.String("provider", provider),
		zap.String("model", model),
		zap.Int64("latency_ms", latencyMs),
	)
}
