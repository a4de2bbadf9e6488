package gen

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	genai "google.golang.org/genai"
)

// geminiGenerator binds TextGenerator to the official genai client.
type geminiGenerator struct {
	cli *genai.Client
	cfg Config
	log *zap.Logger
}

func newGeminiGenerator(ctx context.Context, cfg Config, log *zap.Logger) (*geminiGenerator, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &geminiGenerator{cli: cli, cfg: cfg, log: log}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = g.cfg.MaxTokens
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(maxTokens),
	}
	if req.SystemPrompt != "" {
		genCfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.cfg.Model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: req.UserPrompt}}}},
		genCfg,
	)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		logCall(g.log, ProviderGemini, g.cfg.Model, latency, err)
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		logCall(g.log, ProviderGemini, g.cfg.Model, latency, ErrEmptyResponse)
		return nil, ErrEmptyResponse
	}

	logCall(g.log, ProviderGemini, g.cfg.Model, latency, nil)
	return &GenerateResponse{
		Text:      resp.Candidates[0].Content.Parts[0].Text,
		Model:     g.cfg.Model,
		LatencyMs: latency,
	}, nil
}
