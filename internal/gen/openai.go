package gen

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	"go.uber.org/zap"
)

// openaiGenerator binds TextGenerator to any OpenAI-compatible chat
// completions endpoint. The base URL override also makes this the seam
// for httptest servers in tests.
type openaiGenerator struct {
	cli *openai.Client
	cfg Config
	log *zap.Logger
}

func newOpenAIGenerator(cfg Config, log *zap.Logger) *openaiGenerator {
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(cfg.APIKey),
		openaioption.WithMaxRetries(0),
	}
	if base := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/"); base != "" {
		opts = append(opts, openaioption.WithBaseURL(base))
	}
	cli := openai.NewClient(opts...)
	return &openaiGenerator{cli: &cli, cfg: cfg, log: log}
}

func (g *openaiGenerator) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = g.cfg.MaxTokens
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	messages := []openai.ChatCompletionMessageParamUnion{}
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.UserPrompt))

	completion, err := g.cli.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(g.cfg.Model),
		Messages:            messages,
		Temperature:         openai.Float(req.Temperature),
		MaxCompletionTokens: openai.Int(int64(maxTokens)),
	})
	latency := time.Since(start).Milliseconds()
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		logCall(g.log, ProviderOpenAI, g.cfg.Model, latency, err)
		return nil, err
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		logCall(g.log, ProviderOpenAI, g.cfg.Model, latency, ErrEmptyResponse)
		return nil, ErrEmptyResponse
	}

	logCall(g.log, ProviderOpenAI, g.cfg.Model, latency, nil)
	return &GenerateResponse{
		Text:      completion.Choices[0].Message.Content,
		Model:     completion.Model,
		LatencyMs: latency,
	}, nil
}
