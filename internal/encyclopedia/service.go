package encyclopedia

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rabbithole/internal/gen"
)

// Service is the content generation client: four operations against the
// generation backend, each returning a validated typed result.
//
// CheckAmbiguity is deliberately fail-open: any transport or validation
// failure degrades to "not ambiguous" so a lookup can proceed as a plain
// definition. The other operations propagate their failures.
type Service interface {
	CheckAmbiguity(ctx context.Context, topic string, temperature float64) *Ambiguity
	GenerateDefinition(ctx context.Context, topic string, temperature float64) (*Definition, error)
	GenerateComparison(ctx context.Context, topicA, topicB string, temperature float64) (*Comparison, error)
	GenerateArt(ctx context.Context, topic string) (*Art, error)
}

type service struct {
	gen         gen.TextGenerator
	log         *zap.Logger
	artAttempts int
}

// NewService creates a Service backed by a text generator. artAttempts
// is the art fetch budget; values below 1 are raised to 1.
func NewService(g gen.TextGenerator, log *zap.Logger, artAttempts int) Service {
	if log == nil {
		log = zap.NewNop()
	}
	if artAttempts < 1 {
		artAttempts = 1
	}
	return &service{gen: g, log: log, artAttempts: artAttempts}
}

// contentError normalizes any per-call failure into the single message
// surfaced to the user. The wrapped cause keeps transport and validation
// failures distinguishable for diagnostics.
func contentError(topic string, err error) error {
	return fmt.Errorf("could not generate content for %q: %w", topic, err)
}

func (s *service) CheckAmbiguity(ctx context.Context, topic string, temperature float64) *Ambiguity {
	resp, err := s.gen.Generate(ctx, gen.GenerateRequest{
		SystemPrompt: buildAmbiguitySystemPrompt(),
		UserPrompt:   buildAmbiguityUserPrompt(topic),
		Temperature:  gen.ClampTemperature(temperature),
	})
	if err != nil {
		s.log.Debug("ambiguity check failed open", zap.String("topic", topic), zap.Error(err))
		return &Ambiguity{IsAmbiguous: false}
	}

	result, err := DecodeObject(resp.Text, validateAmbiguity)
	if err != nil {
		s.log.Debug("ambiguity check failed open", zap.String("topic", topic), zap.Error(err))
		return &Ambiguity{IsAmbiguous: false}
	}
	if !result.IsAmbiguous {
		result.Meanings = nil
	}
	return &result
}

func (s *service) GenerateDefinition(ctx context.Context, topic string, temperature float64) (*Definition, error) {
	resp, err := s.gen.Generate(ctx, gen.GenerateRequest{
		SystemPrompt: buildDefinitionSystemPrompt(),
		UserPrompt:   buildDefinitionUserPrompt(topic),
		Temperature:  gen.ClampTemperature(temperature),
	})
	if err != nil {
		return nil, contentError(topic, err)
	}

	result, err := DecodeObject(resp.Text, validateDefinition)
	if err != nil {
		s.log.Warn("definition payload rejected", zap.String("topic", topic), zap.Error(err))
		return nil, contentError(topic, err)
	}
	return &result, nil
}

func (s *service) GenerateComparison(ctx context.Context, topicA, topicB string, temperature float64) (*Comparison, error) {
	composite := topicA + " / " + topicB
	resp, err := s.gen.Generate(ctx, gen.GenerateRequest{
		SystemPrompt: buildComparisonSystemPrompt(),
		UserPrompt:   buildComparisonUserPrompt(topicA, topicB),
		Temperature:  gen.ClampTemperature(temperature),
	})
	if err != nil {
		return nil, contentError(composite, err)
	}

	result, err := DecodeObject(resp.Text, validateComparison)
	if err != nil {
		s.log.Warn("comparison payload rejected",
			zap.String("topic_a", topicA), zap.String("topic_b", topicB), zap.Error(err))
		return nil, contentError(composite, err)
	}
	result.TopicA = topicA
	result.TopicB = topicB
	return &result, nil
}

func (s *service) GenerateArt(ctx context.Context, topic string) (*Art, error) {
	var lastErr error
	for i := 0; i < s.artAttempts; i++ {
		resp, err := s.gen.Generate(ctx, gen.GenerateRequest{
			SystemPrompt: buildArtSystemPrompt(),
			UserPrompt:   buildArtUserPrompt(topic),
			Temperature:  gen.MaxTemperature, // art wants variety
		})
		if err != nil {
			lastErr = err
		} else if result, derr := DecodeObject(resp.Text, validateArt); derr != nil {
			lastErr = derr
		} else {
			return &result, nil
		}

		if ctx.Err() != nil {
			break
		}
	}
	s.log.Debug("art generation exhausted",
		zap.String("topic", topic), zap.Int("attempts", s.artAttempts), zap.Error(lastErr))
	return nil, contentError(topic, lastErr)
}
