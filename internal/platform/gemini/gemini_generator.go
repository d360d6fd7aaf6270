package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/jtube/internal/config"
	"github.com/phrazzld/jtube/internal/domain"
	"github.com/phrazzld/jtube/internal/generation"
	"github.com/phrazzld/jtube/internal/platform/logger"
	"github.com/phrazzld/jtube/internal/redact"
	"google.golang.org/genai"
)

// Temperature is the sampling temperature used for every generation.
const Temperature float32 = 0.7

// ContentGenerator is the subset of the genai Models service used by the generator.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// ClientFactory creates a ContentGenerator for an API key.
type ClientFactory func(ctx context.Context, apiKey string) (ContentGenerator, error)

// NewGenAIClient is the default ClientFactory backed by the Gemini API.
func NewGenAIClient(ctx context.Context, apiKey string) (ContentGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API with Google Search grounding.
type GeminiGenerator struct {
	logger     *slog.Logger
	model      string
	keys       KeySource
	newClient  ClientFactory
	classifier *generation.Classifier
	prompts    *generation.PromptBuilder
}

// Option configures a GeminiGenerator.
type Option func(*GeminiGenerator)

// WithKeySource overrides how the API credential is resolved.
func WithKeySource(ks KeySource) Option {
	return func(g *GeminiGenerator) { g.keys = ks }
}

// WithClientFactory overrides how the Gemini client is created.
func WithClientFactory(f ClientFactory) Option {
	return func(g *GeminiGenerator) { g.newClient = f }
}

// WithClassifier overrides how provider failures are classified.
func WithClassifier(c *generation.Classifier) Option {
	return func(g *GeminiGenerator) { g.classifier = c }
}

// WithPromptBuilder overrides the prompt template.
func WithPromptBuilder(b *generation.PromptBuilder) Option {
	return func(g *GeminiGenerator) { g.prompts = b }
}

// NewGeminiGenerator creates a new instance of GeminiGenerator.
//
// A missing API key is not a construction error: the key is resolved on every
// call, and calls without one fail with a funding error.
func NewGeminiGenerator(logger *slog.Logger, cfg config.LLMConfig, opts ...Option) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	g := &GeminiGenerator{
		logger:     logger,
		model:      cfg.ModelName,
		keys:       EnvKeySource(cfg.GeminiAPIKey),
		newClient:  NewGenAIClient,
		classifier: generation.NewClassifier(""),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.prompts == nil {
		if cfg.PromptTemplatePath != "" {
			b, err := generation.NewPromptBuilderFromFile(cfg.PromptTemplatePath)
			if err != nil {
				return nil, err
			}
			g.prompts = b
		} else {
			g.prompts = generation.NewPromptBuilder()
		}
	}

	return g, nil
}

// Generate produces titles, a description, tags and grounding sources for req.
//
// Errors are a domain validation error, a generation.FundingError or a
// generation.FailedError. Parsing never fails: sections missing from the
// model output come back empty.
func (g *GeminiGenerator) Generate(
	ctx context.Context,
	req domain.GenerationRequest,
) (*domain.GenerationResult, error) {
	log := logger.FromContextOrDefault(ctx, g.logger).With(
		"game_title", req.GameTitle,
		"content_type", req.ContentType.ID(),
	)

	prompt, err := g.prompts.Build(req)
	if err != nil {
		log.WarnContext(ctx, "rejecting invalid generation request", "error", err)
		return nil, err
	}

	apiKey := g.keys()
	if apiKey == "" {
		log.WarnContext(ctx, "no API credential configured")
		return nil, g.classifier.FundingRequired()
	}

	client, err := g.newClient(ctx, apiKey)
	if err != nil {
		return nil, g.fail(ctx, log, "failed to create Gemini client", err)
	}

	start := time.Now()
	resp, err := client.GenerateContent(ctx, g.model, buildContents(prompt), buildConfig())
	if err != nil {
		return nil, g.fail(ctx, log, "Gemini request failed", err)
	}

	result := generation.ParseResponse(responseText(resp))
	result.GroundingSources = generation.CollectSources(citations(resp))

	log.InfoContext(ctx, "generated SEO content",
		"model", g.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"titles", len(result.Titles),
		"sources", len(result.GroundingSources),
	)

	return &result, nil
}

func (g *GeminiGenerator) fail(ctx context.Context, log *slog.Logger, msg string, err error) error {
	wrapped := g.classifier.Wrap(err)
	log.ErrorContext(ctx, msg,
		"error", redact.Error(err),
		"kind", g.classifier.Classify(err.Error()).String(),
	)
	return wrapped
}

// Ensure GeminiGenerator implements generation.Generator
var _ generation.Generator = (*GeminiGenerator)(nil)
