package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/jtube/internal/api"
	"github.com/phrazzld/jtube/internal/api/middleware"
	"github.com/phrazzld/jtube/internal/config"
	"github.com/phrazzld/jtube/internal/generation"
	"github.com/phrazzld/jtube/internal/metrics"
	"github.com/phrazzld/jtube/internal/platform/gemini"
	"github.com/phrazzld/jtube/internal/web"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	registry  *prometheus.Registry
	metrics   *metrics.Metrics
	generator generation.Generator
	limiter   *middleware.RateLimiter

	apiHandler *api.GenerationHandler
	webHandler *web.Handler
}

// newApplication wires the generator, handlers and instrumentation from cfg.
func newApplication(cfg *config.Config, logger *slog.Logger, opts ...gemini.Option) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)

	classifier := generation.NewClassifier(cfg.Funding.DonationURL, cfg.Funding.Triggers...)
	opts = append([]gemini.Option{gemini.WithClassifier(classifier)}, opts...)

	geminiGenerator, err := gemini.NewGeminiGenerator(logger.With("component", "llm_generator"), cfg.LLM, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	app.generator = metrics.NewInstrumentedGenerator(geminiGenerator, app.metrics)
	logger.Info("LLM generator initialized", "model", cfg.LLM.ModelName)

	if cfg.RateLimit.Enabled {
		app.limiter = middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMinute,
			cfg.RateLimit.Burst,
			app.metrics.RateLimitedTotal.Inc,
		)
	}

	app.apiHandler = api.NewGenerationHandler(app.generator, logger)
	app.webHandler, err = web.NewHandler(app.generator, logger, cfg.Funding.DonationURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize web handler: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
