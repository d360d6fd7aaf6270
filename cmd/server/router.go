package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/jtube/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.TraceMiddleware(app.logger))
	r.Use(app.metrics.HTTPMiddleware)
	r.Use(chimw.Recoverer)

	r.Get("/", app.webHandler.Index)
	r.Group(func(r chi.Router) {
		// The form gets the rate-limit error rendered in the page, not as JSON.
		if app.limiter != nil {
			r.Use(app.limiter.MiddlewareFunc(app.webHandler.RateLimited))
		}
		r.Post("/generate", app.webHandler.Generate)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/content-types", app.apiHandler.ContentTypes)
		r.Group(func(r chi.Router) {
			if app.limiter != nil {
				r.Use(app.limiter.Middleware)
			}
			r.Post("/generate", app.apiHandler.Generate)
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
