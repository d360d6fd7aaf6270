package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/jtube/internal/api/shared"
	"github.com/phrazzld/jtube/internal/domain"
	"github.com/phrazzld/jtube/internal/generation"
	"github.com/phrazzld/jtube/internal/platform/logger"
)

// GenerationHandler handles SEO generation HTTP requests
type GenerationHandler struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewGenerationHandler creates a new GenerationHandler
func NewGenerationHandler(generator generation.Generator, log *slog.Logger) *GenerationHandler {
	if log == nil {
		log = slog.Default()
	}
	return &GenerationHandler{
		generator: generator,
		logger:    log,
	}
}

// Generate handles POST /api/generate requests
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var payload GenerateRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := shared.ValidateRequest(&payload); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, err := payload.ToDomain()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.generator.Generate(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate content")
		return
	}

	log.InfoContext(r.Context(), "generation completed",
		slog.String("game_title", req.GameTitle),
		slog.String("content_type", req.ContentType.ID()),
		slog.Int("titles", len(result.Titles)),
		slog.Int("sources", len(result.GroundingSources)),
	)

	shared.RespondWithJSON(w, r, http.StatusOK, resultToResponse(result, shared.GetTraceID(r.Context())))
}

// ContentTypes handles GET /api/content-types requests
func (h *GenerationHandler) ContentTypes(w http.ResponseWriter, r *http.Request) {
	types := domain.ContentTypes()
	resp := ContentTypesResponse{
		ContentTypes: make([]ContentTypeResponse, 0, len(types)),
		Default:      domain.DefaultContentType.ID(),
	}
	for _, ct := range types {
		resp.ContentTypes = append(resp.ContentTypes, ContentTypeResponse{ID: ct.ID(), Label: ct.Label()})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
