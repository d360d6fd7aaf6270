package api

import (
	"github.com/phrazzld/jtube/internal/domain"
)

// GenerateRequest defines the payload for POST /api/generate.
// ContentType accepts either a content type ID ("TipsAndTricks") or its label ("Tips & Tricks").
type GenerateRequest struct {
	GameTitle    string `json:"game_title"    validate:"required"`
	ContentType  string `json:"content_type"  validate:"required"`
	GameGenre    string `json:"game_genre"`
	GameLink     string `json:"game_link"     validate:"omitempty,url"`
	DonationLink string `json:"donation_link" validate:"omitempty,url"`
	Language     string `json:"language"`
	TargetRegion string `json:"target_region"`
}

// ToDomain converts the payload into a validated domain request.
func (r GenerateRequest) ToDomain() (domain.GenerationRequest, error) {
	ct, err := domain.ParseContentType(r.ContentType)
	if err != nil {
		return domain.GenerationRequest{}, err
	}
	return domain.NewGenerationRequest(
		r.GameTitle, ct, r.GameGenre, r.GameLink, r.DonationLink, r.Language, r.TargetRegion,
	)
}

// SourceResponse is a single grounding citation.
type SourceResponse struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// GenerateResponse defines the successful response for POST /api/generate.
type GenerateResponse struct {
	Titles      []string `json:"titles"`
	Description string   `json:"description"`

	// Tags is the comma-separated tag list exactly as generated
	Tags string `json:"tags"`

	// TagList is Tags split on commas with blanks removed
	TagList []string `json:"tag_list"`

	// GroundingSources holds every search citation; clients typically show the first few
	GroundingSources []SourceResponse `json:"grounding_sources"`

	TraceID string `json:"trace_id,omitempty"`
}

// ContentTypeResponse describes one selectable content type.
type ContentTypeResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ContentTypesResponse defines the response for GET /api/content-types.
type ContentTypesResponse struct {
	ContentTypes []ContentTypeResponse `json:"content_types"`
	Default      string                `json:"default"`
}

func resultToResponse(result *domain.GenerationResult, traceID string) GenerateResponse {
	sources := make([]SourceResponse, 0, len(result.GroundingSources))
	for _, s := range result.GroundingSources {
		sources = append(sources, SourceResponse{Title: s.Title, URI: s.URI})
	}
	titles := result.Titles
	if titles == nil {
		titles = []string{}
	}
	return GenerateResponse{
		Titles:           titles,
		Description:      result.Description,
		Tags:             result.Tags,
		TagList:          result.TagList(),
		GroundingSources: sources,
		TraceID:          traceID,
	}
}
