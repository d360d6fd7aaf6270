package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Defaults applied to optional request fields.
const (
	DefaultLanguage     = "English"
	DefaultTargetRegion = "Global"
)

var validate = validator.New()

// GenerationRequest holds the user-supplied parameters of one generation.
// It is built fresh for every submission and never mutated afterwards.
type GenerationRequest struct {
	GameTitle    string      `json:"game_title"              validate:"required"`
	ContentType  ContentType `json:"content_type"            validate:"required"`
	GameGenre    string      `json:"game_genre,omitempty"`
	GameLink     string      `json:"game_link,omitempty"     validate:"omitempty,url"`
	DonationLink string      `json:"donation_link,omitempty" validate:"omitempty,url"`
	Language     string      `json:"language,omitempty"`
	TargetRegion string      `json:"target_region,omitempty"`
}

// NewGenerationRequest trims every field and validates the result.
func NewGenerationRequest(
	gameTitle string,
	contentType ContentType,
	gameGenre, gameLink, donationLink, language, targetRegion string,
) (GenerationRequest, error) {
	req := GenerationRequest{
		GameTitle:    strings.TrimSpace(gameTitle),
		ContentType:  contentType,
		GameGenre:    strings.TrimSpace(gameGenre),
		GameLink:     strings.TrimSpace(gameLink),
		DonationLink: strings.TrimSpace(donationLink),
		Language:     strings.TrimSpace(language),
		TargetRegion: strings.TrimSpace(targetRegion),
	}

	if err := req.Validate(); err != nil {
		return GenerationRequest{}, err
	}

	return req, nil
}

// Validate checks that the request has a non-blank game title and a known
// content type. Links, when present, must be URLs.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.GameTitle) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyGameTitle)
	}

	if !r.ContentType.IsValid() {
		return fmt.Errorf("%w: %w: %q", ErrValidation, ErrInvalidContentType, string(r.ContentType))
	}

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return nil
}

// LanguageOrDefault returns the requested language or DefaultLanguage.
func (r GenerationRequest) LanguageOrDefault() string {
	if strings.TrimSpace(r.Language) == "" {
		return DefaultLanguage
	}
	return r.Language
}

// TargetRegionOrDefault returns the requested region or DefaultTargetRegion.
func (r GenerationRequest) TargetRegionOrDefault() string {
	if strings.TrimSpace(r.TargetRegion) == "" {
		return DefaultTargetRegion
	}
	return r.TargetRegion
}
