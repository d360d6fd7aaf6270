package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/jtube/internal/api/shared"
	"github.com/phrazzld/jtube/internal/domain"
	"github.com/phrazzld/jtube/internal/generation"
	"github.com/phrazzld/jtube/internal/redact"
)

// Error kinds reported in the "kind" field of error responses.
const (
	KindFundingRequired  = "funding_required"
	KindGenerationFailed = "generation_failed"
	KindInvalidRequest   = "invalid_request"
	KindInternal         = "internal"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, shared.ErrInvalidJSON),
		errors.Is(err, shared.ErrValidation),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidContentType):
		return http.StatusBadRequest

	// The service cannot serve generations until someone funds the key
	case errors.Is(err, generation.ErrFundingRequired):
		return http.StatusServiceUnavailable

	case errors.Is(err, generation.ErrGenerationFailed):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// ErrorKind returns the machine-readable kind for err.
func ErrorKind(err error) string {
	switch MapErrorToStatusCode(err) {
	case http.StatusBadRequest:
		return KindInvalidRequest
	case http.StatusServiceUnavailable:
		return KindFundingRequired
	case http.StatusBadGateway:
		return KindGenerationFailed
	default:
		return KindInternal
	}
}

// GetSafeErrorMessage returns a user-facing message for err.
//
// Funding errors carry a fixed donation message. Generation failures surface
// the provider's message with credentials redacted.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var funding *generation.FundingError
	var failed *generation.FailedError

	switch {
	case errors.As(err, &funding):
		return funding.Message

	case errors.As(err, &failed):
		return redact.String(failed.Message)

	case errors.Is(err, generation.ErrFundingRequired):
		return generation.FundingMessage(generation.DefaultDonationURL)

	case errors.Is(err, generation.ErrGenerationFailed):
		return generation.FallbackFailureMessage

	case errors.Is(err, shared.ErrInvalidJSON):
		return "Invalid request format"

	case errors.Is(err, domain.ErrEmptyGameTitle):
		return "Game title is required"

	case errors.Is(err, domain.ErrInvalidContentType):
		return "Unknown content type"

	case errors.Is(err, shared.ErrValidation), errors.Is(err, domain.ErrValidation):
		return SanitizeValidationError(err)

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for err. defaultMsg replaces the
// message of errors that would otherwise be reported as unexpected.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}

	opts := []shared.ResponseOption{shared.WithKind(ErrorKind(err))}

	var funding *generation.FundingError
	if errors.As(err, &funding) {
		opts = append(opts, shared.WithDonationURL(funding.DonationURL), shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'GenerateRequest.game_link' Error:Field validation for 'game_link' failed on the 'url' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
