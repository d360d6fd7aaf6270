package generation

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by the generation package
var (
	// ErrFundingRequired is returned when no credential is configured or the
	// provider reports exhausted quota or rejected credentials
	ErrFundingRequired = errors.New("service unavailable due to lack of funding")

	// ErrGenerationFailed is returned when the provider call fails for any other reason
	ErrGenerationFailed = errors.New("failed to generate content")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// DefaultDonationURL is where users are sent when the service runs out of funding.
const DefaultDonationURL = "https://saweria.co/DragonFroze"

// FallbackFailureMessage is used when an upstream failure carries no message.
const FallbackFailureMessage = "Failed to generate content. Please try again."

// FundingMessage renders the fixed user-facing funding message.
func FundingMessage(donationURL string) string {
	if donationURL == "" {
		donationURL = DefaultDonationURL
	}
	return fmt.Sprintf(
		"JTube is temporarily unavailable because the service has run out of funding. "+
			"Please support it with a donation at %s so generation can be restored.",
		donationURL,
	)
}

// FundingError is returned when generation cannot proceed for lack of funding.
type FundingError struct {
	// Message is the human-readable message shown to the user
	Message string

	// DonationURL is the call-to-action link rendered with the message
	DonationURL string
}

// NewFundingError builds a FundingError carrying the fixed funding message.
func NewFundingError(donationURL string) *FundingError {
	if donationURL == "" {
		donationURL = DefaultDonationURL
	}
	return &FundingError{
		Message:     FundingMessage(donationURL),
		DonationURL: donationURL,
	}
}

func (e *FundingError) Error() string { return e.Message }

// Is makes errors.Is(err, ErrFundingRequired) true for any FundingError.
func (e *FundingError) Is(target error) bool { return target == ErrFundingRequired }

// FailedError is returned when the provider call fails for a reason other than funding.
type FailedError struct {
	// Message is the upstream failure message, or FallbackFailureMessage
	Message string

	// Err is the original failure
	Err error
}

// NewFailedError wraps err, keeping its message verbatim.
func NewFailedError(err error) *FailedError {
	msg := ""
	if err != nil {
		msg = strings.TrimSpace(err.Error())
	}
	if msg == "" {
		msg = FallbackFailureMessage
	}
	return &FailedError{Message: msg, Err: err}
}

func (e *FailedError) Error() string { return e.Message }

func (e *FailedError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrGenerationFailed) true for any FailedError.
func (e *FailedError) Is(target error) bool { return target == ErrGenerationFailed }
