package generation

import "strings"

// Kind is the user-facing category of a generation failure.
type Kind int

const (
	// KindGenerationFailed covers every failure that is not a funding problem.
	KindGenerationFailed Kind = iota
	// KindFundingRequired covers quota exhaustion and rejected credentials.
	KindFundingRequired
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFundingRequired:
		return "funding_required"
	default:
		return "generation_failed"
	}
}

// DefaultFundingTriggers are the substrings of a failure's text that mark it as
// a funding problem: resource exhaustion, HTTP 429/403/401, or an invalid key.
var DefaultFundingTriggers = []string{
	"RESOURCE_EXHAUSTED",
	"429",
	"403",
	"401",
	"API key not valid",
	"API_KEY_INVALID",
	"invalid api key",
}

// Classifier maps raw failure text onto a Kind. The trigger set is data so it
// can be tuned from configuration.
type Classifier struct {
	triggers    []string
	donationURL string
}

// NewClassifier creates a Classifier. With no triggers, DefaultFundingTriggers is used.
func NewClassifier(donationURL string, triggers ...string) *Classifier {
	if len(triggers) == 0 {
		triggers = DefaultFundingTriggers
	}
	lowered := make([]string, 0, len(triggers))
	for _, t := range triggers {
		if t = strings.TrimSpace(t); t != "" {
			lowered = append(lowered, strings.ToLower(t))
		}
	}
	if donationURL == "" {
		donationURL = DefaultDonationURL
	}
	return &Classifier{triggers: lowered, donationURL: donationURL}
}

// Classify reports the kind of a failure from its textual representation.
// Matching is case-insensitive.
func (c *Classifier) Classify(raw string) Kind {
	lower := strings.ToLower(raw)
	for _, t := range c.triggers {
		if strings.Contains(lower, t) {
			return KindFundingRequired
		}
	}
	return KindGenerationFailed
}

// Wrap converts a provider failure into a FundingError or a FailedError.
// A nil error stays nil.
func (c *Classifier) Wrap(err error) error {
	if err == nil {
		return nil
	}
	if c.Classify(err.Error()) == KindFundingRequired {
		return NewFundingError(c.donationURL)
	}
	return NewFailedError(err)
}

// FundingRequired returns the error used when no credential is configured.
func (c *Classifier) FundingRequired() error {
	return NewFundingError(c.donationURL)
}

// DonationURL returns the donation link carried by funding errors.
func (c *Classifier) DonationURL() string {
	return c.donationURL
}
