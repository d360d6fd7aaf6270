package domain

import (
	"fmt"
	"strings"
)

// ContentType is the kind of gameplay video being described. Its string
// value is the human-readable label that is embedded in the prompt.
type ContentType string

// Possible content type values
const (
	ContentTypeNoCommentary  ContentType = "No Commentary"
	ContentTypeWalkthrough   ContentType = "Walkthrough"
	ContentTypeGameplay      ContentType = "Gameplay"
	ContentTypeFullGame      ContentType = "Full Game"
	ContentTypeStoryMode     ContentType = "Story Mode"
	ContentTypeTipsAndTricks ContentType = "Tips & Tricks"
	ContentTypeHighlights    ContentType = "Highlights"
	ContentTypeSpeedrun      ContentType = "Speedrun"
	ContentTypeOther         ContentType = "Other gameplay-based formats"
)

// DefaultContentType is preselected in the input form.
const DefaultContentType = ContentTypeGameplay

// contentTypeIDs maps stable identifiers to content types, in form order.
var contentTypeIDs = []struct {
	id string
	ct ContentType
}{
	{"NoCommentary", ContentTypeNoCommentary},
	{"Walkthrough", ContentTypeWalkthrough},
	{"Gameplay", ContentTypeGameplay},
	{"FullGame", ContentTypeFullGame},
	{"StoryMode", ContentTypeStoryMode},
	{"TipsAndTricks", ContentTypeTipsAndTricks},
	{"Highlights", ContentTypeHighlights},
	{"Speedrun", ContentTypeSpeedrun},
	{"Other", ContentTypeOther},
}

// ContentTypes returns all content types in the order they are offered to users.
func ContentTypes() []ContentType {
	out := make([]ContentType, 0, len(contentTypeIDs))
	for _, c := range contentTypeIDs {
		out = append(out, c.ct)
	}
	return out
}

// ID returns the stable identifier of the content type (e.g. "TipsAndTricks"),
// or an empty string for an unknown value.
func (c ContentType) ID() string {
	for _, e := range contentTypeIDs {
		if e.ct == c {
			return e.id
		}
	}
	return ""
}

// Label returns the human-readable label of the content type.
func (c ContentType) Label() string {
	return string(c)
}

// IsValid reports whether c is one of the known content types.
func (c ContentType) IsValid() bool {
	return c.ID() != ""
}

// ParseContentType accepts either the identifier ("TipsAndTricks") or the
// label ("Tips & Tricks") of a content type, case-insensitively.
func ParseContentType(s string) (ContentType, error) {
	s = strings.TrimSpace(s)
	for _, e := range contentTypeIDs {
		if strings.EqualFold(s, e.id) || strings.EqualFold(s, string(e.ct)) {
			return e.ct, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidContentType, s)
}
