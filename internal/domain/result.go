package domain

import "strings"

// MaxDisplayedSources is how many grounding sources the results view shows.
const MaxDisplayedSources = 5

// GroundingSource is a web citation the model used to ground its answer.
// URI is never empty; citations without one are dropped while parsing.
type GroundingSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// GenerationResult is the SEO content generated for one request. It is
// produced once per successful generation and replaced wholesale by the next.
type GenerationResult struct {
	// Titles are the suggested video titles, in the order the model listed them
	Titles []string `json:"titles"`

	// Description is the ready-to-copy description block, internal formatting preserved
	Description string `json:"description"`

	// Tags is the raw comma-separated tag list as returned by the model
	Tags string `json:"tags"`

	// GroundingSources are the search citations, in response order
	GroundingSources []GroundingSource `json:"grounding_sources"`
}

// TagList splits the raw tag string on commas, trimming each tag and
// dropping empty ones.
func (r GenerationResult) TagList() []string {
	return SplitTags(r.Tags)
}

// SplitTags splits a comma-separated tag string into trimmed, non-empty tags.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// TitlesText serializes the titles for the clipboard, one per line.
func (r GenerationResult) TitlesText() string {
	return strings.Join(r.Titles, "\n")
}

// DisplayedSources returns at most MaxDisplayedSources grounding sources.
func (r GenerationResult) DisplayedSources() []GroundingSource {
	if len(r.GroundingSources) <= MaxDisplayedSources {
		return r.GroundingSources
	}
	return r.GroundingSources[:MaxDisplayedSources]
}

// IsEmpty reports whether the model produced none of the three sections.
func (r GenerationResult) IsEmpty() bool {
	return len(r.Titles) == 0 && r.Description == "" && r.Tags == ""
}
