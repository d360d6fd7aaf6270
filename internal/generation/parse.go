package generation

import (
	"regexp"
	"strings"

	"github.com/phrazzld/jtube/internal/domain"
)

var (
	titlesHeaderRe      = headerPattern(TitlesHeader)
	descriptionHeaderRe = headerPattern(DescriptionHeader)
	tagsHeaderRe        = headerPattern(TagsHeader)

	// Any of these ends the section before it. The stems match the headers
	// with or without their trailing punctuation.
	boundaryRes = []*regexp.Regexp{
		headerPattern("AI-Generated YouTube Titles"),
		headerPattern("YouTube Description"),
		headerPattern("SEO Tags"),
	}

	enumerationRe = regexp.MustCompile(`^\d+\.\s*`)
)

func headerPattern(h string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(h))
}

// ParseResponse extracts titles, description and tags from the model's text.
// It never fails: a missing section yields its empty value. Grounding
// sources are not part of the text and are left empty.
func ParseResponse(text string) domain.GenerationResult {
	result := domain.GenerationResult{
		Titles:           []string{},
		GroundingSources: []domain.GroundingSource{},
	}

	if seg, ok := section(text, titlesHeaderRe); ok {
		result.Titles = parseTitles(seg)
	}

	if seg, ok := section(text, descriptionHeaderRe); ok {
		result.Description = strings.TrimSpace(seg)
	}

	if seg, ok := section(text, tagsHeaderRe); ok {
		result.Tags = strings.TrimSpace(seg)
	}

	return result
}

// section returns the text after the first match of header, up to the next
// known header or the end of text.
func section(text string, header *regexp.Regexp) (string, bool) {
	loc := header.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	start := loc[1]
	end := len(text)
	rest := text[start:]
	for _, re := range boundaryRes {
		if b := re.FindStringIndex(rest); b != nil && start+b[0] < end {
			end = start + b[0]
		}
	}

	return text[start:end], true
}

func parseTitles(seg string) []string {
	lines := strings.Split(seg, "\n")
	titles := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(enumerationRe.ReplaceAllString(line, ""))
		if line != "" {
			titles = append(titles, line)
		}
	}
	return titles
}

// Citation is a provider-neutral search citation.
type Citation struct {
	Title string
	URI   string
}

// CollectSources maps citations to grounding sources, defaulting a missing
// title to "Source" and dropping citations without a URI. Order is preserved.
func CollectSources(citations []Citation) []domain.GroundingSource {
	sources := make([]domain.GroundingSource, 0, len(citations))
	for _, c := range citations {
		if c.URI == "" {
			continue
		}
		title := c.Title
		if title == "" {
			title = "Source"
		}
		sources = append(sources, domain.GroundingSource{Title: title, URI: c.URI})
	}
	return sources
}
