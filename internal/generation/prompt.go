package generation

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"github.com/phrazzld/jtube/internal/domain"
)

// Literal section headers of the mandated output template.
const (
	TitlesHeader      = "AI-Generated YouTube Titles:"
	DescriptionHeader = "YouTube Description (Ready to Copy):"
	TagsHeader        = "SEO Tags:"
)

//go:embed prompt.tmpl
var defaultPromptTemplate string

// promptData represents the data passed to the prompt template
type promptData struct {
	GameTitle    string
	ContentType  string
	GameGenre    string
	GameLink     string
	DonationLink string
	Language     string
	TargetRegion string

	TitlesHeader      string
	DescriptionHeader string
	TagsHeader        string
}

// PromptBuilder renders requests into prompt text.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder returns a builder using the built-in prompt template.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		tmpl: template.Must(template.New("seo").Parse(defaultPromptTemplate)),
	}
}

// NewPromptBuilderFromFile loads and parses a prompt template from path.
// The template receives the same fields as the built-in one.
func NewPromptBuilderFromFile(path string) (*PromptBuilder, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
			ErrInvalidConfig, path, err)
	}

	tmpl, err := template.New("seo").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the prompt for req. Rendering is deterministic: the same
// request always yields the same text.
func (b *PromptBuilder) Build(req domain.GenerationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	data := promptData{
		GameTitle:         req.GameTitle,
		ContentType:       req.ContentType.Label(),
		GameGenre:         req.GameGenre,
		GameLink:          req.GameLink,
		DonationLink:      req.DonationLink,
		Language:          req.LanguageOrDefault(),
		TargetRegion:      req.TargetRegionOrDefault(),
		TitlesHeader:      TitlesHeader,
		DescriptionHeader: DescriptionHeader,
		TagsHeader:        TagsHeader,
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}
