package web

import (
	"net/http"

	"github.com/phrazzld/jtube/internal/domain"
)

type pageData struct {
	Title        string
	DonationURL  string
	FormID       string
	Form         formValues
	ContentTypes []contentTypeOption
	Result       *resultView
	Error        *errorView
}

type formValues struct {
	GameTitle    string
	ContentType  string
	GameGenre    string
	GameLink     string
	DonationLink string
	Language     string
	TargetRegion string
}

type contentTypeOption struct {
	ID       string
	Label    string
	Selected bool
}

type resultView struct {
	Titles      []string
	TitlesText  string
	Description string
	Tags        string
	TagList     []string
	Sources     []domain.GroundingSource
}

type errorView struct {
	Kind        string
	Message     string
	Funding     bool
	DonationURL string
}

func (h *Handler) newPage(formID string, form formValues) pageData {
	selected, err := domain.ParseContentType(form.ContentType)
	if err != nil {
		selected = domain.DefaultContentType
	}
	options := make([]contentTypeOption, 0, len(domain.ContentTypes()))
	for _, ct := range domain.ContentTypes() {
		options = append(options, contentTypeOption{ID: ct.ID(), Label: ct.Label(), Selected: ct == selected})
	}
	return pageData{
		Title:        "Generate",
		FormID:       formID,
		Form:         form,
		ContentTypes: options,
	}
}

func formFromRequest(r *http.Request) formValues {
	return formValues{
		GameTitle:    r.PostFormValue("game_title"),
		ContentType:  r.PostFormValue("content_type"),
		GameGenre:    r.PostFormValue("game_genre"),
		GameLink:     r.PostFormValue("game_link"),
		DonationLink: r.PostFormValue("donation_link"),
		Language:     r.PostFormValue("language"),
		TargetRegion: r.PostFormValue("target_region"),
	}
}

func (f formValues) toDomain() (domain.GenerationRequest, error) {
	ct, err := domain.ParseContentType(f.ContentType)
	if err != nil {
		return domain.GenerationRequest{}, err
	}
	return domain.NewGenerationRequest(
		f.GameTitle, ct, f.GameGenre, f.GameLink, f.DonationLink, f.Language, f.TargetRegion,
	)
}

func newResultView(r *domain.GenerationResult) *resultView {
	return &resultView{
		Titles:      r.Titles,
		TitlesText:  r.TitlesText(),
		Description: r.Description,
		Tags:        r.Tags,
		TagList:     r.TagList(),
		Sources:     r.DisplayedSources(),
	}
}
