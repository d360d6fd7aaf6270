package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/jtube/internal/domain"
	"github.com/phrazzld/jtube/internal/generation"
	"github.com/phrazzld/jtube/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, gen generation.Generator) *Handler {
	t.Helper()
	h, err := NewHandler(gen, nil, "")
	require.NoError(t, err)
	return h
}

func postForm(h *Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Generate(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"form_id":      {uuid.NewString()},
		"game_title":   {"Elden Ring"},
		"content_type": {"Walkthrough"},
	}
}

func TestIndex(t *testing.T) {
	h := newTestHandler(t, mocks.NewMockGeneratorWithDefaultResult())

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Generate - JTube</title>")
	assert.Contains(t, body, `name="form_id"`)
	assert.Contains(t, body, `<option value="Gameplay" selected>Gameplay</option>`)
	assert.Contains(t, body, "Tips &amp; Tricks")
	assert.Contains(t, body, `value="English"`)
	assert.Contains(t, body, generation.DefaultDonationURL)
	assert.Contains(t, body, "Ready to optimize your next viral hit?")
	assert.Equal(t, 9, strings.Count(body, "<option "))
}

func TestGenerateRendersResult(t *testing.T) {
	sources := make([]domain.GroundingSource, 0, 7)
	for i := 0; i < 7; i++ {
		sources = append(sources, domain.GroundingSource{Title: "Source", URI: "https://example.com/" + string(rune('a'+i))})
	}
	gen := mocks.NewMockGeneratorWithResult(&domain.GenerationResult{
		Titles:           []string{"Title One", "Title <Two>"},
		Description:      "Line 1\nLine 2",
		Tags:             "elden ring, , soulslike ",
		GroundingSources: sources,
	})
	h := newTestHandler(t, gen)

	rec := postForm(h, validForm())
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<li>Title One</li>")
	assert.Contains(t, body, "<li>Title &lt;Two&gt;</li>", "titles are escaped")
	assert.Contains(t, body, "data-copy=\"Title One\nTitle &lt;Two&gt;\"")
	assert.Contains(t, body, `<span class="chip">#elden ring</span>`)
	assert.Contains(t, body, `<span class="chip">#soulslike</span>`)
	assert.Equal(t, 2, strings.Count(body, `class="chip"`))
	assert.Equal(t, domain.MaxDisplayedSources, strings.Count(body, "https://example.com/"))
	assert.Contains(t, body, `value="Elden Ring"`, "form keeps submitted values")
	assert.Contains(t, body, `<option value="Walkthrough" selected>`)

	req, ok := gen.LastRequest()
	require.True(t, ok)
	assert.Equal(t, domain.ContentTypeWalkthrough, req.ContentType)
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name       string
		form       func() url.Values
		genErr     error
		wantStatus int
		wantBody   []string
		notInBody  []string
		wantCalls  int
	}{
		{
			name: "blank title",
			form: func() url.Values {
				v := validForm()
				v.Set("game_title", "   ")
				return v
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{"Game title is required."},
		},
		{
			name: "unknown content type",
			form: func() url.Values {
				v := validForm()
				v.Set("content_type", "Unboxing")
				return v
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{"Please choose a content type"},
		},
		{
			name:       "funding required",
			form:       validForm,
			genErr:     generation.NewFundingError("https://ko-fi.com/jtube"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody: []string{
				`data-kind="funding_required"`,
				`href="https://ko-fi.com/jtube"`,
				"Donate to restore JTube",
			},
			wantCalls: 1,
		},
		{
			name:       "generation failed",
			form:       validForm,
			genErr:     generation.NewFailedError(errors.New("socket hang up")),
			wantStatus: http.StatusBadGateway,
			wantBody:   []string{`data-kind="generation_failed"`, "socket hang up"},
			notInBody:  []string{"Donate to restore JTube"},
			wantCalls:  1,
		},
		{
			name:       "unexpected error",
			form:       validForm,
			genErr:     errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{generation.FallbackFailureMessage},
			notInBody:  []string{"boom"},
			wantCalls:  1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := mocks.NewMockGeneratorWithError(tc.genErr)
			h := newTestHandler(t, gen)

			rec := postForm(h, tc.form())
			assert.Equal(t, tc.wantStatus, rec.Code)

			body := rec.Body.String()
			for _, s := range tc.wantBody {
				assert.Contains(t, body, s)
			}
			for _, s := range tc.notInBody {
				assert.NotContains(t, body, s)
			}
			assert.Contains(t, body, "Ready to optimize", "no result is shown on failure")
			assert.Equal(t, tc.wantCalls, gen.GenerateCallCount())
		})
	}
}

func TestGenerateRejectsResubmitWhileLoading(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	gen := &mocks.MockGenerator{
		GenerateFn: func(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
			once.Do(func() { close(started) })
			<-release
			return &domain.GenerationResult{Titles: []string{"done"}}, nil
		},
	}
	h := newTestHandler(t, gen)
	form := validForm()

	var first *httptest.ResponseRecorder
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = postForm(h, form)
	}()

	<-started
	second := postForm(h, form)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), BusyMessage)

	// A different form instance is independent.
	other := validForm()
	go func() { close(release) }()
	third := postForm(h, other)
	assert.Equal(t, http.StatusOK, third.Code)

	wg.Wait()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 2, gen.GenerateCallCount())
}

func TestGenerateAssignsFormIDWhenMissing(t *testing.T) {
	h := newTestHandler(t, mocks.NewMockGeneratorWithDefaultResult())

	form := validForm()
	form.Set("form_id", "not-a-uuid")
	rec := postForm(h, form)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `value="not-a-uuid"`)
}

func TestRateLimitedRendersForm(t *testing.T) {
	gen := mocks.NewMockGeneratorWithDefaultResult()
	h := newTestHandler(t, gen)

	form := validForm()
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.RateLimited(rec, req)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, `data-kind="rate_limited"`)
	assert.Contains(t, body, RateLimitedMessage)
	assert.Contains(t, body, `value="Elden Ring"`)
	assert.Contains(t, body, `value="`+form.Get("form_id")+`"`, "form keeps its identity")
	assert.Contains(t, body, `<option value="Walkthrough" selected>`)
	assert.Zero(t, gen.GenerateCallCount())
}

func TestParseTemplates(t *testing.T) {
	templates, err := parseTemplates(templateFS)
	require.NoError(t, err)
	assert.Contains(t, templates, "index.html")
	assert.NotContains(t, templates, layoutTemplate)
}
