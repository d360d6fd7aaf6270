package web

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/phrazzld/jtube/internal/domain"
	"github.com/phrazzld/jtube/internal/generation"
	"github.com/phrazzld/jtube/internal/platform/logger"
	"github.com/phrazzld/jtube/internal/redact"
)

// formTTL bounds how long an idle form keeps its Controller.
const formTTL = 30 * time.Minute

// BusyMessage is shown when a form is resubmitted while its generation is running.
const BusyMessage = "A generation is already running for this form. Please wait for it to finish."

// RateLimitedMessage is shown when a client submits too many forms in a short time.
const RateLimitedMessage = "Too many requests. Please wait a moment and try again."

// Handler serves the form page and processes form submissions.
type Handler struct {
	generator   generation.Generator
	logger      *slog.Logger
	templates   map[string]*template.Template
	controllers *cache.Cache
	donationURL string
}

// NewHandler parses the embedded templates and returns a ready Handler.
func NewHandler(generator generation.Generator, log *slog.Logger, donationURL string) (*Handler, error) {
	templates, err := parseTemplates(templateFS)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	if donationURL == "" {
		donationURL = generation.DefaultDonationURL
	}
	return &Handler{
		generator:   generator,
		logger:      log,
		templates:   templates,
		controllers: cache.New(formTTL, 2*formTTL),
		donationURL: donationURL,
	}, nil
}

// Index handles GET / by rendering an empty form with a fresh form ID.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "index.html", h.newPage(uuid.NewString(), formValues{
		ContentType:  domain.DefaultContentType.ID(),
		Language:     domain.DefaultLanguage,
		TargetRegion: domain.DefaultTargetRegion,
	}))
}

// Generate handles POST /generate.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)

	if err := r.ParseForm(); err != nil {
		log.WarnContext(r.Context(), "failed to parse form", "error", err)
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	form := formFromRequest(r)
	formID := r.PostFormValue("form_id")
	if _, err := uuid.Parse(formID); err != nil {
		formID = uuid.NewString()
	}
	page := h.newPage(formID, form)

	req, err := form.toDomain()
	if err != nil {
		log.DebugContext(r.Context(), "rejected form submission", "error", err)
		page.Error = &errorView{Kind: "invalid_request", Message: validationMessage(err)}
		h.render(w, r, http.StatusBadRequest, "index.html", page)
		return
	}

	snap, err := h.controllerFor(formID).Submit(r.Context(), req)
	switch {
	case errors.Is(err, ErrBusy):
		log.InfoContext(r.Context(), "form resubmitted while loading", "form_id", formID)
		page.Error = &errorView{Kind: "busy", Message: BusyMessage}
		h.render(w, r, http.StatusConflict, "index.html", page)
		return
	case err != nil:
		status, view := h.errorView(err)
		log.WarnContext(r.Context(), "generation failed",
			"form_id", formID,
			"kind", view.Kind,
			"error", redact.Error(err))
		page.Error = view
		h.render(w, r, status, "index.html", page)
		return
	}

	page.Result = newResultView(snap.Result)
	h.render(w, r, http.StatusOK, "index.html", page)
}

// RateLimited renders the submitted form with a "too many requests" error.
// It is the rejection renderer for the rate-limited POST /generate route.
func (h *Handler) RateLimited(w http.ResponseWriter, r *http.Request) {
	var form formValues
	if err := r.ParseForm(); err == nil {
		form = formFromRequest(r)
	}
	formID := r.PostFormValue("form_id")
	if _, err := uuid.Parse(formID); err != nil {
		formID = uuid.NewString()
	}

	h.log(r).WarnContext(r.Context(), "form submission rate limited", "form_id", formID)

	page := h.newPage(formID, form)
	page.Error = &errorView{Kind: "rate_limited", Message: RateLimitedMessage}
	h.render(w, r, http.StatusTooManyRequests, "index.html", page)
}

func (h *Handler) controllerFor(formID string) *Controller {
	if v, ok := h.controllers.Get(formID); ok {
		h.controllers.SetDefault(formID, v)
		return v.(*Controller)
	}
	c := NewController(h.generator)
	if err := h.controllers.Add(formID, c, cache.DefaultExpiration); err != nil {
		if v, ok := h.controllers.Get(formID); ok {
			return v.(*Controller)
		}
	}
	return c
}

func (h *Handler) errorView(err error) (int, *errorView) {
	var funding *generation.FundingError
	var failed *generation.FailedError

	switch {
	case errors.As(err, &funding):
		return http.StatusServiceUnavailable, &errorView{
			Kind:        "funding_required",
			Funding:     true,
			Message:     funding.Message,
			DonationURL: funding.DonationURL,
		}
	case errors.As(err, &failed):
		return http.StatusBadGateway, &errorView{
			Kind:    "generation_failed",
			Message: redact.String(failed.Message),
		}
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, &errorView{Kind: "invalid_request", Message: validationMessage(err)}
	default:
		return http.StatusInternalServerError, &errorView{
			Kind:    "internal",
			Message: generation.FallbackFailureMessage,
		}
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), h.logger)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyGameTitle):
		return "Game title is required."
	case errors.Is(err, domain.ErrInvalidContentType):
		return "Please choose a content type from the list."
	default:
		return "Please check the links you entered. They must be full URLs."
	}
}
