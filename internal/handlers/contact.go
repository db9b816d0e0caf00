package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"aicloudmania.dev/internal/contact"
	"aicloudmania.dev/internal/log"
	"aicloudmania.dev/internal/models"
	"aicloudmania.dev/internal/services"
	"aicloudmania.dev/internal/views"
)

const maxContactBody = 64 << 10

// ContactHandler accepts contact form submissions
type ContactHandler struct {
	contactService *services.ContactService
	page           *PageHandler
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService, page *PageHandler) *ContactHandler {
	return &ContactHandler{contactService: cs, page: page}
}

type contactOptionsResponse struct {
	Services []models.Option `json:"services"`
	Budgets  []models.Option `json:"budgets"`
}

type contactResponse struct {
	Status      string `json:"status"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type deliveryErrorResponse struct {
	Error       string `json:"error"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type validationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// Options handles GET /api/contact/options
func (h *ContactHandler) Options(w http.ResponseWriter, r *http.Request) {
	opts := h.contactService.Options()
	respondJSON(w, http.StatusOK, contactOptionsResponse{Services: opts.Services, Budgets: opts.Budgets})
}

// SubmitForm handles POST /contact from the plain HTML form. Success
// redirects back to the page so a reload does not resubmit.
func (h *ContactHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	req := models.ContactRequest{
		Name:    r.PostForm.Get(contact.FieldName),
		Email:   r.PostForm.Get(contact.FieldEmail),
		Phone:   r.PostForm.Get(contact.FieldPhone),
		Company: r.PostForm.Get(contact.FieldCompany),
		Service: r.PostForm.Get(contact.FieldService),
		Budget:  r.PostForm.Get(contact.FieldBudget),
		Message: r.PostForm.Get(contact.FieldMessage),
	}

	_, err := h.contactService.Submit(r.Context(), req)
	if err == nil {
		http.Redirect(w, r, "/?sent=1#contact", http.StatusSeeOther)
		return
	}

	form := views.ContactForm{Values: req}
	status := http.StatusBadGateway
	var verr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		form.Errors = verr.Fields
		status = http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrDeliveryFailed):
		form.Notice = views.ErrorNotice()
	default:
		h.logUnexpected(r, err)
		form.Notice = views.ErrorNotice()
		status = http.StatusInternalServerError
	}
	h.page.render(w, r, status, r.URL.Query().Get("category"), form)
}

// SubmitJSON handles POST /api/contact used by the page script.
func (h *ContactHandler) SubmitJSON(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody))
	if err := dec.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	receipt, err := h.contactService.Submit(r.Context(), req)
	if err == nil {
		n := views.SuccessNotice()
		respondJSON(w, http.StatusOK, contactResponse{
			Status:      n.Kind,
			ID:          receipt.ID,
			Title:       n.Title,
			Description: n.Description,
		})
		return
	}

	var verr *contact.ValidationError
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Error:  "Validation failed",
			Fields: verr.Fields,
		})
		return
	}

	status := http.StatusBadGateway
	if !errors.Is(err, services.ErrDeliveryFailed) {
		h.logUnexpected(r, err)
		status = http.StatusInternalServerError
	}
	n := views.ErrorNotice()
	respondJSON(w, status, deliveryErrorResponse{
		Error:       http.StatusText(status),
		Title:       n.Title,
		Description: n.Description,
	})
}

func (h *ContactHandler) logUnexpected(r *http.Request, err error) {
	logger := log.WithComponentFromContext(r.Context(), "contact")
	logger.Error().Err(err).Msg("unexpected contact error")
}
