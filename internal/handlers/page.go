package handlers

import (
	"bytes"
	"net/http"

	"aicloudmania.dev/internal/log"
	"aicloudmania.dev/internal/models"
	"aicloudmania.dev/internal/services"
	"aicloudmania.dev/internal/views"
)

// PageHandler renders the landing page
type PageHandler struct {
	site         *services.SiteService
	technologies *services.TechnologyService
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(site *services.SiteService, tech *services.TechnologyService) *PageHandler {
	return &PageHandler{site: site, technologies: tech}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	var form views.ContactForm
	if r.URL.Query().Get("sent") == "1" {
		form.Notice = views.SuccessNotice()
	}
	h.render(w, r, http.StatusOK, r.URL.Query().Get("category"), form)
}

// render writes the page with the given status. An unknown category
// falls back to showing every technology.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, category string, form views.ContactForm) {
	logger := log.WithComponentFromContext(r.Context(), "page")

	if category == "" {
		category = models.CategoryAll
	}
	techs, err := h.technologies.Filter(category)
	if err != nil {
		logger.Debug().Err(err).Str(log.FieldCategory, category).Msg("falling back to all technologies")
		category = models.CategoryAll
		techs, err = h.technologies.Filter(category)
		if err != nil {
			logger.Error().Err(err).Msg("content has no technologies to show")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	var buf bytes.Buffer
	err = views.Render(&buf, views.PageData{
		Site:         h.site.Snapshot(),
		Category:     category,
		Technologies: techs,
		Form:         form,
	})
	if err != nil {
		logger.Error().Err(err).Msg("render page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
