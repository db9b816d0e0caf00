package handlers

import (
	"errors"
	"net/http"

	"aicloudmania.dev/internal/services"
)

// CatalogHandler serves the read-only content lists
type CatalogHandler struct {
	site         *services.SiteService
	technologies *services.TechnologyService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(site *services.SiteService, tech *services.TechnologyService) *CatalogHandler {
	return &CatalogHandler{site: site, technologies: tech}
}

// ListServices handles GET /api/services
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.site.Services())
}

// ListTeam handles GET /api/team
func (h *CatalogHandler) ListTeam(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.site.Team())
}

// ListTechnologies handles GET /api/technologies?category=
func (h *CatalogHandler) ListTechnologies(w http.ResponseWriter, r *http.Request) {
	techs, err := h.technologies.Filter(r.URL.Query().Get("category"))
	if errors.Is(err, services.ErrUnknownCategory) {
		respondError(w, http.StatusBadRequest, "Unknown category")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusOK, techs)
}
