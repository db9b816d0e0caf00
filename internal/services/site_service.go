package services

import (
	"aicloudmania.dev/internal/content"
	"aicloudmania.dev/internal/models"
)

// SiteService exposes the static page content
type SiteService struct {
	store *content.Store
}

// NewSiteService creates a new SiteService
func NewSiteService(store *content.Store) *SiteService {
	return &SiteService{store: store}
}

// Snapshot returns the content currently being served.
func (s *SiteService) Snapshot() *models.Site {
	return s.store.Get()
}

// Services returns the consulting offerings
func (s *SiteService) Services() []models.Service {
	return s.store.Get().Services
}

// Team returns the team members of the about section
func (s *SiteService) Team() []models.TeamMember {
	return s.store.Get().About.Team
}
