package services

import (
	"errors"
	"fmt"

	"aicloudmania.dev/internal/content"
	"aicloudmania.dev/internal/models"
)

// ErrProjectNotFound is returned when no case study has the requested ID.
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles case study lookups
type ProjectService struct {
	store *content.Store
}

// NewProjectService creates a new ProjectService
func NewProjectService(store *content.Store) *ProjectService {
	return &ProjectService{store: store}
}

// GetAll returns all case studies in display order
func (s *ProjectService) GetAll() []models.Project {
	return s.store.Get().Projects
}

// GetByID returns a specific case study by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	projects := s.store.Get().Projects
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}
