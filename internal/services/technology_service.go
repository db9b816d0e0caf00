package services

import (
	"errors"
	"fmt"

	"aicloudmania.dev/internal/content"
	"aicloudmania.dev/internal/metrics"
	"aicloudmania.dev/internal/models"
)

// ErrUnknownCategory is returned when filtering by a category that does not exist.
var ErrUnknownCategory = errors.New("unknown technology category")

// TechnologyService filters the technology showcase
type TechnologyService struct {
	store *content.Store
}

// NewTechnologyService creates a new TechnologyService
func NewTechnologyService(store *content.Store) *TechnologyService {
	return &TechnologyService{store: store}
}

// Filter returns the technologies in category, keeping the authored order.
// An empty category is treated as "all". The result is recomputed on every
// call and never cached.
func (s *TechnologyService) Filter(category string) ([]models.Technology, error) {
	if category == "" {
		category = models.CategoryAll
	}
	site := s.store.Get()
	if site.CategoryLabel(category) == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	metrics.RecordTechnologyFilter(category)

	if category == models.CategoryAll {
		return site.Technologies, nil
	}
	filtered := make([]models.Technology, 0, len(site.Technologies))
	for _, t := range site.Technologies {
		if t.Category == category {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}
