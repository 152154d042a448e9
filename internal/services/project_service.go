package services

import (
	"errors"
	"fmt"

	"rolfe.dev/internal/models"
)

// ErrProjectNotFound is returned by GetBySlug for slugs outside the catalog.
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects []models.Project
	bySlug   map[string]int
}

// NewProjectService creates a new ProjectService over a fixed catalog
func NewProjectService(projects []models.Project) *ProjectService {
	bySlug := make(map[string]int, len(projects))
	for i, p := range projects {
		if _, dup := bySlug[p.Slug]; !dup {
			bySlug[p.Slug] = i
		}
	}
	return &ProjectService{projects: projects, bySlug: bySlug}
}

// GetAll returns all projects in catalog order
func (s *ProjectService) GetAll() []models.Project {
	return s.projects
}

// Lookup returns the project with the given slug. A missing slug is a
// normal outcome, reported through ok.
func (s *ProjectService) Lookup(slug string) (project models.Project, ok bool) {
	i, ok := s.bySlug[slug]
	if !ok {
		return models.Project{}, false
	}
	return s.projects[i], true
}

// GetBySlug returns a specific project by slug
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	p, ok := s.Lookup(slug)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, slug)
	}
	return &p, nil
}
