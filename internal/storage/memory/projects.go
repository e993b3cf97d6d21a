package memory

import (
	"context"
	"time"

	"officehub/internal/models"
	"officehub/internal/schema"
)

// ListProjects returns all projects in insertion order.
func (s *Store) ListProjects(_ context.Context) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByID(s.projects, func(p models.Project) int { return p.ID }), nil
}

// GetProject returns the project by id, or nil when absent.
func (s *Store) GetProject(_ context.Context, id int) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.projects[id]; ok {
		return &p, nil
	}
	return nil, nil
}

// CreateProject assigns the id and creation timestamp and stores the record.
func (s *Store) CreateProject(_ context.Context, p models.Project) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.next("projects")
	p.CreatedAt = time.Now().UTC()
	s.projects[p.ID] = p
	return p, nil
}

// UpdateProject merges the patch onto the stored record. A nil result means
// no project exists for the id; an invalid patch returns the field errors.
func (s *Store) UpdateProject(_ context.Context, id int, patch schema.UpdateProject) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, nil
	}
	if errs := patch.Apply(&p); errs != nil {
		return nil, errs
	}
	s.projects[id] = p
	return &p, nil
}

// DeleteProject removes the project. Tasks referencing it keep their dangling
// projectId; nothing cascades.
func (s *Store) DeleteProject(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return false, nil
	}
	delete(s.projects, id)
	return true, nil
}
