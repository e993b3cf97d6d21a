package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"officehub/internal/models"
	"officehub/internal/schema"
)

// ListProjects returns all projects ordered by id.
func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.WithContext(ctx).Order("id").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns the project by id, or nil when absent.
func (s *Store) GetProject(ctx context.Context, id int) (*models.Project, error) {
	var p models.Project
	err := s.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// CreateProject inserts a new project; the database assigns the id and GORM
// fills CreatedAt.
func (s *Store) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.Project{}, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

// UpdateProject loads, patches and saves the record. The read and the write
// are separate statements, so concurrent patches can lose updates, matching
// the reference behavior.
func (s *Store) UpdateProject(ctx context.Context, id int, patch schema.UpdateProject) (*models.Project, error) {
	p, err := s.GetProject(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	if errs := patch.Apply(p); errs != nil {
		return nil, errs
	}
	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

// DeleteProject removes the project; dependent tasks are left untouched.
func (s *Store) DeleteProject(ctx context.Context, id int) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Project{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete project: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
