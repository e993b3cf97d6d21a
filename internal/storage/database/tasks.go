package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"officehub/internal/models"
	"officehub/internal/schema"
)

// ListTasks returns all tasks ordered by id.
func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.WithContext(ctx).Order("id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// ListTasksByProject returns tasks attached to the given project.
func (s *Store) ListTasksByProject(ctx context.Context, projectID int) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id").Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks by project: %w", err)
	}
	return tasks, nil
}

// GetTask returns the task by id, or nil when absent.
func (s *Store) GetTask(ctx context.Context, id int) (*models.Task, error) {
	var t models.Task
	err := s.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// CreateTask inserts a new task.
func (s *Store) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

// UpdateTask loads, patches and saves the record.
func (s *Store) UpdateTask(ctx context.Context, id int, patch schema.UpdateTask) (*models.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil || t == nil {
		return nil, err
	}
	if errs := patch.Apply(t); errs != nil {
		return nil, errs
	}
	if err := s.db.WithContext(ctx).Save(t).Error; err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

// DeleteTask removes the task.
func (s *Store) DeleteTask(ctx context.Context, id int) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Task{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete task: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
