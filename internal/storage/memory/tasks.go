package memory

import (
	"context"
	"time"

	"officehub/internal/models"
	"officehub/internal/schema"
)

// ListTasks returns all tasks in insertion order.
func (s *Store) ListTasks(_ context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByID(s.tasks, func(t models.Task) int { return t.ID }), nil
}

// ListTasksByProject filters the full task set by projectId.
func (s *Store) ListTasksByProject(_ context.Context, projectID int) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := sortedByID(s.tasks, func(t models.Task) int { return t.ID })
	out := make([]models.Task, 0)
	for _, t := range all {
		if t.ProjectID != nil && *t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

// GetTask returns the task by id, or nil when absent.
func (s *Store) GetTask(_ context.Context, id int) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok {
		return &t, nil
	}
	return nil, nil
}

// CreateTask assigns the id and creation timestamp and stores the record.
func (s *Store) CreateTask(_ context.Context, t models.Task) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.next("tasks")
	t.CreatedAt = time.Now().UTC()
	s.tasks[t.ID] = t
	return t, nil
}

// UpdateTask merges the patch onto the stored record.
func (s *Store) UpdateTask(_ context.Context, id int, patch schema.UpdateTask) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}
	if errs := patch.Apply(&t); errs != nil {
		return nil, errs
	}
	s.tasks[id] = t
	return &t, nil
}

// DeleteTask removes the task.
func (s *Store) DeleteTask(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return false, nil
	}
	delete(s.tasks, id)
	return true, nil
}
