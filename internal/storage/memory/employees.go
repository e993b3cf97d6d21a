package memory

import (
	"context"
	"fmt"

	"officehub/internal/models"
	"officehub/internal/schema"
)

// ListEmployees returns all employees in insertion order.
func (s *Store) ListEmployees(_ context.Context) ([]models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByID(s.employees, func(e models.Employee) int { return e.ID }), nil
}

// GetEmployee returns the employee by id, or nil when absent.
func (s *Store) GetEmployee(_ context.Context, id int) (*models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.employees[id]; ok {
		return &e, nil
	}
	return nil, nil
}

// CreateEmployee stores a new employee, enforcing email uniqueness the way
// the database backend does with its unique index.
func (s *Store) CreateEmployee(_ context.Context, e models.Employee) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkEmail(e.Email, 0); err != nil {
		return models.Employee{}, err
	}
	e.ID = s.next("employees")
	s.employees[e.ID] = e
	return e, nil
}

// UpdateEmployee merges the patch onto the stored record, re-checking email
// uniqueness when the patch changes it.
func (s *Store) UpdateEmployee(_ context.Context, id int, patch schema.UpdateEmployee) (*models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return nil, nil
	}
	if errs := patch.Apply(&e); errs != nil {
		return nil, errs
	}
	if err := s.checkEmail(e.Email, id); err != nil {
		return nil, err
	}
	s.employees[id] = e
	return &e, nil
}

// DeleteEmployee removes the employee. Tasks and attendance referencing it
// keep their dangling ids; nothing cascades.
func (s *Store) DeleteEmployee(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[id]; !ok {
		return false, nil
	}
	delete(s.employees, id)
	return true, nil
}

// checkEmail rejects an email already held by a different employee. Callers
// must hold s.mu.
func (s *Store) checkEmail(email string, selfID int) error {
	for _, existing := range s.employees {
		if existing.Email == email && existing.ID != selfID {
			return fmt.Errorf("employee email %q already in use", email)
		}
	}
	return nil
}
