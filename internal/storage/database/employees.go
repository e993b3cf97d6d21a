package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"officehub/internal/models"
	"officehub/internal/schema"
)

// ListEmployees returns all employees ordered by id.
func (s *Store) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.WithContext(ctx).Order("id").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

// GetEmployee returns the employee by id, or nil when absent.
func (s *Store) GetEmployee(ctx context.Context, id int) (*models.Employee, error) {
	var e models.Employee
	err := s.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// CreateEmployee inserts a new employee; the unique email index rejects
// duplicates.
func (s *Store) CreateEmployee(ctx context.Context, e models.Employee) (models.Employee, error) {
	if err := s.db.WithContext(ctx).Create(&e).Error; err != nil {
		return models.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	return e, nil
}

// UpdateEmployee loads, patches and saves the record.
func (s *Store) UpdateEmployee(ctx context.Context, id int, patch schema.UpdateEmployee) (*models.Employee, error) {
	e, err := s.GetEmployee(ctx, id)
	if err != nil || e == nil {
		return nil, err
	}
	if errs := patch.Apply(e); errs != nil {
		return nil, errs
	}
	if err := s.db.WithContext(ctx).Save(e).Error; err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return e, nil
}

// DeleteEmployee removes the employee; tasks and attendance keep their
// dangling references.
func (s *Store) DeleteEmployee(ctx context.Context, id int) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Employee{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete employee: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
