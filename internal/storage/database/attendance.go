package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"officehub/internal/models"
	"officehub/internal/schema"
	"officehub/internal/storage"
)

// ListAttendance returns all attendance records ordered by id.
func (s *Store) ListAttendance(ctx context.Context) ([]models.Attendance, error) {
	var records []models.Attendance
	if err := s.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}

// ListAttendanceByDate returns records falling on the same calendar day.
func (s *Store) ListAttendanceByDate(ctx context.Context, date time.Time) ([]models.Attendance, error) {
	start, end := storage.DayWindow(date)
	var records []models.Attendance
	err := s.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("id").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list attendance by date: %w", err)
	}
	return records, nil
}

// ListAttendanceByEmployee returns records for one employee.
func (s *Store) ListAttendanceByEmployee(ctx context.Context, employeeID int) ([]models.Attendance, error) {
	var records []models.Attendance
	err := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("id").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list attendance by employee: %w", err)
	}
	return records, nil
}

// ListAttendanceByDateRange returns records inside the inclusive range.
func (s *Store) ListAttendanceByDateRange(ctx context.Context, start, end time.Time) ([]models.Attendance, error) {
	var records []models.Attendance
	err := s.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("id").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list attendance by range: %w", err)
	}
	return records, nil
}

// GetAttendance returns the record by id, or nil when absent.
func (s *Store) GetAttendance(ctx context.Context, id int) (*models.Attendance, error) {
	var a models.Attendance
	err := s.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	return &a, nil
}

// CreateAttendance inserts a new record.
func (s *Store) CreateAttendance(ctx context.Context, a models.Attendance) (models.Attendance, error) {
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return models.Attendance{}, fmt.Errorf("insert attendance: %w", err)
	}
	return a, nil
}

// UpdateAttendance loads, patches and saves the record.
func (s *Store) UpdateAttendance(ctx context.Context, id int, patch schema.UpdateAttendance) (*models.Attendance, error) {
	a, err := s.GetAttendance(ctx, id)
	if err != nil || a == nil {
		return nil, err
	}
	if errs := patch.Apply(a); errs != nil {
		return nil, errs
	}
	if err := s.db.WithContext(ctx).Save(a).Error; err != nil {
		return nil, fmt.Errorf("update attendance: %w", err)
	}
	return a, nil
}

// DeleteAttendance removes the record.
func (s *Store) DeleteAttendance(ctx context.Context, id int) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Attendance{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete attendance: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
