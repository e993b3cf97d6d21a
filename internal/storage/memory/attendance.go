package memory

import (
	"context"
	"time"

	"officehub/internal/models"
	"officehub/internal/schema"
	"officehub/internal/storage"
)

// ListAttendance returns all attendance records in insertion order.
func (s *Store) ListAttendance(_ context.Context) ([]models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allAttendance(), nil
}

// ListAttendanceByDate filters records falling on the same calendar day.
func (s *Store) ListAttendanceByDate(_ context.Context, date time.Time) ([]models.Attendance, error) {
	start, end := storage.DayWindow(date)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Attendance, 0)
	for _, a := range s.allAttendance() {
		if !a.Date.Before(start) && a.Date.Before(end) {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListAttendanceByEmployee filters records by employeeId.
func (s *Store) ListAttendanceByEmployee(_ context.Context, employeeID int) ([]models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Attendance, 0)
	for _, a := range s.allAttendance() {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListAttendanceByDateRange filters records inside the inclusive range.
func (s *Store) ListAttendanceByDateRange(_ context.Context, start, end time.Time) ([]models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Attendance, 0)
	for _, a := range s.allAttendance() {
		if !a.Date.Before(start) && !a.Date.After(end) {
			out = append(out, a)
		}
	}
	return out, nil
}

// GetAttendance returns the record by id, or nil when absent.
func (s *Store) GetAttendance(_ context.Context, id int) (*models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.attendance[id]; ok {
		return &a, nil
	}
	return nil, nil
}

// CreateAttendance assigns the id and stores the record.
func (s *Store) CreateAttendance(_ context.Context, a models.Attendance) (models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.next("attendance")
	s.attendance[a.ID] = a
	return a, nil
}

// UpdateAttendance merges the patch onto the stored record.
func (s *Store) UpdateAttendance(_ context.Context, id int, patch schema.UpdateAttendance) (*models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attendance[id]
	if !ok {
		return nil, nil
	}
	if errs := patch.Apply(&a); errs != nil {
		return nil, errs
	}
	s.attendance[id] = a
	return &a, nil
}

// DeleteAttendance removes the record.
func (s *Store) DeleteAttendance(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.attendance[id]; !ok {
		return false, nil
	}
	delete(s.attendance, id)
	return true, nil
}

// allAttendance returns records ordered by id. Callers must hold s.mu.
func (s *Store) allAttendance() []models.Attendance {
	return sortedByID(s.attendance, func(a models.Attendance) int { return a.ID })
}
