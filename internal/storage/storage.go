// Package storage defines the CRUD contract shared by the in-memory and
// database-backed stores. Absence is a nil pointer result, never an error:
// callers translate it to a 404 while real failures become a 500.
package storage

import (
	"context"
	"time"

	"officehub/internal/models"
	"officehub/internal/schema"
)

// Store is implemented once against in-process maps and once against a
// relational database. Update methods may return schema.FieldErrors when the
// patch itself is invalid.
type Store interface {
	// Users
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, u models.User) (models.User, error)

	// Projects
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id int) (*models.Project, error)
	CreateProject(ctx context.Context, p models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, id int, patch schema.UpdateProject) (*models.Project, error)
	DeleteProject(ctx context.Context, id int) (bool, error)

	// Tasks
	ListTasks(ctx context.Context) ([]models.Task, error)
	ListTasksByProject(ctx context.Context, projectID int) ([]models.Task, error)
	GetTask(ctx context.Context, id int) (*models.Task, error)
	CreateTask(ctx context.Context, t models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, id int, patch schema.UpdateTask) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) (bool, error)

	// Employees
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, id int) (*models.Employee, error)
	CreateEmployee(ctx context.Context, e models.Employee) (models.Employee, error)
	UpdateEmployee(ctx context.Context, id int, patch schema.UpdateEmployee) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id int) (bool, error)

	// Finances
	ListFinances(ctx context.Context) ([]models.Finance, error)
	GetFinance(ctx context.Context, id int) (*models.Finance, error)
	CreateFinance(ctx context.Context, f models.Finance) (models.Finance, error)
	UpdateFinance(ctx context.Context, id int, patch schema.UpdateFinance) (*models.Finance, error)
	DeleteFinance(ctx context.Context, id int) (bool, error)

	// Attendance
	ListAttendance(ctx context.Context) ([]models.Attendance, error)
	ListAttendanceByDate(ctx context.Context, date time.Time) ([]models.Attendance, error)
	ListAttendanceByEmployee(ctx context.Context, employeeID int) ([]models.Attendance, error)
	ListAttendanceByDateRange(ctx context.Context, start, end time.Time) ([]models.Attendance, error)
	GetAttendance(ctx context.Context, id int) (*models.Attendance, error)
	CreateAttendance(ctx context.Context, a models.Attendance) (models.Attendance, error)
	UpdateAttendance(ctx context.Context, id int, patch schema.UpdateAttendance) (*models.Attendance, error)
	DeleteAttendance(ctx context.Context, id int) (bool, error)

	Close() error
}

// DayWindow returns the [start, next-day) bounds for matching records that
// fall on the same calendar day as t, in UTC.
func DayWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
