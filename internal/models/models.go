package models

import "time"

// Project groups tasks and finances under a single client engagement.
type Project struct {
	ID          int        `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description *string    `json:"description"`
	Status      string     `json:"status" gorm:"not null;default:planning"`
	Client      string     `json:"client" gorm:"not null"`
	Progress    int        `json:"progress" gorm:"default:0"`
	Budget      *string    `json:"budget" gorm:"type:numeric(10,2)"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Task is a unit of work, optionally attached to a project and an assignee.
// The references are not enforced: deleting a project or employee leaves
// dangling ids behind.
type Task struct {
	ID          int        `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description *string    `json:"description"`
	Status      string     `json:"status" gorm:"not null;default:todo"`
	Priority    string     `json:"priority" gorm:"not null;default:medium"`
	ProjectID   *int       `json:"projectId" gorm:"index"`
	AssigneeID  *int       `json:"assigneeId" gorm:"index"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Employee is a staff member. Email is unique across the table.
type Employee struct {
	ID         int        `json:"id" gorm:"primaryKey"`
	Name       string     `json:"name" gorm:"not null"`
	Email      string     `json:"email" gorm:"not null;uniqueIndex"`
	Role       string     `json:"role" gorm:"not null"`
	Department string     `json:"department" gorm:"not null"`
	Avatar     *string    `json:"avatar"`
	Phone      *string    `json:"phone"`
	HireDate   *time.Time `json:"hireDate"`
	Salary     *string    `json:"salary" gorm:"type:numeric(10,2)"`
	// No default tag: GORM drops zero values for defaulted columns, which
	// would turn an explicit false into true. The schema layer owns the
	// default instead.
	IsActive bool `json:"isActive"`
}

// Finance is a single income or expense entry. Amount and date are required,
// unlike the optional decimal and date fields on the other entities.
type Finance struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Amount      string    `json:"amount" gorm:"type:numeric(10,2);not null"`
	Date        time.Time `json:"date" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Attendance is one check-in record per employee per day. TotalHours and
// Overtime are free-text durations computed by the caller, not the server.
type Attendance struct {
	ID         int       `json:"id" gorm:"primaryKey"`
	EmployeeID int       `json:"employeeId" gorm:"index;not null"`
	Date       time.Time `json:"date" gorm:"index;not null"`
	CheckIn    *string   `json:"checkIn"`
	CheckOut   *string   `json:"checkOut"`
	TotalHours *string   `json:"totalHours"`
	Overtime   *string   `json:"overtime"`
	Status     string    `json:"status" gorm:"not null;default:present"`
	Notes      *string   `json:"notes"`
}

// TableName keeps the singular table name used by the dashboard schema.
func (Attendance) TableName() string { return "attendance" }

// User is a login record consumed by the auth layer. It has no HTTP routes of
// its own.
type User struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"not null;uniqueIndex"`
	Password string `json:"password" gorm:"not null"`
}

// Defaults applied when an insert omits the field.
const (
	DefaultProjectStatus    = "planning"
	DefaultTaskStatus       = "todo"
	DefaultTaskPriority     = "medium"
	DefaultAttendanceStatus = "present"
)

// ValidProjectStatuses enumerates the project lifecycle states.
var ValidProjectStatuses = map[string]struct{}{
	"planning":    {},
	"in-progress": {},
	"completed":   {},
	"on-hold":     {},
	"delayed":     {},
}

// ValidTaskStatuses enumerates the board columns a task can sit in.
var ValidTaskStatuses = map[string]struct{}{
	"todo":        {},
	"in-progress": {},
	"done":        {},
}

// ValidTaskPriorities enumerates task priorities.
var ValidTaskPriorities = map[string]struct{}{
	"low":    {},
	"medium": {},
	"high":   {},
}

// ValidFinanceTypes enumerates the two sides of the ledger.
var ValidFinanceTypes = map[string]struct{}{
	"income":  {},
	"expense": {},
}

// ValidAttendanceStatuses enumerates daily attendance states.
var ValidAttendanceStatuses = map[string]struct{}{
	"present":  {},
	"late":     {},
	"absent":   {},
	"half-day": {},
}
