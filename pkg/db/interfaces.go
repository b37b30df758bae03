package db

import (
	"context"
	"time"

	"github.com/crewroster/crewroster/pkg/core/model"
)

// EmployeeStore defines the database operations over the employee roster
type EmployeeStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetEmployee(ctx context.Context, id string) (*model.Employee, error)
	InsertEmployees(employees []model.Employee) error
	// RecordWeekendShifts persists newly appended weekend history records and
	// advances each employee's weekend counter by the number appended
	RecordWeekendShifts(ctx context.Context, appended map[string][]model.WeekendShiftRecord) error
	// UpdateTaskProgress persists the employee's skill points and completed
	// task counter after a task completion
	UpdateTaskProgress(ctx context.Context, emp *model.Employee) error
}

// ShiftStore defines the database operations over scheduled shifts
type ShiftStore interface {
	GetShiftsBetween(ctx context.Context, start, end time.Time) ([]model.Shift, error)
	GetShift(ctx context.Context, id string) (*model.Shift, error)
	InsertShifts(shifts []model.Shift) error
	UpdateShift(ctx context.Context, shift *model.Shift) error
}

// LeaveStore defines the database operations over leave requests
type LeaveStore interface {
	GetLeaves(ctx context.Context) ([]model.Leave, error)
	GetLeave(ctx context.Context, id string) (*model.Leave, error)
	InsertLeave(leave *model.Leave) error
	UpdateLeave(ctx context.Context, leave *model.Leave) error
}

// TaskStore defines the database operations over tasks
type TaskStore interface {
	GetTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (*model.Task, error)
	InsertTask(task *model.Task) error
	UpdateTask(ctx context.Context, task *model.Task) error
}

// Database defines the interface for all database operations.
// postgres.DB implements this interface.
type Database interface {
	EmployeeStore
	ShiftStore
	LeaveStore
	TaskStore
}
