package model

import "time"

// SkillLevel is the coarse seniority tier used by staffing quotas
type SkillLevel string

const (
	LevelSenior SkillLevel = "Senior"
	LevelJunior SkillLevel = "Junior"
)

// ShiftType identifies one of the seven recurring work-slot categories
type ShiftType string

const (
	ShiftMorning   ShiftType = "Morning"
	ShiftGeneral   ShiftType = "General"
	ShiftAfternoon ShiftType = "Afternoon"
	ShiftNight     ShiftType = "Night"

	ShiftWeekendMorning   ShiftType = "WeekendMorning"
	ShiftWeekendAfternoon ShiftType = "WeekendAfternoon"
	ShiftWeekendNight     ShiftType = "WeekendNight"
)

// WeekdayShiftTypes is the fixed evaluation order for weekday allocation
var WeekdayShiftTypes = []ShiftType{ShiftMorning, ShiftGeneral, ShiftAfternoon, ShiftNight}

// WeekendShiftTypes is the fixed evaluation order for weekend allocation.
// The index of a type in this slice is also its alternation key.
var WeekendShiftTypes = []ShiftType{ShiftWeekendMorning, ShiftWeekendAfternoon, ShiftWeekendNight}

// Quota is the required staffing for a shift type.
// When AlternateWith is set and both counts are zero, the required level is
// determined by the weekend rotation pattern instead of the fixed counts.
type Quota struct {
	Seniors       int
	Juniors       int
	AlternateWith SkillLevel
}

// Slots returns the total number of quota slots
func (q Quota) Slots() int {
	return q.Seniors + q.Juniors
}

// WeekendShiftRecord is one entry in an employee's weekend shift history
type WeekendShiftRecord struct {
	Date      time.Time
	ShiftType ShiftType
	Level     SkillLevel
}

// Employee represents a roster member
type Employee struct {
	ID             string
	Name           string
	Email          string
	SkillLevel     SkillLevel
	Skills         []string
	TasksCompleted int
	SkillPoints    int

	// WeekendsOff are the two fixed dates this employee is scheduled off
	WeekendsOff [2]time.Time

	// WeekendShiftHistory is the ordered record of past weekend assignments
	WeekendShiftHistory []WeekendShiftRecord

	// WeekendShiftsWorked is the lifetime weekend shift counter used for
	// fairness rotation
	WeekendShiftsWorked int

	Active bool
}

// HasSkill reports whether the employee's skill set contains the given tag
func (e *Employee) HasSkill(skill string) bool {
	for _, s := range e.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// IsWeekendOff reports whether the given date is one of the employee's two
// fixed weekend-off dates
func (e *Employee) IsWeekendOff(date time.Time) bool {
	return SameDate(e.WeekendsOff[0], date) || SameDate(e.WeekendsOff[1], date)
}

// Replacement records one employee being swapped for another on a shift
type Replacement struct {
	OriginalEmployeeID    string
	ReplacementEmployeeID string
	Reason                string
	ReplacedAt            time.Time
}

// StaffingStatus describes how well a shift's roster meets its quota
type StaffingStatus string

const (
	StaffingUnstaffed    StaffingStatus = "Unstaffed"
	StaffingUnderstaffed StaffingStatus = "Understaffed"
	StaffingFull         StaffingStatus = "Fully Staffed"
	StaffingOverstaffed  StaffingStatus = "Overstaffed"
)

// Shift is a single work slot on a date. At most one Shift exists per
// (Date, Type) pair.
type Shift struct {
	ID           string
	Type         ShiftType
	Date         time.Time
	EmployeeIDs  []string
	Quota        Quota
	IsWeekend    bool
	Replacements []Replacement
}

// HasEmployee reports whether the employee is assigned to this shift
func (s *Shift) HasEmployee(employeeID string) bool {
	for _, id := range s.EmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// StaffingStatus classifies the shift roster against its quota slots
func (s *Shift) StaffingStatus() StaffingStatus {
	assigned := len(s.EmployeeIDs)
	switch {
	case assigned == 0:
		return StaffingUnstaffed
	case assigned < s.Quota.Slots():
		return StaffingUnderstaffed
	case assigned == s.Quota.Slots():
		return StaffingFull
	default:
		return StaffingOverstaffed
	}
}

// LeaveStatus is the lifecycle state of a leave request
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"
	LeaveApproved LeaveStatus = "Approved"
	LeaveRejected LeaveStatus = "Rejected"
)

// LeaveType is the category of a leave request. Emergency leaves bypass the
// future-dated rule.
type LeaveType string

const (
	LeaveSick      LeaveType = "Sick Leave"
	LeavePersonal  LeaveType = "Personal Leave"
	LeaveVacation  LeaveType = "Vacation"
	LeaveEmergency LeaveType = "Emergency"
)

// Leave is a time-off request with an inclusive [StartDate, EndDate] range
type Leave struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Type       LeaveType
	Status     LeaveStatus
	ReviewedBy string
	ReviewedAt *time.Time
	Comment    string
}

// Covers reports whether the leave's inclusive date range contains the date
func (l *Leave) Covers(date time.Time) bool {
	d := Midnight(date)
	return !d.Before(Midnight(l.StartDate)) && !d.After(Midnight(l.EndDate))
}

// TaskDifficulty grades a task
type TaskDifficulty string

const (
	DifficultyEasy   TaskDifficulty = "Easy"
	DifficultyMedium TaskDifficulty = "Medium"
	DifficultyHard   TaskDifficulty = "Hard"
)

// TaskPriority orders tasks for distribution
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// TaskStatus is the lifecycle state of a task
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

// Task is a discrete work item assignable to one employee whose skill set
// contains SkillRequired
type Task struct {
	ID                string
	Title             string
	Description       string
	Difficulty        TaskDifficulty
	SkillRequired     string
	Priority          TaskPriority
	SkillPointsReward int
	AssignedTo        string
	Status            TaskStatus
	CompletedAt       *time.Time
}

// DifficultyWeight maps difficulty to its distribution ordering weight
func DifficultyWeight(d TaskDifficulty) int {
	switch d {
	case DifficultyHard:
		return 3
	case DifficultyMedium:
		return 2
	default:
		return 1
	}
}

// PriorityWeight maps priority to its distribution ordering weight
func PriorityWeight(p TaskPriority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}
