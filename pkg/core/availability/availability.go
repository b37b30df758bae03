// Package availability determines which employees are eligible to work on a
// given date. It is a pure computation over roster and leave snapshots and is
// the leaf dependency of both shift allocators.
package availability

import (
	"time"

	"github.com/crewroster/crewroster/pkg/core/model"
)

// AvailableEmployees returns the subset of the roster eligible to work on
// date: active, not scheduled off via their fixed weekend-off dates, and not
// covered by an approved leave whose inclusive range contains the date.
// An empty result is a legitimate outcome, not an error.
func AvailableEmployees(date time.Time, roster []model.Employee, leaves []model.Leave) []model.Employee {
	onLeave := employeesOnLeave(date, leaves)

	var available []model.Employee
	for _, emp := range roster {
		if !emp.Active {
			continue
		}
		if emp.IsWeekendOff(date) {
			continue
		}
		if onLeave[emp.ID] {
			continue
		}
		available = append(available, emp)
	}
	return available
}

// employeesOnLeave builds the set of employee IDs covered by an approved
// leave on the given date
func employeesOnLeave(date time.Time, leaves []model.Leave) map[string]bool {
	covered := make(map[string]bool)
	for _, l := range leaves {
		if l.Status != model.LeaveApproved {
			continue
		}
		if l.Covers(date) {
			covered[l.EmployeeID] = true
		}
	}
	return covered
}

// FilterByLevel returns the employees with the given skill level, preserving
// roster order
func FilterByLevel(employees []model.Employee, level model.SkillLevel) []model.Employee {
	var filtered []model.Employee
	for _, emp := range employees {
		if emp.SkillLevel == level {
			filtered = append(filtered, emp)
		}
	}
	return filtered
}
