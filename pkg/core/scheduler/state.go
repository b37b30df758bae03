package scheduler

import (
	"time"

	"github.com/crewroster/crewroster/pkg/core/model"
)

// RotationState carries the per-employee weekend fairness bookkeeping for one
// allocation run. It is an explicit value owned by a single run: allocators
// take a state, clone it, and return the updated copy alongside the shifts
// they produced. Nothing in this package holds rotation state globally.
type RotationState struct {
	// Counts is the weekend-shift counter per employee ID, seeded from the
	// persistent roster and incremented as the run assigns weekend shifts
	Counts map[string]int

	// Appended holds the weekend history records produced by this run, per
	// employee ID. The caller persists these alongside the new counters.
	Appended map[string][]model.WeekendShiftRecord
}

// NewRotationState seeds the fairness counters from the roster. The lifetime
// counter is authoritative; a zero counter falls back to the history length
// so rosters predating the counter field still rotate fairly.
func NewRotationState(roster []model.Employee) *RotationState {
	state := &RotationState{
		Counts:   make(map[string]int, len(roster)),
		Appended: make(map[string][]model.WeekendShiftRecord),
	}
	for _, emp := range roster {
		count := emp.WeekendShiftsWorked
		if count == 0 {
			count = len(emp.WeekendShiftHistory)
		}
		state.Counts[emp.ID] = count
	}
	return state
}

// Clone returns an independent copy of the state
func (s *RotationState) Clone() *RotationState {
	clone := &RotationState{
		Counts:   make(map[string]int, len(s.Counts)),
		Appended: make(map[string][]model.WeekendShiftRecord, len(s.Appended)),
	}
	for id, count := range s.Counts {
		clone.Counts[id] = count
	}
	for id, records := range s.Appended {
		clone.Appended[id] = append([]model.WeekendShiftRecord(nil), records...)
	}
	return clone
}

// Count returns the weekend-shift counter for an employee
func (s *RotationState) Count(employeeID string) int {
	return s.Counts[employeeID]
}

// record registers a weekend assignment: append to the run's history and
// increment the counter. Must happen before the next shift type of the same
// date is evaluated so repeated needs keep spreading load.
func (s *RotationState) record(employeeID string, date time.Time, shiftType model.ShiftType, level model.SkillLevel) {
	s.Appended[employeeID] = append(s.Appended[employeeID], model.WeekendShiftRecord{
		Date:      date,
		ShiftType: shiftType,
		Level:     level,
	})
	s.Counts[employeeID]++
}
