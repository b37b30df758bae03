package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/crewroster/crewroster/pkg/core/model"
)

// ErrWeekConflict means a shift already exists inside the requested week for
// one of the generated shift types. The whole generation fails and nothing
// is produced.
var ErrWeekConflict = errors.New("shifts already exist for this week")

// UnfilledSlot reports a shift slot the allocators could not fully staff.
// Not an error: the shift record still exists, understaffed or empty.
type UnfilledSlot struct {
	Date     time.Time
	Type     model.ShiftType
	Assigned int
	Required int
}

// WeekSchedule is the result of one weekly generation run
type WeekSchedule struct {
	WeekStart time.Time
	Shifts    []model.Shift

	// State is the rotation state after the run, carrying the weekend
	// counters and history the caller must persist
	State *RotationState

	// Unfilled lists every slot left short of its quota, weekday and weekend
	Unfilled []UnfilledSlot
}

// GenerateWeek produces the full shift set for the 7 consecutive dates
// starting at weekStart, dispatching each date to the weekday or weekend
// allocator by calendar day-of-week. The existing slice is the conflict
// precondition snapshot: if any existing shift falls on one of the week's
// dates with one of the generated types, the operation fails atomically with
// ErrWeekConflict. Calling GenerateWeek twice for the same week therefore
// fails on the second call instead of duplicating shifts.
func GenerateWeek(weekStart time.Time, roster []model.Employee, leaves []model.Leave, quotas QuotaSet, state *RotationState, existing []model.Shift) (*WeekSchedule, error) {
	dates := model.WeekDates(weekStart)

	if conflict := findConflict(dates, existing); conflict != nil {
		return nil, fmt.Errorf("%w: %s %s", ErrWeekConflict, conflict.Date.Format(model.DateLayout), conflict.Type)
	}

	schedule := &WeekSchedule{
		WeekStart: model.Midnight(weekStart),
		State:     state.Clone(),
	}

	for _, date := range dates {
		var dailyShifts []model.Shift
		if model.IsWeekend(date) {
			schedule.State, dailyShifts = AllocateWeekend(date, roster, leaves, quotas, schedule.State)
		} else {
			dailyShifts = AllocateWeekday(date, roster, leaves, quotas)
		}
		schedule.Shifts = append(schedule.Shifts, dailyShifts...)
	}

	for _, shift := range schedule.Shifts {
		required := requiredSlots(shift)
		if len(shift.EmployeeIDs) < required {
			schedule.Unfilled = append(schedule.Unfilled, UnfilledSlot{
				Date:     shift.Date,
				Type:     shift.Type,
				Assigned: len(shift.EmployeeIDs),
				Required: required,
			})
		}
	}

	return schedule, nil
}

// requiredSlots is the target headcount for a shift: rotation-driven weekend
// shifts always want exactly one employee, everything else wants its quota
// slots
func requiredSlots(shift model.Shift) int {
	if shift.IsWeekend {
		return 1
	}
	return shift.Quota.Slots()
}

// findConflict returns the first existing shift occupying one of the week's
// (date, type) pairs, or nil
func findConflict(dates []time.Time, existing []model.Shift) *model.Shift {
	types := make(map[model.ShiftType]bool, 7)
	for _, t := range model.WeekdayShiftTypes {
		types[t] = true
	}
	for _, t := range model.WeekendShiftTypes {
		types[t] = true
	}

	for i := range existing {
		if !types[existing[i].Type] {
			continue
		}
		for _, date := range dates {
			if model.SameDate(existing[i].Date, date) {
				return &existing[i]
			}
		}
	}
	return nil
}
