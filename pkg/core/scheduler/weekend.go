package scheduler

import (
	"sort"
	"time"

	"github.com/crewroster/crewroster/pkg/core/availability"
	"github.com/crewroster/crewroster/pkg/core/model"
)

// AllocateWeekend fills the three weekend shift types for one weekend date.
// Each type takes exactly one employee, chosen by ascending weekend-shift
// counter with roster order breaking ties (stable sort, no randomness). The
// input state is not mutated; the returned state carries the incremented
// counters and appended history for the caller to persist.
//
// An employee picked for one weekend type is deliberately not excluded from
// the candidate pool of the next type on the same date; each type's pool is
// recomputed independently. The counter increment between types is the only
// thing spreading same-day load.
func AllocateWeekend(date time.Time, roster []model.Employee, leaves []model.Leave, quotas QuotaSet, state *RotationState) (*RotationState, []model.Shift) {
	next := state.Clone()
	available := availability.AvailableEmployees(date, roster, leaves)

	shifts := make([]model.Shift, 0, len(model.WeekendShiftTypes))
	for idx, shiftType := range model.WeekendShiftTypes {
		quota := quotas[shiftType]
		level := requiredLevel(quota, date, idx)

		shift := model.Shift{
			ID:        model.ShiftID(date, shiftType),
			Type:      shiftType,
			Date:      model.Midnight(date),
			Quota:     quota,
			IsWeekend: true,
		}

		candidates := availability.FilterByLevel(available, level)
		if len(candidates) > 0 {
			picked := pickFairest(candidates, next)
			shift.EmployeeIDs = []string{picked.ID}
			next.record(picked.ID, model.Midnight(date), shiftType, picked.SkillLevel)
		}

		// Empty candidate pool leaves the shift unassigned but still present
		// in the schedule.
		shifts = append(shifts, shift)
	}

	return next, shifts
}

// requiredLevel resolves the skill level a weekend slot needs. A non-zero
// quota count fixes the level directly; a pure-rotation quota alternates on
// (weekNumber + shiftTypeIndex) mod 2, Senior on even.
func requiredLevel(quota model.Quota, date time.Time, shiftTypeIndex int) model.SkillLevel {
	switch {
	case quota.Seniors > 0:
		return model.LevelSenior
	case quota.Juniors > 0:
		return model.LevelJunior
	default:
		if (model.WeekNumber(date)+int64(shiftTypeIndex))%2 == 0 {
			return model.LevelSenior
		}
		return model.LevelJunior
	}
}

// pickFairest returns the candidate with the lowest weekend-shift counter,
// keeping roster order among ties
func pickFairest(candidates []model.Employee, state *RotationState) model.Employee {
	sorted := append([]model.Employee(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return state.Count(sorted[i].ID) < state.Count(sorted[j].ID)
	})
	return sorted[0]
}
