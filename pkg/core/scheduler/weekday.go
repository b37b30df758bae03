package scheduler

import (
	"time"

	"github.com/crewroster/crewroster/pkg/core/availability"
	"github.com/crewroster/crewroster/pkg/core/model"
)

// AllocateWeekday fills the four weekday shift types for a single date.
// Types are evaluated in the fixed order Morning, General, Afternoon, Night;
// each shift fills its senior slots first and then its junior slots in
// roster iteration order, and employees picked for one shift are excluded
// from the rest of the date. A quota that cannot be fully met still yields a
// shift record with a partial roster; no type is ever skipped.
func AllocateWeekday(date time.Time, roster []model.Employee, leaves []model.Leave, quotas QuotaSet) []model.Shift {
	available := availability.AvailableEmployees(date, roster, leaves)
	used := make(map[string]bool)

	shifts := make([]model.Shift, 0, len(model.WeekdayShiftTypes))
	for _, shiftType := range model.WeekdayShiftTypes {
		quota := quotas[shiftType]
		assigned := fillQuota(available, quota, used)

		shifts = append(shifts, model.Shift{
			ID:          model.ShiftID(date, shiftType),
			Type:        shiftType,
			Date:        model.Midnight(date),
			EmployeeIDs: assigned,
			Quota:       quota,
			IsWeekend:   false,
		})

		for _, id := range assigned {
			used[id] = true
		}
	}
	return shifts
}

// fillQuota picks up to quota.Seniors seniors and then up to quota.Juniors
// juniors from the pool, skipping employees already used on this date. No
// secondary sort: roster iteration order decides.
func fillQuota(pool []model.Employee, quota model.Quota, used map[string]bool) []string {
	var unused []model.Employee
	for _, emp := range pool {
		if !used[emp.ID] {
			unused = append(unused, emp)
		}
	}

	var assigned []string
	seniors := availability.FilterByLevel(unused, model.LevelSenior)
	for i := 0; i < quota.Seniors && i < len(seniors); i++ {
		assigned = append(assigned, seniors[i].ID)
	}

	juniors := availability.FilterByLevel(unused, model.LevelJunior)
	for i := 0; i < quota.Juniors && i < len(juniors); i++ {
		assigned = append(assigned, juniors[i].ID)
	}

	return assigned
}
