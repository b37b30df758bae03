package scheduler

import "github.com/crewroster/crewroster/pkg/core/model"

// QuotaSet maps each shift type to its staffing quota
type QuotaSet map[model.ShiftType]model.Quota

// DefaultQuotas returns the standard staffing configuration. Weekend types
// carry AlternateWith so that a rotation-only override (both counts zero)
// falls back to the senior/junior alternation pattern.
func DefaultQuotas() QuotaSet {
	return QuotaSet{
		model.ShiftMorning:   {Seniors: 1, Juniors: 1},
		model.ShiftGeneral:   {Seniors: 2, Juniors: 3},
		model.ShiftAfternoon: {Seniors: 1, Juniors: 1},
		model.ShiftNight:     {Seniors: 1, Juniors: 1},

		model.ShiftWeekendMorning:   {Seniors: 1, Juniors: 0, AlternateWith: model.LevelSenior},
		model.ShiftWeekendAfternoon: {Seniors: 0, Juniors: 1, AlternateWith: model.LevelJunior},
		model.ShiftWeekendNight:     {Seniors: 1, Juniors: 0, AlternateWith: model.LevelSenior},
	}
}

// Merge returns a copy of the quota set with the given overrides applied
func (q QuotaSet) Merge(overrides QuotaSet) QuotaSet {
	merged := make(QuotaSet, len(q))
	for t, quota := range q {
		merged[t] = quota
	}
	for t, quota := range overrides {
		merged[t] = quota
	}
	return merged
}
