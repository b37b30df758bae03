// Package services orchestrates the core scheduling and task logic against
// the database and the Google API clients. Each service takes a narrow store
// interface describing only the operations it needs.
package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/crewroster/crewroster/internal/config"
	"github.com/crewroster/crewroster/pkg/core/model"
	"github.com/crewroster/crewroster/pkg/core/scheduler"
)

// quotasFromConfig merges configured quota overrides into the built-in
// staffing quotas
func quotasFromConfig(cfg *config.Config) scheduler.QuotaSet {
	overrides := make(scheduler.QuotaSet, len(cfg.QuotaOverrides))
	for _, o := range cfg.QuotaOverrides {
		overrides[model.ShiftType(o.ShiftType)] = model.Quota{
			Seniors: o.Seniors,
			Juniors: o.Juniors,
		}
	}
	return scheduler.DefaultQuotas().Merge(overrides)
}

// holidayWarnings reports which configured holiday rules fall on any of the
// given dates. Generation proceeds regardless; warnings are advisory.
func holidayWarnings(holidays []config.HolidayRule, dates []time.Time) ([]string, error) {
	if len(holidays) == 0 || len(dates) == 0 {
		return nil, nil
	}

	searchStart := dates[0].AddDate(0, 0, -1)
	searchEnd := dates[len(dates)-1].AddDate(0, 0, 1)

	var warnings []string
	for _, holiday := range holidays {
		rule, err := rrule.StrToRRule(holiday.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule for holiday %s: %w", holiday.Name, err)
		}
		rule.DTStart(searchStart)

		occurrences := rule.Between(searchStart, searchEnd, true)
		for _, occurrence := range occurrences {
			for _, date := range dates {
				if model.SameDate(occurrence, date) {
					warnings = append(warnings, fmt.Sprintf("%s falls on %s", holiday.Name, date.Format(model.DateLayout)))
				}
			}
		}
	}

	return warnings, nil
}
