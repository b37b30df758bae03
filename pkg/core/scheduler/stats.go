package scheduler

import "github.com/crewroster/crewroster/pkg/core/model"

// ScheduleStats is a derived read-only view over a set of shifts
type ScheduleStats struct {
	TotalShifts   int
	WeekdayShifts int
	WeekendShifts int

	// EmployeeWorkload counts shifts per employee ID
	EmployeeWorkload map[string]int

	// WeekendWorkload counts weekend shifts per employee ID
	WeekendWorkload map[string]int

	// ShiftCoverage counts shifts per type
	ShiftCoverage map[model.ShiftType]int
}

// ComputeStats aggregates staffing and workload figures from the shifts
func ComputeStats(shifts []model.Shift) ScheduleStats {
	stats := ScheduleStats{
		TotalShifts:      len(shifts),
		EmployeeWorkload: make(map[string]int),
		WeekendWorkload:  make(map[string]int),
		ShiftCoverage:    make(map[model.ShiftType]int),
	}

	for _, shift := range shifts {
		if shift.IsWeekend {
			stats.WeekendShifts++
		} else {
			stats.WeekdayShifts++
		}

		for _, empID := range shift.EmployeeIDs {
			stats.EmployeeWorkload[empID]++
			if shift.IsWeekend {
				stats.WeekendWorkload[empID]++
			}
		}

		stats.ShiftCoverage[shift.Type]++
	}

	return stats
}

// LevelBreakdown splits an employee's weekend history by the level they were
// assigned at
type LevelBreakdown struct {
	Total  int
	Senior int
	Junior int
}

// WeekendDistribution summarizes each roster member's weekend shift history
func WeekendDistribution(roster []model.Employee) map[string]LevelBreakdown {
	distribution := make(map[string]LevelBreakdown, len(roster))
	for _, emp := range roster {
		breakdown := LevelBreakdown{Total: len(emp.WeekendShiftHistory)}
		for _, record := range emp.WeekendShiftHistory {
			if record.Level == model.LevelSenior {
				breakdown.Senior++
			} else {
				breakdown.Junior++
			}
		}
		distribution[emp.ID] = breakdown
	}
	return distribution
}
