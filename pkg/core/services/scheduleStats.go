package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/crewroster/crewroster/pkg/core/model"
	"github.com/crewroster/crewroster/pkg/core/scheduler"
	"github.com/crewroster/crewroster/pkg/core/tasks"
)

// ScheduleStatsResult bundles the schedule, weekend fairness, and task
// figures for a reporting window
type ScheduleStatsResult struct {
	Start    time.Time
	End      time.Time
	Schedule scheduler.ScheduleStats
	Weekends map[string]scheduler.LevelBreakdown
	Tasks    tasks.Stats
}

// ScheduleStatsStore defines the database operations needed for the
// statistics report
type ScheduleStatsStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetShiftsBetween(ctx context.Context, start, end time.Time) ([]model.Shift, error)
	GetTasks(ctx context.Context) ([]model.Task, error)
}

// ScheduleStats computes workload, coverage, weekend fairness, and task
// completion figures over the inclusive [start, end] date range
func ScheduleStats(
	ctx context.Context,
	database ScheduleStatsStore,
	logger *zap.Logger,
	start, end string,
) (*ScheduleStatsResult, error) {
	logger.Debug("Starting scheduleStats",
		zap.String("start", start),
		zap.String("end", end))

	from, err := model.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	to, err := model.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("end date %s precedes start date %s", end, start)
	}

	shifts, err := database.GetShiftsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	logger.Debug("Found shifts", zap.Int("count", len(shifts)))

	roster, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	allTasks, err := database.GetTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	result := &ScheduleStatsResult{
		Start:    from,
		End:      to,
		Schedule: scheduler.ComputeStats(shifts),
		Weekends: scheduler.WeekendDistribution(roster),
		Tasks:    tasks.ComputeStats(allTasks),
	}

	logger.Info("Statistics computed",
		zap.Int("shifts", result.Schedule.TotalShifts),
		zap.Int("employees", len(roster)),
		zap.Int("tasks", result.Tasks.Total))

	return result, nil
}
