package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/crewroster/crewroster/internal/config"
	"github.com/crewroster/crewroster/pkg/core/model"
	"github.com/crewroster/crewroster/pkg/core/scheduler"
)

// GenerateWeekResult contains the generation results
type GenerateWeekResult struct {
	WeekStart       time.Time
	Shifts          []model.Shift
	Unfilled        []scheduler.UnfilledSlot
	HolidayWarnings []string
	Saved           bool
}

// GenerateWeekStore defines the database operations needed for generating a
// week of shifts
type GenerateWeekStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetLeaves(ctx context.Context) ([]model.Leave, error)
	GetShiftsBetween(ctx context.Context, start, end time.Time) ([]model.Shift, error)
	InsertShifts(shifts []model.Shift) error
	RecordWeekendShifts(ctx context.Context, appended map[string][]model.WeekendShiftRecord) error
}

// GenerateWeek generates the full shift schedule for the 7 days starting at
// weekStart and persists it together with the updated weekend fairness
// counters. If dryRun is true nothing is saved.
func GenerateWeek(
	ctx context.Context,
	database GenerateWeekStore,
	cfg *config.Config,
	logger *zap.Logger,
	weekStart string,
	dryRun bool,
) (*GenerateWeekResult, error) {
	logger.Debug("Starting generateWeek",
		zap.String("week_start", weekStart),
		zap.Bool("dry_run", dryRun))

	start, err := model.ParseDate(weekStart)
	if err != nil {
		return nil, fmt.Errorf("invalid week start date: %w", err)
	}
	dates := model.WeekDates(start)

	logger.Debug("Fetching roster")
	roster, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	logger.Debug("Found employees", zap.Int("count", len(roster)))

	if len(roster) == 0 {
		return nil, fmt.Errorf("no employees found - import or add a roster first")
	}

	logger.Debug("Fetching leaves")
	leaves, err := database.GetLeaves(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaves: %w", err)
	}
	logger.Debug("Found leaves", zap.Int("count", len(leaves)))

	logger.Debug("Fetching existing shifts for conflict check")
	existing, err := database.GetShiftsBetween(ctx, dates[0], dates[len(dates)-1])
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing shifts: %w", err)
	}
	logger.Debug("Found existing shifts", zap.Int("count", len(existing)))

	quotas := quotasFromConfig(cfg)
	state := scheduler.NewRotationState(roster)

	logger.Info("Running week allocation")
	schedule, err := scheduler.GenerateWeek(start, roster, leaves, quotas, state, existing)
	if err != nil {
		return nil, err
	}

	logger.Info("Week allocation completed",
		zap.Int("shifts", len(schedule.Shifts)),
		zap.Int("unfilled", len(schedule.Unfilled)))

	for _, slot := range schedule.Unfilled {
		logger.Warn("Unfilled slot",
			zap.String("date", slot.Date.Format(model.DateLayout)),
			zap.String("shift_type", string(slot.Type)),
			zap.Int("assigned", slot.Assigned),
			zap.Int("required", slot.Required))
	}

	warnings, err := holidayWarnings(cfg.Holidays, dates)
	if err != nil {
		return nil, err
	}
	for _, warning := range warnings {
		logger.Warn("Holiday in generated week", zap.String("warning", warning))
	}

	saved := false
	if dryRun {
		logger.Info("Dry run mode - schedule not saved")
	} else {
		logger.Info("Saving schedule to database", zap.Int("shifts", len(schedule.Shifts)))
		if err := database.InsertShifts(schedule.Shifts); err != nil {
			return nil, fmt.Errorf("failed to save shifts: %w", err)
		}
		if err := database.RecordWeekendShifts(ctx, schedule.State.Appended); err != nil {
			return nil, fmt.Errorf("failed to record weekend counters: %w", err)
		}
		saved = true
		logger.Info("Schedule saved")
	}

	return &GenerateWeekResult{
		WeekStart:       schedule.WeekStart,
		Shifts:          schedule.Shifts,
		Unfilled:        schedule.Unfilled,
		HolidayWarnings: warnings,
		Saved:           saved,
	}, nil
}
