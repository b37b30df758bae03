package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/crewroster/crewroster/internal/config"
	"github.com/crewroster/crewroster/pkg/core/model"
)

// SchedulePublisher defines the sheets operations needed for publishing a
// schedule
type SchedulePublisher interface {
	CreateSheet(spreadsheetID, sheetTitle string) (int64, error)
	UpdateValues(spreadsheetID, sheetRange string, values [][]interface{}) error
}

// PublishScheduleStore defines the database operations needed for publishing
// a schedule
type PublishScheduleStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetShiftsBetween(ctx context.Context, start, end time.Time) ([]model.Shift, error)
}

// PublishSchedule writes the week's shift grid to the configured schedule
// spreadsheet, one tab per week. Each row lists the date, shift type,
// assigned employee names, and staffing status.
func PublishSchedule(
	ctx context.Context,
	database PublishScheduleStore,
	publisher SchedulePublisher,
	cfg *config.Config,
	logger *zap.Logger,
	weekStart string,
) (int, error) {
	logger.Debug("Starting publishSchedule", zap.String("week_start", weekStart))

	if cfg.ScheduleSheetID == "" {
		return 0, fmt.Errorf("scheduleSheetID is not configured")
	}

	start, err := model.ParseDate(weekStart)
	if err != nil {
		return 0, fmt.Errorf("invalid week start date: %w", err)
	}
	dates := model.WeekDates(start)

	shifts, err := database.GetShiftsBetween(ctx, dates[0], dates[len(dates)-1])
	if err != nil {
		return 0, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	if len(shifts) == 0 {
		return 0, fmt.Errorf("no shifts found for week starting %s - generate the week first", weekStart)
	}
	logger.Debug("Found shifts", zap.Int("count", len(shifts)))

	roster, err := database.GetEmployees(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch employees: %w", err)
	}
	names := make(map[string]string, len(roster))
	for _, emp := range roster {
		names[emp.ID] = emp.Name
	}

	sort.SliceStable(shifts, func(i, j int) bool {
		if !model.SameDate(shifts[i].Date, shifts[j].Date) {
			return shifts[i].Date.Before(shifts[j].Date)
		}
		return shifts[i].Type < shifts[j].Type
	})

	values := [][]interface{}{
		{"Date", "Shift", "Employees", "Status"},
	}
	for _, shift := range shifts {
		assigned := make([]string, 0, len(shift.EmployeeIDs))
		for _, id := range shift.EmployeeIDs {
			name := names[id]
			if name == "" {
				name = id
			}
			assigned = append(assigned, name)
		}
		values = append(values, []interface{}{
			shift.Date.Format(model.DateLayout),
			string(shift.Type),
			strings.Join(assigned, ", "),
			string(shift.StaffingStatus()),
		})
	}

	tabName := "Week " + start.Format(model.DateLayout)

	// Tab may already exist from a previous publish; overwrite its contents
	// either way
	if _, err := publisher.CreateSheet(cfg.ScheduleSheetID, tabName); err != nil {
		logger.Debug("Create sheet failed, assuming tab exists", zap.String("tab", tabName), zap.Error(err))
	}

	if err := publisher.UpdateValues(cfg.ScheduleSheetID, fmt.Sprintf("%s!A1", tabName), values); err != nil {
		return 0, fmt.Errorf("failed to write schedule: %w", err)
	}

	logger.Info("Schedule published",
		zap.String("tab", tabName),
		zap.Int("rows", len(values)-1))

	return len(values) - 1, nil
}
