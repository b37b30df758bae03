package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/crewroster/crewroster/internal/config"
	"github.com/crewroster/crewroster/pkg/core/model"
	"github.com/crewroster/crewroster/pkg/sheetssql"
)

// RosterEntry is the sheet row shape for roster import. Skills are
// semicolon-separated; the weekend-off columns hold YYYY-MM-DD dates and may
// be empty.
type RosterEntry struct {
	ID                  string `ssql_header:"id" ssql_type:"uuid"`
	Name                string `ssql_header:"name" ssql_type:"text"`
	Email               string `ssql_header:"email" ssql_type:"text"`
	SkillLevel          string `ssql_header:"skill_level" ssql_type:"text"`
	Skills              string `ssql_header:"skills" ssql_type:"text"`
	WeekendOffFirst     string `ssql_header:"weekend_off_first" ssql_type:"date"`
	WeekendOffSecond    string `ssql_header:"weekend_off_second" ssql_type:"date"`
	WeekendShiftsWorked int    `ssql_header:"weekend_shifts_worked" ssql_type:"int"`
	Active              bool   `ssql_header:"active" ssql_type:"bool"`
}

// ImportRosterStore defines the database operations needed for importing a
// roster
type ImportRosterStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	InsertEmployees(employees []model.Employee) error
}

// ImportRoster reads the roster tab of the configured spreadsheet and inserts
// every entry not already present in the database. Existing employees are
// never overwritten. If dryRun is true nothing is saved.
func ImportRoster(
	ctx context.Context,
	database ImportRosterStore,
	sheetDB *sheetssql.DB,
	cfg *config.Config,
	logger *zap.Logger,
	dryRun bool,
) ([]model.Employee, error) {
	logger.Debug("Starting importRoster",
		zap.String("roster_tab", cfg.RosterTab),
		zap.Bool("dry_run", dryRun))

	if cfg.RosterTab == "" {
		return nil, fmt.Errorf("rosterTab is not configured")
	}

	entries, err := sheetssql.GetTableAs[RosterEntry](sheetDB, cfg.RosterTab)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster sheet: %w", err)
	}
	logger.Debug("Found roster entries", zap.Int("count", len(entries)))

	existing, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, emp := range existing {
		known[emp.ID] = true
	}

	var imported []model.Employee
	for i, entry := range entries {
		if entry.ID == "" {
			logger.Warn("Skipping roster row with empty id", zap.Int("row", i+3))
			continue
		}
		if known[entry.ID] {
			continue
		}

		emp, err := employeeFromEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid roster row %d: %w", i+3, err)
		}
		imported = append(imported, emp)
	}

	if dryRun {
		logger.Info("Dry run mode - roster not saved", zap.Int("new", len(imported)))
		return imported, nil
	}

	if err := database.InsertEmployees(imported); err != nil {
		return nil, fmt.Errorf("failed to save employees: %w", err)
	}

	logger.Info("Roster imported",
		zap.Int("new", len(imported)),
		zap.Int("skipped", len(entries)-len(imported)))

	return imported, nil
}

func employeeFromEntry(entry RosterEntry) (model.Employee, error) {
	level := model.SkillLevel(entry.SkillLevel)
	if level != model.LevelSenior && level != model.LevelJunior {
		return model.Employee{}, fmt.Errorf("unknown skill level %q", entry.SkillLevel)
	}

	emp := model.Employee{
		ID:                  entry.ID,
		Name:                entry.Name,
		Email:               entry.Email,
		SkillLevel:          level,
		WeekendShiftsWorked: entry.WeekendShiftsWorked,
		Active:              entry.Active,
	}

	for _, skill := range strings.Split(entry.Skills, ";") {
		if skill = strings.TrimSpace(skill); skill != "" {
			emp.Skills = append(emp.Skills, skill)
		}
	}

	for i, raw := range []string{entry.WeekendOffFirst, entry.WeekendOffSecond} {
		if raw == "" {
			continue
		}
		date, err := model.ParseDate(raw)
		if err != nil {
			return model.Employee{}, fmt.Errorf("bad weekend-off date %q: %w", raw, err)
		}
		emp.WeekendsOff[i] = date
	}

	return emp, nil
}
