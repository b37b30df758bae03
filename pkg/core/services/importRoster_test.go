package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/crewroster/crewroster/internal/config"
	"github.com/crewroster/crewroster/pkg/core/model"
	"github.com/crewroster/crewroster/pkg/sheetssql"
)

// mockRosterSheets implements sheetssql.SheetsClient over an in-memory table
type mockRosterSheets struct {
	rows [][]interface{}
}

func (m *mockRosterSheets) GetValues(spreadsheetID, sheetRange string) ([][]interface{}, error) {
	if strings.Contains(sheetRange, "!") {
		// Schema verification reads only the header and type rows
		return m.rows[:2], nil
	}
	return m.rows, nil
}

func (m *mockRosterSheets) AppendRows(spreadsheetID, sheetRange string, values [][]interface{}) error {
	m.rows = append(m.rows, values...)
	return nil
}

func (m *mockRosterSheets) CreateSheet(spreadsheetID, sheetTitle string) (int64, error) {
	return 1, nil
}

func (m *mockRosterSheets) ListSheets(spreadsheetID string) ([]string, error) {
	return []string{"roster_entry"}, nil
}

// mockImportStore implements ImportRosterStore for testing
type mockImportStore struct {
	existing []model.Employee
	inserted []model.Employee
}

func (m *mockImportStore) GetEmployees(ctx context.Context) ([]model.Employee, error) {
	return m.existing, nil
}

func (m *mockImportStore) InsertEmployees(employees []model.Employee) error {
	m.inserted = append(m.inserted, employees...)
	return nil
}

func rosterSheetDB(t *testing.T, dataRows ...[]interface{}) *sheetssql.DB {
	t.Helper()

	schema, err := sheetssql.SchemaFromModels(RosterEntry{})
	require.NoError(t, err)

	client := &mockRosterSheets{
		rows: [][]interface{}{
			{"id", "name", "email", "skill_level", "skills", "weekend_off_first", "weekend_off_second", "weekend_shifts_worked", "active"},
			{"uuid", "text", "text", "text", "text", "date", "date", "int", "bool"},
		},
	}
	client.rows = append(client.rows, dataRows...)

	db, err := sheetssql.NewDB(client, "roster-sheet", schema)
	require.NoError(t, err)
	return db
}

func importTestConfig() *config.Config {
	return &config.Config{RosterSheetID: "roster-sheet", RosterTab: "roster_entry"}
}

func TestImportRoster_InsertsNewEmployees(t *testing.T) {
	sheetDB := rosterSheetDB(t,
		[]interface{}{"e1", "Ada", "ada@example.com", "Senior", "Go; SQL", "2024-02-03", "2024-03-02", "4", "true"},
		[]interface{}{"e2", "Ben", "ben@example.com", "Junior", "Go", "", "", "0", "true"},
	)
	store := &mockImportStore{}

	imported, err := ImportRoster(context.Background(), store, sheetDB, importTestConfig(), zap.NewNop(), false)
	require.NoError(t, err)

	require.Len(t, imported, 2)
	require.Len(t, store.inserted, 2)

	ada := store.inserted[0]
	assert.Equal(t, "e1", ada.ID)
	assert.Equal(t, model.LevelSenior, ada.SkillLevel)
	assert.Equal(t, []string{"Go", "SQL"}, ada.Skills)
	assert.Equal(t, 4, ada.WeekendShiftsWorked)
	assert.Equal(t, date(t, "2024-02-03"), ada.WeekendsOff[0])
	assert.Equal(t, date(t, "2024-03-02"), ada.WeekendsOff[1])
	assert.True(t, ada.Active)

	ben := store.inserted[1]
	assert.True(t, ben.WeekendsOff[0].IsZero())
}

func TestImportRoster_SkipsKnownEmployees(t *testing.T) {
	sheetDB := rosterSheetDB(t,
		[]interface{}{"e1", "Ada", "ada@example.com", "Senior", "Go", "", "", "0", "true"},
		[]interface{}{"e2", "Ben", "ben@example.com", "Junior", "Go", "", "", "0", "true"},
	)
	store := &mockImportStore{existing: []model.Employee{{ID: "e1"}}}

	imported, err := ImportRoster(context.Background(), store, sheetDB, importTestConfig(), zap.NewNop(), false)
	require.NoError(t, err)

	require.Len(t, imported, 1)
	assert.Equal(t, "e2", imported[0].ID)
}

func TestImportRoster_SkipsEmptyIDRows(t *testing.T) {
	sheetDB := rosterSheetDB(t,
		[]interface{}{"", "Blank", "", "Senior", "", "", "", "0", "true"},
		[]interface{}{"e2", "Ben", "ben@example.com", "Junior", "Go", "", "", "0", "true"},
	)
	store := &mockImportStore{}

	imported, err := ImportRoster(context.Background(), store, sheetDB, importTestConfig(), zap.NewNop(), false)
	require.NoError(t, err)

	require.Len(t, imported, 1)
	assert.Equal(t, "e2", imported[0].ID)
}

func TestImportRoster_RejectsUnknownSkillLevel(t *testing.T) {
	sheetDB := rosterSheetDB(t,
		[]interface{}{"e1", "Ada", "ada@example.com", "Principal", "Go", "", "", "0", "true"},
	)
	store := &mockImportStore{}

	_, err := ImportRoster(context.Background(), store, sheetDB, importTestConfig(), zap.NewNop(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skill level")
	assert.Empty(t, store.inserted)
}

func TestImportRoster_DryRunDoesNotSave(t *testing.T) {
	sheetDB := rosterSheetDB(t,
		[]interface{}{"e1", "Ada", "ada@example.com", "Senior", "Go", "", "", "0", "true"},
	)
	store := &mockImportStore{}

	imported, err := ImportRoster(context.Background(), store, sheetDB, importTestConfig(), zap.NewNop(), true)
	require.NoError(t, err)

	assert.Len(t, imported, 1)
	assert.Empty(t, store.inserted)
}
