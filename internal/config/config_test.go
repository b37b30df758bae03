package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crewroster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/crewroster_test")

	path := writeConfigFile(t, `
rosterSheetID: sheet-123
rosterTab: Roster
scheduleSheetID: sheet-456
gmailSender: scheduling@example.com
quotaOverrides:
  - shiftType: General
    seniors: 3
    juniors: 4
holidays:
  - name: Christmas
    rrule: "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25"
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "sheet-123", cfg.RosterSheetID)
	assert.Equal(t, "postgres://localhost/crewroster_test", cfg.DatabaseURL)
	require.Len(t, cfg.QuotaOverrides, 1)
	assert.Equal(t, "General", cfg.QuotaOverrides[0].ShiftType)
	assert.Equal(t, 3, cfg.QuotaOverrides[0].Seniors)
	require.Len(t, cfg.Holidays, 1)
	assert.Equal(t, "Christmas", cfg.Holidays[0].Name)
}

func TestLoadFromPath_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	path := writeConfigFile(t, `
rosterSheetID: sheet-123
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_UnknownShiftType(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/crewroster_test")

	path := writeConfigFile(t, `
quotaOverrides:
  - shiftType: Twilight
    seniors: 1
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_InvalidHolidayRule(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/crewroster_test")

	path := writeConfigFile(t, `
holidays:
  - name: Broken
    rrule: "FREQ=NOT_A_FREQ"
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "holidays[0]")
}

func TestLoadFromPath_NegativeQuota(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/crewroster_test")

	path := writeConfigFile(t, `
quotaOverrides:
  - shiftType: Night
    seniors: -1
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_FileMissing(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
