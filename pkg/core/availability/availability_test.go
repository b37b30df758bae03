package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewroster/crewroster/pkg/core/model"
)

func date(s string) time.Time {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAvailableEmployees_SkipsInactive(t *testing.T) {
	roster := []model.Employee{
		{ID: "e1", Active: true},
		{ID: "e2", Active: false},
	}

	available := AvailableEmployees(date("2024-01-22"), roster, nil)

	require.Len(t, available, 1)
	assert.Equal(t, "e1", available[0].ID)
}

func TestAvailableEmployees_SkipsWeekendOffDates(t *testing.T) {
	saturday := date("2024-01-27")
	roster := []model.Employee{
		{ID: "e1", Active: true, WeekendsOff: [2]time.Time{saturday, date("2024-01-28")}},
		{ID: "e2", Active: true, WeekendsOff: [2]time.Time{date("2024-02-03"), date("2024-02-04")}},
	}

	available := AvailableEmployees(saturday, roster, nil)

	require.Len(t, available, 1)
	assert.Equal(t, "e2", available[0].ID)
}

func TestAvailableEmployees_SkipsApprovedLeave(t *testing.T) {
	roster := []model.Employee{
		{ID: "e1", Active: true},
		{ID: "e2", Active: true},
	}
	leaves := []model.Leave{
		{EmployeeID: "e1", StartDate: date("2024-01-20"), EndDate: date("2024-01-25"), Status: model.LeaveApproved},
		{EmployeeID: "e2", StartDate: date("2024-01-20"), EndDate: date("2024-01-25"), Status: model.LeavePending},
	}

	// Pending leave does not block availability, approved does
	available := AvailableEmployees(date("2024-01-22"), roster, leaves)

	require.Len(t, available, 1)
	assert.Equal(t, "e2", available[0].ID)
}

func TestAvailableEmployees_LeaveBoundsInclusive(t *testing.T) {
	roster := []model.Employee{{ID: "e1", Active: true}}
	leaves := []model.Leave{
		{EmployeeID: "e1", StartDate: date("2024-01-22"), EndDate: date("2024-01-24"), Status: model.LeaveApproved},
	}

	assert.Empty(t, AvailableEmployees(date("2024-01-22"), roster, leaves))
	assert.Empty(t, AvailableEmployees(date("2024-01-24"), roster, leaves))
	assert.Len(t, AvailableEmployees(date("2024-01-25"), roster, leaves), 1)
}

func TestAvailableEmployees_EmptyResultIsNotAnError(t *testing.T) {
	roster := []model.Employee{{ID: "e1", Active: false}}

	available := AvailableEmployees(date("2024-01-22"), roster, nil)
	assert.Empty(t, available)
}

func TestAvailableEmployees_PreservesRosterOrder(t *testing.T) {
	roster := []model.Employee{
		{ID: "e3", Active: true},
		{ID: "e1", Active: true},
		{ID: "e2", Active: true},
	}

	available := AvailableEmployees(date("2024-01-22"), roster, nil)

	require.Len(t, available, 3)
	assert.Equal(t, "e3", available[0].ID)
	assert.Equal(t, "e1", available[1].ID)
	assert.Equal(t, "e2", available[2].ID)
}

func TestFilterByLevel(t *testing.T) {
	employees := []model.Employee{
		{ID: "s1", SkillLevel: model.LevelSenior},
		{ID: "j1", SkillLevel: model.LevelJunior},
		{ID: "s2", SkillLevel: model.LevelSenior},
	}

	seniors := FilterByLevel(employees, model.LevelSenior)
	require.Len(t, seniors, 2)
	assert.Equal(t, "s1", seniors[0].ID)
	assert.Equal(t, "s2", seniors[1].ID)

	juniors := FilterByLevel(employees, model.LevelJunior)
	require.Len(t, juniors, 1)
	assert.Equal(t, "j1", juniors[0].ID)
}
