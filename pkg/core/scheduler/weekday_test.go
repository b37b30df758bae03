package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewroster/crewroster/pkg/core/model"
)

func TestAllocateWeekday_ProducesAllFourTypes(t *testing.T) {
	roster := makeRoster(6, 4)
	shifts := AllocateWeekday(date("2024-01-22"), roster, nil, DefaultQuotas())

	require.Len(t, shifts, 4)
	assert.Equal(t, model.ShiftMorning, shifts[0].Type)
	assert.Equal(t, model.ShiftGeneral, shifts[1].Type)
	assert.Equal(t, model.ShiftAfternoon, shifts[2].Type)
	assert.Equal(t, model.ShiftNight, shifts[3].Type)
	for _, s := range shifts {
		assert.False(t, s.IsWeekend)
	}
}

func TestAllocateWeekday_RespectsQuotas(t *testing.T) {
	roster := makeRoster(10, 10)
	shifts := AllocateWeekday(date("2024-01-22"), roster, nil, DefaultQuotas())

	general := shiftByType(shifts, model.ShiftGeneral)
	require.NotNil(t, general)
	assert.Len(t, general.EmployeeIDs, 5) // 2 seniors + 3 juniors

	for _, shiftType := range []model.ShiftType{model.ShiftMorning, model.ShiftAfternoon, model.ShiftNight} {
		s := shiftByType(shifts, shiftType)
		require.NotNil(t, s)
		assert.Len(t, s.EmployeeIDs, 2) // 1 senior + 1 junior
	}
}

func TestAllocateWeekday_SeniorsFilledBeforeJuniors(t *testing.T) {
	roster := makeRoster(2, 3)
	shifts := AllocateWeekday(date("2024-01-22"), roster, nil, DefaultQuotas())

	morning := shiftByType(shifts, model.ShiftMorning)
	require.Len(t, morning.EmployeeIDs, 2)
	assert.Equal(t, "s1", morning.EmployeeIDs[0])
	assert.Equal(t, "j1", morning.EmployeeIDs[1])
}

func TestAllocateWeekday_NoEmployeeUsedTwiceOnOneDate(t *testing.T) {
	roster := makeRoster(6, 8)
	shifts := AllocateWeekday(date("2024-01-22"), roster, nil, DefaultQuotas())

	seen := make(map[string]bool)
	for _, shift := range shifts {
		for _, id := range shift.EmployeeIDs {
			assert.False(t, seen[id], "employee %s assigned to more than one shift on the same date", id)
			seen[id] = true
		}
	}
}

func TestAllocateWeekday_UnderstaffedShiftStillProduced(t *testing.T) {
	// One senior, no juniors: everything downstream of Morning runs short
	roster := makeRoster(1, 0)
	shifts := AllocateWeekday(date("2024-01-22"), roster, nil, DefaultQuotas())

	require.Len(t, shifts, 4)
	morning := shiftByType(shifts, model.ShiftMorning)
	assert.Equal(t, []string{"s1"}, morning.EmployeeIDs)

	general := shiftByType(shifts, model.ShiftGeneral)
	assert.Empty(t, general.EmployeeIDs)
	assert.Equal(t, model.StaffingUnstaffed, general.StaffingStatus())
}

func TestAllocateWeekday_RosterOrderDecides(t *testing.T) {
	roster := []model.Employee{
		{ID: "s2", SkillLevel: model.LevelSenior, Active: true},
		{ID: "s1", SkillLevel: model.LevelSenior, Active: true},
		{ID: "j1", SkillLevel: model.LevelJunior, Active: true},
	}
	shifts := AllocateWeekday(date("2024-01-22"), roster, nil, DefaultQuotas())

	morning := shiftByType(shifts, model.ShiftMorning)
	require.Len(t, morning.EmployeeIDs, 2)
	// No secondary sort: s2 comes first because the roster says so
	assert.Equal(t, "s2", morning.EmployeeIDs[0])
}

func TestAllocateWeekday_ExcludesEmployeesOnLeave(t *testing.T) {
	roster := makeRoster(2, 2)
	leaves := []model.Leave{
		{EmployeeID: "s1", StartDate: date("2024-01-22"), EndDate: date("2024-01-22"), Status: model.LeaveApproved},
	}

	shifts := AllocateWeekday(date("2024-01-22"), roster, leaves, DefaultQuotas())

	for _, shift := range shifts {
		assert.NotContains(t, shift.EmployeeIDs, "s1")
	}
}
