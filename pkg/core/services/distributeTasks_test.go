package services

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/crewroster/crewroster/pkg/core/model"
)

// mockDistributeStore implements DistributeTasksStore, RecommendTasksStore
// and ScheduleStatsStore for testing
type mockDistributeStore struct {
	employees []model.Employee
	tasks     []model.Task
	shifts    []model.Shift

	updatedTasks []model.Task
}

func (m *mockDistributeStore) GetEmployees(ctx context.Context) ([]model.Employee, error) {
	return m.employees, nil
}

func (m *mockDistributeStore) GetTasks(ctx context.Context) ([]model.Task, error) {
	return m.tasks, nil
}

func (m *mockDistributeStore) GetShiftsBetween(ctx context.Context, start, end time.Time) ([]model.Shift, error) {
	return m.shifts, nil
}

func (m *mockDistributeStore) UpdateTask(ctx context.Context, task *model.Task) error {
	m.updatedTasks = append(m.updatedTasks, *task)
	return nil
}

func TestDistributeTasks_AssignsAndSaves(t *testing.T) {
	store := &mockDistributeStore{
		employees: []model.Employee{
			{ID: "e1", SkillLevel: model.LevelSenior, Skills: []string{"Go"}, Active: true},
			{ID: "e2", SkillLevel: model.LevelJunior, Skills: []string{"Go"}, Active: true},
		},
		tasks: []model.Task{
			{ID: "t1", SkillRequired: "Go", Difficulty: model.DifficultyEasy, Status: model.TaskPending},
			{ID: "t2", SkillRequired: "Go", Difficulty: model.DifficultyHard, Status: model.TaskPending},
			{ID: "t3", SkillRequired: "Go", Difficulty: model.DifficultyMedium, Status: model.TaskCompleted},
			{ID: "t4", SkillRequired: "Go", Difficulty: model.DifficultyEasy, Status: model.TaskPending, AssignedTo: "e1"},
		},
	}

	result, err := DistributeTasks(context.Background(), store, zap.NewNop(), rand.New(rand.NewSource(42)), false)
	require.NoError(t, err)

	assert.True(t, result.Saved)
	assert.Empty(t, result.Dropped)

	// Only the two unassigned pending tasks are distributed
	total := 0
	for _, assigned := range result.Distribution {
		total += len(assigned)
	}
	assert.Equal(t, 2, total)

	require.Len(t, store.updatedTasks, 2)
	for _, task := range store.updatedTasks {
		assert.NotEmpty(t, task.AssignedTo)
		assert.Equal(t, model.TaskInProgress, task.Status)
	}
}

func TestDistributeTasks_DryRunDoesNotSave(t *testing.T) {
	store := &mockDistributeStore{
		employees: []model.Employee{
			{ID: "e1", SkillLevel: model.LevelSenior, Skills: []string{"Go"}, Active: true},
		},
		tasks: []model.Task{
			{ID: "t1", SkillRequired: "Go", Difficulty: model.DifficultyEasy, Status: model.TaskPending},
		},
	}

	result, err := DistributeTasks(context.Background(), store, zap.NewNop(), nil, true)
	require.NoError(t, err)

	assert.False(t, result.Saved)
	assert.Empty(t, store.updatedTasks)
}

func TestDistributeTasks_ReportsDropped(t *testing.T) {
	store := &mockDistributeStore{
		employees: []model.Employee{
			{ID: "e1", SkillLevel: model.LevelSenior, Skills: []string{"SQL"}, Active: true},
		},
		tasks: []model.Task{
			{ID: "t1", SkillRequired: "Go", Difficulty: model.DifficultyEasy, Status: model.TaskPending},
		},
	}

	result, err := DistributeTasks(context.Background(), store, zap.NewNop(), nil, false)
	require.NoError(t, err)

	require.Len(t, result.Dropped, 1)
	assert.Equal(t, "t1", result.Dropped[0].ID)
	assert.Empty(t, store.updatedTasks)
}

func TestRecommendTasks_OnlyOpenMatchingTasks(t *testing.T) {
	store := &mockDistributeStore{
		employees: []model.Employee{
			{ID: "e1", SkillLevel: model.LevelSenior, Skills: []string{"Go"}, Active: true},
		},
		tasks: []model.Task{
			{ID: "t1", SkillRequired: "Go", Difficulty: model.DifficultyHard, Status: model.TaskPending},
			{ID: "t2", SkillRequired: "SQL", Difficulty: model.DifficultyEasy, Status: model.TaskPending},
			{ID: "t3", SkillRequired: "Go", Difficulty: model.DifficultyEasy, Status: model.TaskCompleted},
		},
	}

	recs, err := RecommendTasks(context.Background(), store, zap.NewNop(), "e1", rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, "t1", recs[0].ID)
}

func TestScheduleStats_AggregatesAllSections(t *testing.T) {
	roster := testRoster()
	roster[0].WeekendShiftHistory = []model.WeekendShiftRecord{
		{Date: date(t, "2024-01-20"), ShiftType: model.ShiftWeekendMorning, Level: model.LevelSenior},
		{Date: date(t, "2024-01-21"), ShiftType: model.ShiftWeekendNight, Level: model.LevelSenior},
	}

	store := &mockDistributeStore{
		employees: roster,
		shifts: []model.Shift{
			{Date: date(t, "2024-01-22"), Type: model.ShiftMorning, EmployeeIDs: []string{"s1", "j1"}},
			{Date: date(t, "2024-01-27"), Type: model.ShiftWeekendMorning, EmployeeIDs: []string{"s1"}, IsWeekend: true},
		},
		tasks: []model.Task{
			{ID: "t1", Status: model.TaskCompleted},
			{ID: "t2", Status: model.TaskPending},
		},
	}

	result, err := ScheduleStats(context.Background(), store, zap.NewNop(), "2024-01-22", "2024-01-28")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Schedule.TotalShifts)
	assert.Equal(t, 1, result.Schedule.WeekendShifts)
	assert.Equal(t, 2, result.Schedule.EmployeeWorkload["s1"])
	assert.Equal(t, 1, result.Schedule.WeekendWorkload["s1"])

	assert.Equal(t, 2, result.Weekends["s1"].Total)
	assert.Equal(t, 2, result.Weekends["s1"].Senior)
	assert.Equal(t, 0, result.Weekends["j1"].Total)

	assert.Equal(t, 2, result.Tasks.Total)
	assert.Equal(t, 50, result.Tasks.CompletionRate)
}

func TestScheduleStats_EndBeforeStart(t *testing.T) {
	store := &mockDistributeStore{}

	_, err := ScheduleStats(context.Background(), store, zap.NewNop(), "2024-01-28", "2024-01-22")
	assert.Error(t, err)
}
