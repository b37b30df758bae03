package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewroster/crewroster/pkg/core/model"
)

func TestComplete_AwardsExactlyOnce(t *testing.T) {
	now := time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC)
	emp := model.Employee{ID: "e1", SkillPoints: 40, TasksCompleted: 3}
	task := model.Task{
		ID:                "t1",
		AssignedTo:        "e1",
		Status:            model.TaskInProgress,
		SkillPointsReward: 12,
	}

	require.NoError(t, Complete(&task, &emp, now))

	assert.Equal(t, model.TaskCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, now, *task.CompletedAt)
	assert.Equal(t, 52, emp.SkillPoints)
	assert.Equal(t, 4, emp.TasksCompleted)

	err := Complete(&task, &emp, now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.Equal(t, 52, emp.SkillPoints)
	assert.Equal(t, 4, emp.TasksCompleted)
}

func TestComplete_UnassignedTask(t *testing.T) {
	emp := model.Employee{ID: "e1"}
	task := model.Task{ID: "t1", Status: model.TaskPending}

	err := Complete(&task, &emp, time.Now())

	assert.ErrorIs(t, err, ErrNotAssigned)
	assert.Equal(t, model.TaskPending, task.Status)
}

func TestComplete_WrongAssignee(t *testing.T) {
	emp := model.Employee{ID: "e2"}
	task := model.Task{ID: "t1", AssignedTo: "e1", Status: model.TaskInProgress}

	err := Complete(&task, &emp, time.Now())

	assert.Error(t, err)
	assert.Equal(t, model.TaskInProgress, task.Status)
	assert.Zero(t, emp.TasksCompleted)
}
