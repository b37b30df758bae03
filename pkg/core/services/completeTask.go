package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/crewroster/crewroster/pkg/core/model"
	"github.com/crewroster/crewroster/pkg/core/tasks"
)

// CompleteTaskResult contains the completion outcome
type CompleteTaskResult struct {
	Task           model.Task
	SkillPoints    int
	TasksCompleted int
}

// CompleteTaskStore defines the database operations needed for completing a
// task
type CompleteTaskStore interface {
	GetTask(ctx context.Context, id string) (*model.Task, error)
	GetEmployee(ctx context.Context, id string) (*model.Employee, error)
	UpdateTask(ctx context.Context, task *model.Task) error
	UpdateTaskProgress(ctx context.Context, emp *model.Employee) error
}

// CompleteTask marks the task completed by its assignee and credits the
// skill point reward exactly once
func CompleteTask(
	ctx context.Context,
	database CompleteTaskStore,
	logger *zap.Logger,
	taskID string,
	employeeID string,
) (*CompleteTaskResult, error) {
	logger.Debug("Starting completeTask",
		zap.String("task_id", taskID),
		zap.String("employee_id", employeeID))

	task, err := database.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}

	emp, err := database.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}

	if err := tasks.Complete(task, emp, time.Now()); err != nil {
		return nil, err
	}

	if err := database.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}
	if err := database.UpdateTaskProgress(ctx, emp); err != nil {
		return nil, fmt.Errorf("failed to save employee progress: %w", err)
	}

	logger.Info("Task completed",
		zap.String("task_id", taskID),
		zap.String("employee_id", employeeID),
		zap.Int("reward", task.SkillPointsReward))

	return &CompleteTaskResult{
		Task:           *task,
		SkillPoints:    emp.SkillPoints,
		TasksCompleted: emp.TasksCompleted,
	}, nil
}
