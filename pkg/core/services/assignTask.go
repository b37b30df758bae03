package services

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/crewroster/crewroster/pkg/core/model"
	"github.com/crewroster/crewroster/pkg/core/tasks"
)

// AssignTaskResult contains the assignment outcome
type AssignTaskResult struct {
	Task       model.Task
	AssignedTo string
	Assigned   bool
}

// AssignTaskStore defines the database operations needed for assigning a task
type AssignTaskStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetTask(ctx context.Context, id string) (*model.Task, error)
	UpdateTask(ctx context.Context, task *model.Task) error
}

// AssignTask scores the roster against the task's required skill and assigns
// the best match. A task nobody is eligible for is reported, not an error.
// rng may be nil for the default fixed-seed source.
func AssignTask(
	ctx context.Context,
	database AssignTaskStore,
	logger *zap.Logger,
	taskID string,
	rng *rand.Rand,
) (*AssignTaskResult, error) {
	logger.Debug("Starting assignTask", zap.String("task_id", taskID))

	task, err := database.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}

	if task.Status == model.TaskCompleted {
		return nil, fmt.Errorf("task %s is already completed", taskID)
	}

	roster, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	logger.Debug("Found employees", zap.Int("count", len(roster)))

	assigner := tasks.NewAssigner(roster, rng)
	employeeID, ok := assigner.AssignTask(*task)
	if !ok {
		logger.Warn("No eligible employee for task",
			zap.String("task_id", taskID),
			zap.String("skill_required", task.SkillRequired))
		return &AssignTaskResult{Task: *task}, nil
	}

	task.AssignedTo = employeeID
	task.Status = model.TaskInProgress

	if err := database.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to save task assignment: %w", err)
	}

	logger.Info("Task assigned",
		zap.String("task_id", taskID),
		zap.String("employee_id", employeeID))

	return &AssignTaskResult{
		Task:       *task,
		AssignedTo: employeeID,
		Assigned:   true,
	}, nil
}
