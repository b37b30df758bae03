package services

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/crewroster/crewroster/pkg/core/model"
	"github.com/crewroster/crewroster/pkg/core/tasks"
)

// DistributeTasksResult contains the distribution outcome
type DistributeTasksResult struct {
	Distribution map[string][]model.Task
	Dropped      []model.Task
	Saved        bool
}

// DistributeTasksStore defines the database operations needed for
// distributing tasks
type DistributeTasksStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetTasks(ctx context.Context) ([]model.Task, error)
	UpdateTask(ctx context.Context, task *model.Task) error
}

// DistributeTasks assigns every unassigned pending task across the roster,
// heaviest tasks first. Tasks with no eligible employee are reported as
// dropped. If dryRun is true nothing is saved.
func DistributeTasks(
	ctx context.Context,
	database DistributeTasksStore,
	logger *zap.Logger,
	rng *rand.Rand,
	dryRun bool,
) (*DistributeTasksResult, error) {
	logger.Debug("Starting distributeTasks", zap.Bool("dry_run", dryRun))

	roster, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	logger.Debug("Found employees", zap.Int("count", len(roster)))

	allTasks, err := database.GetTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	var pending []model.Task
	for _, task := range allTasks {
		if task.Status == model.TaskPending && task.AssignedTo == "" {
			pending = append(pending, task)
		}
	}
	logger.Debug("Unassigned pending tasks", zap.Int("count", len(pending)))

	assigner := tasks.NewAssigner(roster, rng)
	distribution, dropped := assigner.DistributeTasksEqually(pending)

	for _, task := range dropped {
		logger.Warn("No eligible employee for task",
			zap.String("task_id", task.ID),
			zap.String("skill_required", task.SkillRequired))
	}

	saved := false
	if dryRun {
		logger.Info("Dry run mode - distribution not saved")
	} else {
		for employeeID, assigned := range distribution {
			for _, task := range assigned {
				task.AssignedTo = employeeID
				task.Status = model.TaskInProgress
				if err := database.UpdateTask(ctx, &task); err != nil {
					return nil, fmt.Errorf("failed to save assignment of task %s: %w", task.ID, err)
				}
			}
		}
		saved = true
		logger.Info("Distribution saved",
			zap.Int("assigned", len(pending)-len(dropped)),
			zap.Int("dropped", len(dropped)))
	}

	return &DistributeTasksResult{
		Distribution: distribution,
		Dropped:      dropped,
		Saved:        saved,
	}, nil
}
