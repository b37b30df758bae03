package services

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/crewroster/crewroster/pkg/core/model"
	"github.com/crewroster/crewroster/pkg/core/tasks"
)

// RecommendTasksStore defines the database operations needed for task
// recommendations
type RecommendTasksStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetTasks(ctx context.Context) ([]model.Task, error)
}

// RecommendTasks returns up to 5 open tasks matching the employee's skills,
// best fit first
func RecommendTasks(
	ctx context.Context,
	database RecommendTasksStore,
	logger *zap.Logger,
	employeeID string,
	rng *rand.Rand,
) ([]model.Task, error) {
	logger.Debug("Starting recommendTasks", zap.String("employee_id", employeeID))

	roster, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	allTasks, err := database.GetTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	var open []model.Task
	for _, task := range allTasks {
		if task.Status == model.TaskPending && task.AssignedTo == "" {
			open = append(open, task)
		}
	}

	assigner := tasks.NewAssigner(roster, rng)
	recommendations := assigner.GetTaskRecommendations(employeeID, open)

	logger.Info("Recommendations computed",
		zap.String("employee_id", employeeID),
		zap.Int("count", len(recommendations)))

	return recommendations, nil
}
