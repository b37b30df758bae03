package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crewroster/crewroster/pkg/core/model"
)

// AddTaskInput is the validated shape of a new task
type AddTaskInput struct {
	Title             string               `validate:"required,min=3,max=100"`
	Description       string               `validate:"omitempty,max=500"`
	Difficulty        model.TaskDifficulty `validate:"required,oneof=Easy Medium Hard"`
	SkillRequired     string               `validate:"required,min=2,max=50"`
	Priority          model.TaskPriority   `validate:"required,oneof=Low Medium High"`
	SkillPointsReward int                  `validate:"required,min=1,max=100"`
}

// AddTaskStore defines the database operations needed for creating a task
type AddTaskStore interface {
	InsertTask(task *model.Task) error
}

var taskValidate = validator.New()

// AddTask validates and files a new task in Pending status
func AddTask(
	ctx context.Context,
	database AddTaskStore,
	logger *zap.Logger,
	input AddTaskInput,
) (*model.Task, error) {
	logger.Debug("Starting addTask",
		zap.String("title", input.Title),
		zap.String("skill_required", input.SkillRequired))

	if err := taskValidate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	task := &model.Task{
		ID:                uuid.New().String(),
		Title:             input.Title,
		Description:       input.Description,
		Difficulty:        input.Difficulty,
		SkillRequired:     input.SkillRequired,
		Priority:          input.Priority,
		SkillPointsReward: input.SkillPointsReward,
		Status:            model.TaskPending,
	}

	if err := database.InsertTask(task); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	logger.Info("Task created",
		zap.String("task_id", task.ID),
		zap.String("difficulty", string(task.Difficulty)),
		zap.Int("reward", task.SkillPointsReward))

	return task, nil
}
