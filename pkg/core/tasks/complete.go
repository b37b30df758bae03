package tasks

import (
	"errors"
	"fmt"
	"time"

	"github.com/crewroster/crewroster/pkg/core/model"
)

var (
	// ErrAlreadyCompleted guards the award-exactly-once invariant
	ErrAlreadyCompleted = errors.New("task is already completed")

	// ErrNotAssigned means completion was attempted on an unassigned task
	ErrNotAssigned = errors.New("task is not assigned to an employee")
)

// Complete marks the task completed and credits the assignee: the skill
// point reward is added and the completed-task counter incremented exactly
// once. The employee must be the task's assignee.
func Complete(task *model.Task, emp *model.Employee, now time.Time) error {
	if task.Status == model.TaskCompleted {
		return fmt.Errorf("%w: %s", ErrAlreadyCompleted, task.ID)
	}
	if task.AssignedTo == "" {
		return fmt.Errorf("%w: %s", ErrNotAssigned, task.ID)
	}
	if task.AssignedTo != emp.ID {
		return fmt.Errorf("task %s is assigned to %s, not %s", task.ID, task.AssignedTo, emp.ID)
	}

	task.Status = model.TaskCompleted
	completedAt := now
	task.CompletedAt = &completedAt

	emp.SkillPoints += task.SkillPointsReward
	emp.TasksCompleted++
	return nil
}
