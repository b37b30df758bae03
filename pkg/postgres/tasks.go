package postgres

import (
	"context"
	"fmt"

	"github.com/crewroster/crewroster/pkg/core/model"
)

const taskColumns = `id, title, description, difficulty, skill_required,
	priority, skill_points_reward, assigned_to, status, completed_at`

// GetTasks retrieves all tasks
func (d *DB) GetTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM task
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, nil
}

// GetTask retrieves a single task by id
func (d *DB) GetTask(ctx context.Context, id string) (*model.Task, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT `+taskColumns+`
		FROM task
		WHERE id = $1
	`, id)

	t, err := scanTask(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", id, err)
	}

	return &t, nil
}

// InsertTask inserts a new task
func (d *DB) InsertTask(task *model.Task) error {
	ctx := context.Background()
	_, err := d.pool.Exec(ctx, `
		INSERT INTO task (`+taskColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, task.ID, task.Title, task.Description, task.Difficulty, task.SkillRequired,
		task.Priority, task.SkillPointsReward, task.AssignedTo, task.Status, task.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

// UpdateTask persists changes to an existing task
func (d *DB) UpdateTask(ctx context.Context, task *model.Task) error {
	_, err := d.pool.Exec(ctx, `
		UPDATE task
		SET title = $2, description = $3, difficulty = $4, skill_required = $5,
			priority = $6, skill_points_reward = $7, assigned_to = $8,
			status = $9, completed_at = $10
		WHERE id = $1
	`, task.ID, task.Title, task.Description, task.Difficulty, task.SkillRequired,
		task.Priority, task.SkillPointsReward, task.AssignedTo, task.Status, task.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", task.ID, err)
	}
	return nil
}

func scanTask(row rowScanner) (model.Task, error) {
	var t model.Task
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Difficulty, &t.SkillRequired,
		&t.Priority, &t.SkillPointsReward, &t.AssignedTo, &t.Status, &t.CompletedAt); err != nil {
		return model.Task{}, fmt.Errorf("failed to scan task: %w", err)
	}
	return t, nil
}
