package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/crewroster/crewroster/pkg/core/model"
)

const employeeColumns = `id, name, email, skill_level, skills, tasks_completed,
	skill_points, weekend_off_first, weekend_off_second, weekend_shifts_worked, active`

// GetEmployees retrieves the full roster with weekend shift history, in
// stable id order
func (d *DB) GetEmployees(ctx context.Context) ([]model.Employee, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+employeeColumns+`
		FROM employee
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	history, err := d.weekendHistory(ctx)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		employees[i].WeekendShiftHistory = history[employees[i].ID]
	}

	return employees, nil
}

// GetEmployee retrieves a single employee by id
func (d *DB) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT `+employeeColumns+`
		FROM employee
		WHERE id = $1
	`, id)

	emp, err := scanEmployee(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %s: %w", id, err)
	}

	history, err := d.weekendHistoryFor(ctx, id)
	if err != nil {
		return nil, err
	}
	emp.WeekendShiftHistory = history

	return &emp, nil
}

// InsertEmployees inserts employee records into the database
func (d *DB) InsertEmployees(employees []model.Employee) error {
	if len(employees) == 0 {
		return nil
	}

	ctx := context.Background()
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, emp := range employees {
		_, err := tx.Exec(ctx, `
			INSERT INTO employee (`+employeeColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, emp.ID, emp.Name, emp.Email, emp.SkillLevel, emp.Skills,
			emp.TasksCompleted, emp.SkillPoints,
			nullableDate(emp.WeekendsOff[0]), nullableDate(emp.WeekendsOff[1]),
			emp.WeekendShiftsWorked, emp.Active)
		if err != nil {
			return fmt.Errorf("failed to insert employee %s: %w", emp.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RecordWeekendShifts appends the given weekend history records and advances
// each employee's fairness counter by the number appended, atomically
func (d *DB) RecordWeekendShifts(ctx context.Context, appended map[string][]model.WeekendShiftRecord) error {
	if len(appended) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for employeeID, records := range appended {
		for _, rec := range records {
			_, err := tx.Exec(ctx, `
				INSERT INTO weekend_shift_history (employee_id, shift_date, shift_type, skill_level)
				VALUES ($1, $2, $3, $4)
			`, employeeID, rec.Date, rec.ShiftType, rec.Level)
			if err != nil {
				return fmt.Errorf("failed to insert weekend history for %s: %w", employeeID, err)
			}
		}

		_, err := tx.Exec(ctx, `
			UPDATE employee
			SET weekend_shifts_worked = weekend_shifts_worked + $2
			WHERE id = $1
		`, employeeID, len(records))
		if err != nil {
			return fmt.Errorf("failed to update weekend counter for %s: %w", employeeID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateTaskProgress persists the employee's skill points and completed task
// counter
func (d *DB) UpdateTaskProgress(ctx context.Context, emp *model.Employee) error {
	_, err := d.pool.Exec(ctx, `
		UPDATE employee
		SET skill_points = $2, tasks_completed = $3
		WHERE id = $1
	`, emp.ID, emp.SkillPoints, emp.TasksCompleted)
	if err != nil {
		return fmt.Errorf("failed to update task progress for %s: %w", emp.ID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (model.Employee, error) {
	var emp model.Employee
	var offFirst, offSecond *time.Time
	if err := row.Scan(&emp.ID, &emp.Name, &emp.Email, &emp.SkillLevel, &emp.Skills,
		&emp.TasksCompleted, &emp.SkillPoints, &offFirst, &offSecond,
		&emp.WeekendShiftsWorked, &emp.Active); err != nil {
		return model.Employee{}, fmt.Errorf("failed to scan employee: %w", err)
	}
	if offFirst != nil {
		emp.WeekendsOff[0] = *offFirst
	}
	if offSecond != nil {
		emp.WeekendsOff[1] = *offSecond
	}
	return emp, nil
}

func (d *DB) weekendHistory(ctx context.Context) (map[string][]model.WeekendShiftRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT employee_id, shift_date, shift_type, skill_level
		FROM weekend_shift_history
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekend history: %w", err)
	}
	defer rows.Close()

	history := make(map[string][]model.WeekendShiftRecord)
	for rows.Next() {
		var employeeID string
		var rec model.WeekendShiftRecord
		if err := rows.Scan(&employeeID, &rec.Date, &rec.ShiftType, &rec.Level); err != nil {
			return nil, fmt.Errorf("failed to scan weekend history: %w", err)
		}
		history[employeeID] = append(history[employeeID], rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating weekend history: %w", err)
	}

	return history, nil
}

func (d *DB) weekendHistoryFor(ctx context.Context, employeeID string) ([]model.WeekendShiftRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT shift_date, shift_type, skill_level
		FROM weekend_shift_history
		WHERE employee_id = $1
		ORDER BY id
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekend history: %w", err)
	}
	defer rows.Close()

	var history []model.WeekendShiftRecord
	for rows.Next() {
		var rec model.WeekendShiftRecord
		if err := rows.Scan(&rec.Date, &rec.ShiftType, &rec.Level); err != nil {
			return nil, fmt.Errorf("failed to scan weekend history: %w", err)
		}
		history = append(history, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating weekend history: %w", err)
	}

	return history, nil
}

// nullableDate maps the zero time to NULL so optional dates round-trip
func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
