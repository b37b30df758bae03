package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/crewroster/crewroster/pkg/core/model"
)

// GetShiftsBetween retrieves all shifts with dates in the inclusive
// [start, end] range, with their replacement records
func (d *DB) GetShiftsBetween(ctx context.Context, start, end time.Time) ([]model.Shift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, shift_type, shift_date, employee_ids,
			quota_seniors, quota_juniors, alternate_with, is_weekend
		FROM shift
		WHERE shift_date BETWEEN $1 AND $2
		ORDER BY shift_date, shift_type
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []model.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	for i := range shifts {
		replacements, err := d.replacementsFor(ctx, shifts[i].ID)
		if err != nil {
			return nil, err
		}
		shifts[i].Replacements = replacements
	}

	return shifts, nil
}

// GetShift retrieves a single shift by id
func (d *DB) GetShift(ctx context.Context, id string) (*model.Shift, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, shift_type, shift_date, employee_ids,
			quota_seniors, quota_juniors, alternate_with, is_weekend
		FROM shift
		WHERE id = $1
	`, id)

	s, err := scanShift(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift %s: %w", id, err)
	}

	replacements, err := d.replacementsFor(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Replacements = replacements

	return &s, nil
}

// InsertShifts inserts shift records into the database
func (d *DB) InsertShifts(shifts []model.Shift) error {
	if len(shifts) == 0 {
		return nil
	}

	ctx := context.Background()
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range shifts {
		_, err := tx.Exec(ctx, `
			INSERT INTO shift (id, shift_type, shift_date, employee_ids,
				quota_seniors, quota_juniors, alternate_with, is_weekend)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, s.ID, s.Type, s.Date, s.EmployeeIDs,
			s.Quota.Seniors, s.Quota.Juniors, s.Quota.AlternateWith, s.IsWeekend)
		if err != nil {
			return fmt.Errorf("failed to insert shift %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateShift persists the shift's assigned employees and appends any
// replacement records not yet stored
func (d *DB) UpdateShift(ctx context.Context, shift *model.Shift) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE shift SET employee_ids = $2 WHERE id = $1
	`, shift.ID, shift.EmployeeIDs)
	if err != nil {
		return fmt.Errorf("failed to update shift %s: %w", shift.ID, err)
	}

	var stored int
	if err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM replacement WHERE shift_id = $1
	`, shift.ID).Scan(&stored); err != nil {
		return fmt.Errorf("failed to count replacements for %s: %w", shift.ID, err)
	}

	for _, r := range shift.Replacements[stored:] {
		_, err := tx.Exec(ctx, `
			INSERT INTO replacement (shift_id, original_employee_id, replacement_employee_id, reason, replaced_at)
			VALUES ($1, $2, $3, $4, $5)
		`, shift.ID, r.OriginalEmployeeID, r.ReplacementEmployeeID, r.Reason, r.ReplacedAt)
		if err != nil {
			return fmt.Errorf("failed to insert replacement for %s: %w", shift.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func scanShift(row rowScanner) (model.Shift, error) {
	var s model.Shift
	if err := row.Scan(&s.ID, &s.Type, &s.Date, &s.EmployeeIDs,
		&s.Quota.Seniors, &s.Quota.Juniors, &s.Quota.AlternateWith, &s.IsWeekend); err != nil {
		return model.Shift{}, fmt.Errorf("failed to scan shift: %w", err)
	}
	return s, nil
}

func (d *DB) replacementsFor(ctx context.Context, shiftID string) ([]model.Replacement, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT original_employee_id, replacement_employee_id, reason, replaced_at
		FROM replacement
		WHERE shift_id = $1
		ORDER BY id
	`, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query replacements: %w", err)
	}
	defer rows.Close()

	var replacements []model.Replacement
	for rows.Next() {
		var r model.Replacement
		if err := rows.Scan(&r.OriginalEmployeeID, &r.ReplacementEmployeeID, &r.Reason, &r.ReplacedAt); err != nil {
			return nil, fmt.Errorf("failed to scan replacement: %w", err)
		}
		replacements = append(replacements, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating replacements: %w", err)
	}

	return replacements, nil
}
