package postgres

import (
	"context"
	"fmt"

	"github.com/crewroster/crewroster/pkg/core/model"
)

const leaveColumns = `id, employee_id, start_date, end_date, reason,
	leave_type, status, reviewed_by, reviewed_at, comment`

// GetLeaves retrieves all leave requests
func (d *DB) GetLeaves(ctx context.Context) ([]model.Leave, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+leaveColumns+`
		FROM leave
		ORDER BY start_date, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves: %w", err)
	}
	defer rows.Close()

	var leaves []model.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leaves: %w", err)
	}

	return leaves, nil
}

// GetLeave retrieves a single leave request by id
func (d *DB) GetLeave(ctx context.Context, id string) (*model.Leave, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT `+leaveColumns+`
		FROM leave
		WHERE id = $1
	`, id)

	l, err := scanLeave(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave %s: %w", id, err)
	}

	return &l, nil
}

// InsertLeave inserts a new leave request
func (d *DB) InsertLeave(leave *model.Leave) error {
	ctx := context.Background()
	_, err := d.pool.Exec(ctx, `
		INSERT INTO leave (`+leaveColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, leave.ID, leave.EmployeeID, leave.StartDate, leave.EndDate, leave.Reason,
		leave.Type, leave.Status, leave.ReviewedBy, leave.ReviewedAt, leave.Comment)
	if err != nil {
		return fmt.Errorf("failed to insert leave: %w", err)
	}
	return nil
}

// UpdateLeave persists changes to an existing leave request
func (d *DB) UpdateLeave(ctx context.Context, leave *model.Leave) error {
	_, err := d.pool.Exec(ctx, `
		UPDATE leave
		SET start_date = $2, end_date = $3, reason = $4, leave_type = $5,
			status = $6, reviewed_by = $7, reviewed_at = $8, comment = $9
		WHERE id = $1
	`, leave.ID, leave.StartDate, leave.EndDate, leave.Reason, leave.Type,
		leave.Status, leave.ReviewedBy, leave.ReviewedAt, leave.Comment)
	if err != nil {
		return fmt.Errorf("failed to update leave %s: %w", leave.ID, err)
	}
	return nil
}

func scanLeave(row rowScanner) (model.Leave, error) {
	var l model.Leave
	if err := row.Scan(&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.Reason,
		&l.Type, &l.Status, &l.ReviewedBy, &l.ReviewedAt, &l.Comment); err != nil {
		return model.Leave{}, fmt.Errorf("failed to scan leave: %w", err)
	}
	return l, nil
}
