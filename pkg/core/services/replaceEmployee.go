package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/crewroster/crewroster/pkg/core/availability"
	"github.com/crewroster/crewroster/pkg/core/model"
	"github.com/crewroster/crewroster/pkg/core/scheduler"
)

// ReplaceEmployeeStore defines the database operations needed for swapping
// an employee on a shift
type ReplaceEmployeeStore interface {
	GetShift(ctx context.Context, id string) (*model.Shift, error)
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetLeaves(ctx context.Context) ([]model.Leave, error)
	UpdateShift(ctx context.Context, shift *model.Shift) error
}

// ReplaceEmployee swaps one assigned employee for another on a shift,
// recording the replacement. The replacement must be available on the
// shift's date.
func ReplaceEmployee(
	ctx context.Context,
	database ReplaceEmployeeStore,
	logger *zap.Logger,
	shiftID string,
	originalID string,
	replacementID string,
	reason string,
) (*model.Shift, error) {
	logger.Debug("Starting replaceEmployee",
		zap.String("shift_id", shiftID),
		zap.String("original", originalID),
		zap.String("replacement", replacementID))

	shift, err := database.GetShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift: %w", err)
	}

	roster, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	leaves, err := database.GetLeaves(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaves: %w", err)
	}

	if !isAvailableOn(shift.Date, replacementID, roster, leaves) {
		return nil, fmt.Errorf("employee %s is not available on %s", replacementID, shift.Date.Format(model.DateLayout))
	}

	if err := scheduler.ReplaceEmployee(shift, originalID, replacementID, reason, time.Now()); err != nil {
		return nil, err
	}

	if err := database.UpdateShift(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to save shift: %w", err)
	}

	logger.Info("Employee replaced on shift",
		zap.String("shift_id", shift.ID),
		zap.String("original", originalID),
		zap.String("replacement", replacementID))

	return shift, nil
}

// isAvailableOn reports whether the employee is in the available pool for the
// date
func isAvailableOn(date time.Time, employeeID string, roster []model.Employee, leaves []model.Leave) bool {
	for _, emp := range availability.AvailableEmployees(date, roster, leaves) {
		if emp.ID == employeeID {
			return true
		}
	}
	return false
}
