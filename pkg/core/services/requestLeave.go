package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crewroster/crewroster/pkg/core/leave"
	"github.com/crewroster/crewroster/pkg/core/model"
)

// RequestLeaveStore defines the database operations needed for requesting
// leave
type RequestLeaveStore interface {
	GetEmployee(ctx context.Context, id string) (*model.Employee, error)
	GetLeaves(ctx context.Context) ([]model.Leave, error)
	InsertLeave(leave *model.Leave) error
}

// RequestLeave validates and files a new leave request in Pending status
func RequestLeave(
	ctx context.Context,
	database RequestLeaveStore,
	logger *zap.Logger,
	req leave.Request,
) (*model.Leave, error) {
	logger.Debug("Starting requestLeave",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", string(req.Type)))

	if _, err := database.GetEmployee(ctx, req.EmployeeID); err != nil {
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}

	existing, err := database.GetLeaves(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaves: %w", err)
	}

	if err := leave.ValidateRequest(req, existing, time.Now()); err != nil {
		return nil, err
	}

	l := &model.Leave{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		StartDate:  model.Midnight(req.StartDate),
		EndDate:    model.Midnight(req.EndDate),
		Reason:     req.Reason,
		Type:       req.Type,
		Status:     model.LeavePending,
	}

	if err := database.InsertLeave(l); err != nil {
		return nil, fmt.Errorf("failed to save leave: %w", err)
	}

	logger.Info("Leave request filed",
		zap.String("leave_id", l.ID),
		zap.String("employee_id", l.EmployeeID),
		zap.String("start", l.StartDate.Format(model.DateLayout)),
		zap.String("end", l.EndDate.Format(model.DateLayout)))

	return l, nil
}
