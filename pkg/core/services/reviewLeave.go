package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/crewroster/crewroster/pkg/core/leave"
	"github.com/crewroster/crewroster/pkg/core/model"
)

// ReviewLeaveStore defines the database operations needed for reviewing a
// leave request
type ReviewLeaveStore interface {
	GetLeave(ctx context.Context, id string) (*model.Leave, error)
	UpdateLeave(ctx context.Context, leave *model.Leave) error
}

// ReviewLeave approves or rejects a pending leave request
func ReviewLeave(
	ctx context.Context,
	database ReviewLeaveStore,
	logger *zap.Logger,
	leaveID string,
	approve bool,
	reviewerID string,
	comment string,
) (*model.Leave, error) {
	logger.Debug("Starting reviewLeave",
		zap.String("leave_id", leaveID),
		zap.Bool("approve", approve))

	l, err := database.GetLeave(ctx, leaveID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leave: %w", err)
	}

	if err := leave.Review(l, approve, reviewerID, comment, time.Now()); err != nil {
		return nil, err
	}

	if err := database.UpdateLeave(ctx, l); err != nil {
		return nil, fmt.Errorf("failed to save leave review: %w", err)
	}

	logger.Info("Leave reviewed",
		zap.String("leave_id", l.ID),
		zap.String("status", string(l.Status)),
		zap.String("reviewer", reviewerID))

	return l, nil
}
