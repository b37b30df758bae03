package leave

import (
	"errors"
	"fmt"
	"time"

	"github.com/crewroster/crewroster/pkg/core/model"
)

var (
	// ErrInvalidRange means the leave's end date precedes its start date
	ErrInvalidRange = errors.New("leave end date must be on or after start date")

	// ErrPastStartDate means a non-emergency leave starts today or earlier
	ErrPastStartDate = errors.New("leave start date must be in the future")

	// ErrOverlap means the employee already has a pending or approved leave
	// intersecting the requested range
	ErrOverlap = errors.New("employee already has a leave request for overlapping dates")

	// ErrNotPending means a review or edit targeted a leave that has already
	// been decided
	ErrNotPending = errors.New("leave has already been reviewed")
)

// Request is a new or edited leave request before validation
type Request struct {
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Type       model.LeaveType

	// ExcludeLeaveID is set when re-validating an edit so the leave does not
	// collide with itself
	ExcludeLeaveID string
}

// ValidateRequest applies the leave invariants against the employee's
// existing leaves: the range must be well formed, non-emergency leaves must
// be future-dated relative to now, and the range must not overlap any
// pending or approved leave of the same employee. Range checks run before
// any overlap scan.
func ValidateRequest(req Request, existing []model.Leave, now time.Time) error {
	r := DateRange{Start: req.StartDate, End: req.EndDate}
	if !r.Valid() {
		return ErrInvalidRange
	}

	if req.Type != model.LeaveEmergency {
		if !model.Midnight(req.StartDate).After(model.Midnight(now)) {
			return ErrPastStartDate
		}
	}

	overlapping := FindOverlapping(existing, req.EmployeeID, req.StartDate, req.EndDate, req.ExcludeLeaveID)
	if len(overlapping) > 0 {
		return fmt.Errorf("%w: conflicts with leave %s", ErrOverlap, overlapping[0].ID)
	}

	return nil
}

// Review applies the Pending -> Approved/Rejected transition exactly once
func Review(l *model.Leave, approve bool, reviewerID, comment string, now time.Time) error {
	if l.Status != model.LeavePending {
		return fmt.Errorf("%w: leave %s is %s", ErrNotPending, l.ID, l.Status)
	}

	if approve {
		l.Status = model.LeaveApproved
	} else {
		l.Status = model.LeaveRejected
	}
	l.ReviewedBy = reviewerID
	l.Comment = comment
	reviewedAt := now
	l.ReviewedAt = &reviewedAt
	return nil
}
