package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/crewroster/crewroster/pkg/core/model"
)

var (
	// ErrNotOnShift means the employee to replace is not assigned
	ErrNotOnShift = errors.New("employee is not assigned to this shift")

	// ErrAlreadyOnShift means the replacement is already assigned
	ErrAlreadyOnShift = errors.New("replacement employee is already assigned to this shift")
)

// ReplaceEmployee swaps one assigned employee for another on a shift,
// recording the swap with its reason. The shift's no-duplicate invariant is
// preserved: the replacement must not already be on the shift.
func ReplaceEmployee(shift *model.Shift, originalID, replacementID, reason string, now time.Time) error {
	if !shift.HasEmployee(originalID) {
		return fmt.Errorf("%w: %s on %s", ErrNotOnShift, originalID, shift.ID)
	}
	if shift.HasEmployee(replacementID) {
		return fmt.Errorf("%w: %s on %s", ErrAlreadyOnShift, replacementID, shift.ID)
	}

	for i, id := range shift.EmployeeIDs {
		if id == originalID {
			shift.EmployeeIDs[i] = replacementID
			break
		}
	}

	shift.Replacements = append(shift.Replacements, model.Replacement{
		OriginalEmployeeID:    originalID,
		ReplacementEmployeeID: replacementID,
		Reason:                reason,
		ReplacedAt:            now,
	})
	return nil
}
