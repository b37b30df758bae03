package leave

import (
	"time"

	"github.com/crewroster/crewroster/pkg/core/model"
)

// DateRange is an inclusive [Start, End] calendar interval
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether End is on or after Start
func (r DateRange) Valid() bool {
	return !model.Midnight(r.End).Before(model.Midnight(r.Start))
}

// Overlaps reports whether two inclusive date ranges intersect:
// a.Start <= b.End && a.End >= b.Start. Symmetric by construction.
func Overlaps(a, b DateRange) bool {
	aStart, aEnd := model.Midnight(a.Start), model.Midnight(a.End)
	bStart, bEnd := model.Midnight(b.Start), model.Midnight(b.End)
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// FindOverlapping returns the leaves of the given employee whose date range
// intersects [start, end] and whose status is Pending or Approved. Leaves
// with ID equal to excludeID are skipped, which lets edits re-validate
// against everything but themselves.
func FindOverlapping(leaves []model.Leave, employeeID string, start, end time.Time, excludeID string) []model.Leave {
	target := DateRange{Start: start, End: end}

	var overlapping []model.Leave
	for _, l := range leaves {
		if l.EmployeeID != employeeID {
			continue
		}
		if excludeID != "" && l.ID == excludeID {
			continue
		}
		if l.Status != model.LeavePending && l.Status != model.LeaveApproved {
			continue
		}
		if Overlaps(target, DateRange{Start: l.StartDate, End: l.EndDate}) {
			overlapping = append(overlapping, l)
		}
	}
	return overlapping
}
