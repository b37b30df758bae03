package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/crewroster/crewroster/pkg/core/model"
)

func date(s string) time.Time {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestOverlaps_BoundaryInclusive(t *testing.T) {
	// Shared boundary day counts as an overlap
	a := DateRange{Start: date("2024-02-01"), End: date("2024-02-03")}
	b := DateRange{Start: date("2024-02-03"), End: date("2024-02-05")}

	assert.True(t, Overlaps(a, b))
}

func TestOverlaps_Symmetric(t *testing.T) {
	ranges := []struct {
		a, b DateRange
	}{
		{
			DateRange{Start: date("2024-02-01"), End: date("2024-02-03")},
			DateRange{Start: date("2024-02-03"), End: date("2024-02-05")},
		},
		{
			DateRange{Start: date("2024-02-01"), End: date("2024-02-10")},
			DateRange{Start: date("2024-02-04"), End: date("2024-02-05")},
		},
		{
			DateRange{Start: date("2024-02-01"), End: date("2024-02-02")},
			DateRange{Start: date("2024-02-05"), End: date("2024-02-06")},
		},
	}

	for _, r := range ranges {
		assert.Equal(t, Overlaps(r.a, r.b), Overlaps(r.b, r.a))
	}
}

func TestOverlaps_Disjoint(t *testing.T) {
	a := DateRange{Start: date("2024-02-01"), End: date("2024-02-02")}
	b := DateRange{Start: date("2024-02-03"), End: date("2024-02-05")}

	assert.False(t, Overlaps(a, b))
}

func TestOverlaps_Contained(t *testing.T) {
	outer := DateRange{Start: date("2024-02-01"), End: date("2024-02-28")}
	inner := DateRange{Start: date("2024-02-10"), End: date("2024-02-12")}

	assert.True(t, Overlaps(outer, inner))
}

func TestFindOverlapping_FiltersStatusAndEmployee(t *testing.T) {
	leaves := []model.Leave{
		{ID: "l1", EmployeeID: "e1", StartDate: date("2024-02-01"), EndDate: date("2024-02-03"), Status: model.LeaveApproved},
		{ID: "l2", EmployeeID: "e1", StartDate: date("2024-02-01"), EndDate: date("2024-02-03"), Status: model.LeaveRejected},
		{ID: "l3", EmployeeID: "e2", StartDate: date("2024-02-01"), EndDate: date("2024-02-03"), Status: model.LeaveApproved},
	}

	found := FindOverlapping(leaves, "e1", date("2024-02-03"), date("2024-02-05"), "")

	// Rejected leaves and other employees' leaves never conflict
	assert.Len(t, found, 1)
	assert.Equal(t, "l1", found[0].ID)
}

func TestFindOverlapping_ExcludesGivenLeave(t *testing.T) {
	leaves := []model.Leave{
		{ID: "l1", EmployeeID: "e1", StartDate: date("2024-02-01"), EndDate: date("2024-02-03"), Status: model.LeavePending},
	}

	// Editing l1 must not collide with itself
	found := FindOverlapping(leaves, "e1", date("2024-02-02"), date("2024-02-04"), "l1")
	assert.Empty(t, found)
}
