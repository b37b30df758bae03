package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/crewroster/crewroster/pkg/core/leave"
	"github.com/crewroster/crewroster/pkg/core/model"
)

// mockLeaveStore implements RequestLeaveStore and ReviewLeaveStore for testing
type mockLeaveStore struct {
	employees map[string]*model.Employee
	leaves    []model.Leave

	inserted []model.Leave
	updated  []model.Leave
}

func (m *mockLeaveStore) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	emp, ok := m.employees[id]
	if !ok {
		return nil, fmt.Errorf("employee not found: %s", id)
	}
	return emp, nil
}

func (m *mockLeaveStore) GetLeaves(ctx context.Context) ([]model.Leave, error) {
	return m.leaves, nil
}

func (m *mockLeaveStore) GetLeave(ctx context.Context, id string) (*model.Leave, error) {
	for i := range m.leaves {
		if m.leaves[i].ID == id {
			return &m.leaves[i], nil
		}
	}
	return nil, fmt.Errorf("leave not found: %s", id)
}

func (m *mockLeaveStore) InsertLeave(l *model.Leave) error {
	m.inserted = append(m.inserted, *l)
	return nil
}

func (m *mockLeaveStore) UpdateLeave(ctx context.Context, l *model.Leave) error {
	m.updated = append(m.updated, *l)
	return nil
}

func TestRequestLeave_FilesPendingRequest(t *testing.T) {
	store := &mockLeaveStore{
		employees: map[string]*model.Employee{"e1": {ID: "e1", Active: true}},
	}

	// Far-future dates keep the future-dated rule satisfied under time.Now()
	l, err := RequestLeave(context.Background(), store, zap.NewNop(), leave.Request{
		EmployeeID: "e1",
		StartDate:  date(t, "2099-06-01"),
		EndDate:    date(t, "2099-06-05"),
		Reason:     "holiday",
		Type:       model.LeaveVacation,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, model.LeavePending, l.Status)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, l.ID, store.inserted[0].ID)
}

func TestRequestLeave_RejectsOverlap(t *testing.T) {
	store := &mockLeaveStore{
		employees: map[string]*model.Employee{"e1": {ID: "e1", Active: true}},
		leaves: []model.Leave{
			{
				ID:         "existing",
				EmployeeID: "e1",
				StartDate:  date(t, "2099-06-03"),
				EndDate:    date(t, "2099-06-10"),
				Status:     model.LeaveApproved,
			},
		},
	}

	_, err := RequestLeave(context.Background(), store, zap.NewNop(), leave.Request{
		EmployeeID: "e1",
		StartDate:  date(t, "2099-06-01"),
		EndDate:    date(t, "2099-06-05"),
		Type:       model.LeaveVacation,
	})

	assert.ErrorIs(t, err, leave.ErrOverlap)
	assert.Empty(t, store.inserted)
}

func TestRequestLeave_UnknownEmployee(t *testing.T) {
	store := &mockLeaveStore{employees: map[string]*model.Employee{}}

	_, err := RequestLeave(context.Background(), store, zap.NewNop(), leave.Request{
		EmployeeID: "ghost",
		StartDate:  date(t, "2099-06-01"),
		EndDate:    date(t, "2099-06-05"),
		Type:       model.LeaveVacation,
	})
	assert.Error(t, err)
}

func TestReviewLeave_Approves(t *testing.T) {
	store := &mockLeaveStore{
		leaves: []model.Leave{
			{ID: "l1", EmployeeID: "e1", Status: model.LeavePending},
		},
	}

	l, err := ReviewLeave(context.Background(), store, zap.NewNop(), "l1", true, "mgr", "fine by me")
	require.NoError(t, err)

	assert.Equal(t, model.LeaveApproved, l.Status)
	assert.Equal(t, "mgr", l.ReviewedBy)
	require.Len(t, store.updated, 1)
	assert.Equal(t, model.LeaveApproved, store.updated[0].Status)
}

func TestReviewLeave_AlreadyDecided(t *testing.T) {
	store := &mockLeaveStore{
		leaves: []model.Leave{
			{ID: "l1", EmployeeID: "e1", Status: model.LeaveRejected},
		},
	}

	_, err := ReviewLeave(context.Background(), store, zap.NewNop(), "l1", true, "mgr", "")
	assert.ErrorIs(t, err, leave.ErrNotPending)
	assert.Empty(t, store.updated)
}
