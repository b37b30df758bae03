package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/crewroster/crewroster/pkg/core/model"
)

// mockMailer implements EmailSender for testing
type mockMailer struct {
	failFor map[string]bool

	sent []string // recipient addresses in send order
}

func (m *mockMailer) SendEmail(to, subject, body string) error {
	if m.failFor[to] {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, to)
	return nil
}

func notifyTestStore(t *testing.T) *mockScheduleStore {
	t.Helper()
	return &mockScheduleStore{
		employees: testRoster(),
		shifts: []model.Shift{
			{
				ID:          "sh1",
				Date:        date(t, "2024-01-22"),
				Type:        model.ShiftMorning,
				EmployeeIDs: []string{"s1", "j1"},
				Quota:       model.Quota{Seniors: 1, Juniors: 1},
			},
			{
				ID:          "sh2",
				Date:        date(t, "2024-01-24"),
				Type:        model.ShiftNight,
				EmployeeIDs: []string{"s1"},
				Quota:       model.Quota{Seniors: 1, Juniors: 1},
			},
		},
	}
}

func TestNotifySchedule_MailsOnlyAssignedEmployees(t *testing.T) {
	store := notifyTestStore(t)
	mailer := &mockMailer{}

	sent, failed, err := NotifySchedule(context.Background(), store, mailer, zap.NewNop(), "2024-01-22", false)
	require.NoError(t, err)

	assert.Empty(t, failed)
	require.Len(t, sent, 2)

	counts := map[string]int{}
	for _, n := range sent {
		counts[n.Email] = n.ShiftCount
	}
	assert.Equal(t, 2, counts["s1@example.com"])
	assert.Equal(t, 1, counts["j1@example.com"])
	assert.Len(t, mailer.sent, 2)
}

func TestNotifySchedule_SendFailureIsCollected(t *testing.T) {
	store := notifyTestStore(t)
	mailer := &mockMailer{failFor: map[string]bool{"s1@example.com": true}}

	sent, failed, err := NotifySchedule(context.Background(), store, mailer, zap.NewNop(), "2024-01-22", false)
	require.NoError(t, err)

	require.Len(t, failed, 1)
	assert.Equal(t, "s1@example.com", failed[0].Email)
	assert.Contains(t, failed[0].Error, "smtp unavailable")
	require.Len(t, sent, 1)
	assert.Equal(t, "j1@example.com", sent[0].Email)
}

func TestNotifySchedule_SkipsEmployeeWithoutEmail(t *testing.T) {
	store := notifyTestStore(t)
	for i := range store.employees {
		if store.employees[i].ID == "j1" {
			store.employees[i].Email = ""
		}
	}
	mailer := &mockMailer{}

	sent, failed, err := NotifySchedule(context.Background(), store, mailer, zap.NewNop(), "2024-01-22", false)
	require.NoError(t, err)

	assert.Empty(t, failed)
	require.Len(t, sent, 1)
	assert.Equal(t, "s1@example.com", sent[0].Email)
}

func TestNotifySchedule_DryRunSendsNothing(t *testing.T) {
	store := notifyTestStore(t)
	mailer := &mockMailer{}

	sent, failed, err := NotifySchedule(context.Background(), store, mailer, zap.NewNop(), "2024-01-22", true)
	require.NoError(t, err)

	assert.Empty(t, failed)
	assert.Len(t, sent, 2)
	assert.Empty(t, mailer.sent)
}

func TestNotifySchedule_NoShiftsForWeek(t *testing.T) {
	store := &mockScheduleStore{employees: testRoster()}
	mailer := &mockMailer{}

	_, _, err := NotifySchedule(context.Background(), store, mailer, zap.NewNop(), "2024-01-22", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no shifts")
}

func TestBuildShiftEmail_ListsShiftsChronologically(t *testing.T) {
	body := buildShiftEmail("Senior One", date(t, "2024-01-22"), []model.Shift{
		{Date: date(t, "2024-01-24"), Type: model.ShiftNight},
		{Date: date(t, "2024-01-22"), Type: model.ShiftMorning},
	})

	assert.Contains(t, body, "Hi Senior One")
	assert.Contains(t, body, "2024-01-22 (Monday): Morning")
	assert.Contains(t, body, "2024-01-24 (Wednesday): Night")
	assert.Less(t, strings.Index(body, "2024-01-22"), strings.Index(body, "2024-01-24"))
}
