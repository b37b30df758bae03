package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/crewroster/crewroster/pkg/core/model"
)

// EmailSender defines the mail operation needed for notifications
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// SentNotification records one successfully mailed employee
type SentNotification struct {
	EmployeeName string
	Email        string
	ShiftCount   int
}

// FailedNotification records one employee whose email could not be sent
type FailedNotification struct {
	EmployeeName string
	Email        string
	Error        string
}

// NotifyScheduleStore defines the database operations needed for notifying
// employees of their shifts
type NotifyScheduleStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetShiftsBetween(ctx context.Context, start, end time.Time) ([]model.Shift, error)
}

// NotifySchedule emails each employee their shifts for the week starting at
// weekStart. Employees with no shifts or no email address are skipped. Send
// failures do not abort the run; they are collected and returned.
func NotifySchedule(
	ctx context.Context,
	database NotifyScheduleStore,
	mailer EmailSender,
	logger *zap.Logger,
	weekStart string,
	dryRun bool,
) ([]SentNotification, []FailedNotification, error) {
	logger.Debug("Starting notifySchedule",
		zap.String("week_start", weekStart),
		zap.Bool("dry_run", dryRun))

	start, err := model.ParseDate(weekStart)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid week start date: %w", err)
	}
	dates := model.WeekDates(start)

	shifts, err := database.GetShiftsBetween(ctx, dates[0], dates[len(dates)-1])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	if len(shifts) == 0 {
		return nil, nil, fmt.Errorf("no shifts found for week starting %s - generate the week first", weekStart)
	}

	roster, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	shiftsByEmployee := make(map[string][]model.Shift)
	for _, shift := range shifts {
		for _, id := range shift.EmployeeIDs {
			shiftsByEmployee[id] = append(shiftsByEmployee[id], shift)
		}
	}

	var sent []SentNotification
	var failed []FailedNotification

	for _, emp := range roster {
		assigned := shiftsByEmployee[emp.ID]
		if len(assigned) == 0 {
			continue
		}
		if emp.Email == "" {
			logger.Warn("Employee has no email address, skipping",
				zap.String("employee_id", emp.ID))
			continue
		}

		subject := fmt.Sprintf("Your shifts for the week of %s", start.Format(model.DateLayout))
		body := buildShiftEmail(emp.Name, start, assigned)

		if dryRun {
			logger.Info("Dry run - would send email",
				zap.String("employee_id", emp.ID),
				zap.Int("shifts", len(assigned)))
			sent = append(sent, SentNotification{EmployeeName: emp.Name, Email: emp.Email, ShiftCount: len(assigned)})
			continue
		}

		if err := mailer.SendEmail(emp.Email, subject, body); err != nil {
			logger.Warn("Failed to send shift notification",
				zap.String("employee_id", emp.ID),
				zap.Error(err))
			failed = append(failed, FailedNotification{EmployeeName: emp.Name, Email: emp.Email, Error: err.Error()})
			continue
		}

		logger.Debug("Shift notification sent",
			zap.String("employee_id", emp.ID),
			zap.Int("shifts", len(assigned)))
		sent = append(sent, SentNotification{EmployeeName: emp.Name, Email: emp.Email, ShiftCount: len(assigned)})
	}

	logger.Info("Notifications completed",
		zap.Int("sent", len(sent)),
		zap.Int("failed", len(failed)))

	return sent, failed, nil
}

// buildShiftEmail renders one employee's weekly shift list
func buildShiftEmail(name string, weekStart time.Time, shifts []model.Shift) string {
	sort.SliceStable(shifts, func(i, j int) bool {
		return shifts[i].Date.Before(shifts[j].Date)
	})

	body := fmt.Sprintf("Hi %s,\n\nYour shifts for the week of %s:\n\n", name, weekStart.Format(model.DateLayout))
	for _, shift := range shifts {
		body += fmt.Sprintf("  %s (%s): %s\n", shift.Date.Format(model.DateLayout), shift.Date.Format("Monday"), shift.Type)
	}
	body += "\nIf you cannot work one of these shifts, please request a replacement as soon as possible.\n"
	return body
}
