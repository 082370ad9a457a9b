package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-roster/pkg/clients/sheetsclient"
	"github.com/jakechorley/shift-roster/pkg/core/allocator"
	"github.com/jakechorley/shift-roster/pkg/core/calendar"
	"github.com/jakechorley/shift-roster/pkg/core/model"
	"github.com/jakechorley/shift-roster/pkg/db"
)

// RosterPublisher writes a week's roster to a spreadsheet
type RosterPublisher interface {
	PublishWeek(ctx context.Context, spreadsheetID string, week *sheetsclient.PublishedWeek) (string, error)
}

// PublishWeekResult describes what was published
type PublishWeekResult struct {
	TabTitle    string
	Days        int
	Assignments int
}

// PublishWeek writes the saved assignments for [weekStart, weekEnd] to the roster sheet,
// one row per date with the required headcount and each employee's hours
func PublishWeek(
	ctx context.Context,
	database db.RosterReader,
	employees db.EmployeeSource,
	publisher RosterPublisher,
	cal calendar.Calendar,
	rosterSheetID string,
	logger *zap.Logger,
	weekStart, weekEnd time.Time,
) (*PublishWeekResult, error) {
	if rosterSheetID == "" {
		return nil, fmt.Errorf("rosterSheetID is not configured")
	}

	snapshot, err := loadWeekSnapshot(ctx, database, employees, logger, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	week := buildPublishedWeek(snapshot, cal, weekStart, weekEnd)

	logger.Debug("Publishing week",
		zap.String("week_start", week.StartDate),
		zap.String("spreadsheet_id", rosterSheetID))

	tabTitle, err := publisher.PublishWeek(ctx, rosterSheetID, week)
	if err != nil {
		return nil, fmt.Errorf("failed to publish week: %w", err)
	}

	logger.Info("Published week", zap.String("tab", tabTitle), zap.Int("assignments", len(snapshot.assignments)))

	return &PublishWeekResult{
		TabTitle:    tabTitle,
		Days:        len(week.Days),
		Assignments: len(snapshot.assignments),
	}, nil
}

// buildPublishedWeek lays out the saved assignments per date, ordered by start time then name.
// Assignments for employees missing from the staff list are shown by ID.
func buildPublishedWeek(snapshot *weekSnapshot, cal calendar.Calendar, weekStart, weekEnd time.Time) *sheetsclient.PublishedWeek {
	names := make(map[string]string, len(snapshot.employees))
	for _, e := range snapshot.employees {
		names[e.ID] = e.FullName
	}

	byDate := make(map[string][]sheetsclient.PublishedShift)
	for _, a := range snapshot.assignments {
		name := names[a.EmployeeID]
		if name == "" {
			name = a.EmployeeID
		}
		byDate[a.ShiftDate] = append(byDate[a.ShiftDate], sheetsclient.PublishedShift{
			EmployeeName: name,
			StartTime:    a.StartTime,
			EndTime:      a.EndTime,
		})
	}

	extras := allocator.EventExtrasByDate(toModelOverrides(snapshot.overrides))

	week := &sheetsclient.PublishedWeek{
		StartDate: weekStart.Format(model.DateLayout),
		EndDate:   weekEnd.Format(model.DateLayout),
	}
	for _, day := range allocator.WeekDates(weekStart, weekEnd) {
		key := day.Format(model.DateLayout)
		shifts := byDate[key]
		sort.SliceStable(shifts, func(i, j int) bool {
			if shifts[i].StartTime != shifts[j].StartTime {
				return shifts[i].StartTime < shifts[j].StartTime
			}
			return shifts[i].EmployeeName < shifts[j].EmployeeName
		})

		week.Days = append(week.Days, sheetsclient.PublishedDay{
			Date:     key,
			Required: allocator.RequiredStaff(day, extras[key], cal),
			Shifts:   shifts,
		})
	}

	return week
}
