package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-roster/pkg/db"
)

func TestPublishWeek(t *testing.T) {
	store := &mockStore{
		overrides: []db.EventOverride{{EventDate: "2026-10-20", ExtraEmployeesNeeded: 1}},
		assignments: []db.ShiftAssignment{
			{EmployeeID: "b", ShiftDate: "2026-10-20", StartTime: "08:00", EndTime: "16:00"},
			{EmployeeID: "a", ShiftDate: "2026-10-20", StartTime: "08:00", EndTime: "16:00"},
			{EmployeeID: "c", ShiftDate: "2026-10-20", StartTime: "06:00", EndTime: "14:00"},
			{EmployeeID: "ghost", ShiftDate: "2026-10-21", StartTime: "08:00", EndTime: "16:00"},
		},
	}
	staff := &mockEmployees{employees: []db.Employee{
		{ID: "a", FullName: "Avi Cohen"},
		{ID: "b", FullName: "Dana Levi"},
		{ID: "c", FullName: "Noa Katz"},
	}}
	publisher := &mockPublisher{}
	start, end := weekBounds()

	result, err := PublishWeek(t.Context(), store, staff, publisher, emptyCalendar(t), "roster-sheet", zap.NewNop(), start, end)
	require.NoError(t, err)

	assert.Equal(t, "Sun Oct 18 2026 - Sat Oct 24 2026", result.TabTitle)
	assert.Equal(t, 7, result.Days)
	assert.Equal(t, 4, result.Assignments)
	assert.Equal(t, "roster-sheet", publisher.spreadsheetID)

	week := publisher.published
	require.NotNil(t, week)
	assert.Equal(t, "2026-10-18", week.StartDate)
	assert.Equal(t, "2026-10-24", week.EndDate)
	require.Len(t, week.Days, 7)

	tuesday := week.Days[2]
	assert.Equal(t, 4, tuesday.Required)
	require.Len(t, tuesday.Shifts, 3)
	assert.Equal(t, "Noa Katz", tuesday.Shifts[0].EmployeeName)
	assert.Equal(t, "Avi Cohen", tuesday.Shifts[1].EmployeeName)
	assert.Equal(t, "Dana Levi", tuesday.Shifts[2].EmployeeName)

	require.Len(t, week.Days[3].Shifts, 1)
	assert.Equal(t, "ghost", week.Days[3].Shifts[0].EmployeeName)
	assert.Empty(t, week.Days[0].Shifts)
	assert.Equal(t, 4, week.Days[6].Required)
}

func TestPublishWeek_RequiresSheet(t *testing.T) {
	start, end := weekBounds()

	_, err := PublishWeek(t.Context(), &mockStore{}, &mockEmployees{}, &mockPublisher{}, emptyCalendar(t), "", zap.NewNop(), start, end)
	assert.ErrorContains(t, err, "rosterSheetID is not configured")
}

func TestPublishWeek_PublisherError(t *testing.T) {
	start, end := weekBounds()
	publisher := &mockPublisher{err: errors.New("permission denied")}

	_, err := PublishWeek(t.Context(), &mockStore{}, &mockEmployees{}, publisher, emptyCalendar(t), "roster-sheet", zap.NewNop(), start, end)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish week")
}
