package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakechorley/shift-roster/pkg/clients/sheetsclient"
	"github.com/jakechorley/shift-roster/pkg/core/calendar"
	"github.com/jakechorley/shift-roster/pkg/db"
)

// mockStore implements DraftWeekStore and StaffingStore
type mockStore struct {
	availability []db.AvailabilityRequest
	overrides    []db.EventOverride
	assignments  []db.ShiftAssignment

	getAvailabilityErr error
	getOverridesErr    error
	getAssignmentsErr  error
	upsertErr          error

	upserted    []db.ShiftAssignment
	upsertCalls int
}

func (m *mockStore) GetAvailabilityRequests(ctx context.Context, from, to string) ([]db.AvailabilityRequest, error) {
	if m.getAvailabilityErr != nil {
		return nil, m.getAvailabilityErr
	}
	var out []db.AvailabilityRequest
	for _, r := range m.availability {
		if r.ShiftDate >= from && r.ShiftDate <= to {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockStore) GetEventOverrides(ctx context.Context, from, to string) ([]db.EventOverride, error) {
	if m.getOverridesErr != nil {
		return nil, m.getOverridesErr
	}
	var out []db.EventOverride
	for _, o := range m.overrides {
		if o.EventDate >= from && o.EventDate <= to {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockStore) GetShiftAssignments(ctx context.Context, from, to string) ([]db.ShiftAssignment, error) {
	if m.getAssignmentsErr != nil {
		return nil, m.getAssignmentsErr
	}
	var out []db.ShiftAssignment
	for _, a := range m.assignments {
		if a.ShiftDate >= from && a.ShiftDate <= to {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockStore) UpsertShiftAssignments(ctx context.Context, assignments []db.ShiftAssignment) error {
	m.upsertCalls++
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, assignments...)
	return nil
}

// mockEmployees implements db.EmployeeSource
type mockEmployees struct {
	employees []db.Employee
	err       error
}

func (m *mockEmployees) ListEmployees(ctx context.Context) ([]db.Employee, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.employees, nil
}

// mockPublisher implements RosterPublisher
type mockPublisher struct {
	published     *sheetsclient.PublishedWeek
	spreadsheetID string
	err           error
}

func (m *mockPublisher) PublishWeek(ctx context.Context, spreadsheetID string, week *sheetsclient.PublishedWeek) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.spreadsheetID = spreadsheetID
	m.published = week
	return "Sun Oct 18 2026 - Sat Oct 24 2026", nil
}

func emptyCalendar(t *testing.T) calendar.Calendar {
	t.Helper()
	cal, err := calendar.NewHolidayCalendar(nil)
	require.NoError(t, err)
	return cal
}

func staffMember(id string, minShifts int) db.Employee {
	return db.Employee{
		ID:               id,
		FullName:         "Employee " + id,
		Category:         "line",
		MinShiftsPerWeek: minShifts,
		Active:           true,
	}
}

func availableOn(dates []string, ids ...string) []db.AvailabilityRequest {
	var out []db.AvailabilityRequest
	for _, date := range dates {
		for _, id := range ids {
			out = append(out, db.AvailabilityRequest{
				ID:         id + "-" + date,
				EmployeeID: id,
				ShiftDate:  date,
				Available:  true,
				Priority:   "normal",
			})
		}
	}
	return out
}

var testWeek = []string{
	"2026-10-18", "2026-10-19", "2026-10-20", "2026-10-21",
	"2026-10-22", "2026-10-23", "2026-10-24",
}
