package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-roster/pkg/core/allocator"
	"github.com/jakechorley/shift-roster/pkg/core/model"
	"github.com/jakechorley/shift-roster/pkg/db"
)

func weekBounds() (time.Time, time.Time) {
	start := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 6)
}

func TestDraftWeek_SavesAssignments(t *testing.T) {
	store := &mockStore{availability: availableOn(testWeek, "a", "b", "c")}
	staff := &mockEmployees{employees: []db.Employee{staffMember("a", 6), staffMember("b", 6), staffMember("c", 6)}}
	start, end := weekBounds()

	result, err := DraftWeek(t.Context(), store, staff, emptyCalendar(t), nil, zap.NewNop(), start, end, false)
	require.NoError(t, err)

	assert.True(t, result.Saved)
	assert.Equal(t, "2026-10-18", result.WeekStart)
	assert.Equal(t, "2026-10-24", result.WeekEnd)
	assert.Len(t, result.Assignments, 21)
	assert.Equal(t, 1, store.upsertCalls)
	require.Len(t, store.upserted, 21)

	ids := make(map[string]bool)
	for _, a := range store.upserted {
		_, err := uuid.Parse(a.ID)
		assert.NoError(t, err)
		assert.False(t, ids[a.ID], "duplicate id %s", a.ID)
		ids[a.ID] = true
		assert.Equal(t, "pending", a.Status)
		assert.Equal(t, "auto", a.Source)
	}

	require.Len(t, result.Staffing, 7)
	assert.Equal(t, 3, result.Staffing[0].Required)
	assert.Equal(t, 4, result.Staffing[5].Required)
	assert.Len(t, result.Understaffed, 2)
	assert.Empty(t, result.BelowMinimum)
	assert.Equal(t, 7, result.WeeklyCounts["a"])
}

func TestDraftWeek_DryRunDoesNotSave(t *testing.T) {
	store := &mockStore{availability: availableOn(testWeek, "a")}
	staff := &mockEmployees{employees: []db.Employee{staffMember("a", 0)}}
	start, end := weekBounds()

	result, err := DraftWeek(t.Context(), store, staff, emptyCalendar(t), nil, zap.NewNop(), start, end, true)
	require.NoError(t, err)

	assert.False(t, result.Saved)
	assert.Len(t, result.Assignments, 7)
	assert.Zero(t, store.upsertCalls)
}

func TestDraftWeek_UsesStoredInputs(t *testing.T) {
	store := &mockStore{
		availability: availableOn([]string{"2026-10-20"}, "a", "b", "c", "d", "e", "f"),
		overrides: []db.EventOverride{
			{ID: "ev-1", EventDate: "2026-10-20", ExtraEmployeesNeeded: 2},
		},
		assignments: []db.ShiftAssignment{
			{ID: "existing", EmployeeID: "f", ShiftDate: "2026-10-20", StartTime: "08:00", EndTime: "16:00",
				ShiftType: "morning", Category: "line", Status: "confirmed", Source: "manual"},
		},
	}
	var staff []db.Employee
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		staff = append(staff, staffMember(id, 0))
	}
	start, end := weekBounds()

	result, err := DraftWeek(t.Context(), store, &mockEmployees{employees: staff}, emptyCalendar(t), nil, zap.NewNop(), start, end, true)
	require.NoError(t, err)

	assert.Equal(t, 5, result.Staffing[2].Required)
	var onDate []string
	for _, a := range result.Assignments {
		if a.Date == "2026-10-20" {
			onDate = append(onDate, a.EmployeeID)
		}
	}
	assert.Len(t, onDate, 5)
	assert.NotContains(t, onDate, "f")
}

func TestDraftWeek_AppliesShiftTemplates(t *testing.T) {
	store := &mockStore{availability: availableOn([]string{"2026-10-20"}, "manager")}
	staff := &mockEmployees{employees: []db.Employee{staffMember("manager", 0)}}
	templates := allocator.ShiftTemplates{"manager": {StartTime: "15:00", EndTime: "23:00"}}
	start, end := weekBounds()

	result, err := DraftWeek(t.Context(), store, staff, emptyCalendar(t), templates, zap.NewNop(), start, end, true)
	require.NoError(t, err)

	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "15:00", result.Assignments[0].StartTime)
	assert.Equal(t, model.ShiftEvening, result.Assignments[0].ShiftType)
}

func TestDraftWeek_LoadErrors(t *testing.T) {
	boom := errors.New("connection refused")

	tests := []struct {
		name       string
		store      *mockStore
		staff      *mockEmployees
		collection string
	}{
		{
			name:       "employees",
			store:      &mockStore{},
			staff:      &mockEmployees{err: boom},
			collection: "employees",
		},
		{
			name:       "availability",
			store:      &mockStore{getAvailabilityErr: boom},
			staff:      &mockEmployees{},
			collection: "availability requests",
		},
		{
			name:       "overrides",
			store:      &mockStore{getOverridesErr: boom},
			staff:      &mockEmployees{},
			collection: "event overrides",
		},
		{
			name:       "assignments",
			store:      &mockStore{getAssignmentsErr: boom},
			staff:      &mockEmployees{},
			collection: "shift assignments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := weekBounds()

			result, err := DraftWeek(t.Context(), tt.store, tt.staff, emptyCalendar(t), nil, zap.NewNop(), start, end, false)
			require.Error(t, err)
			assert.Nil(t, result)

			var loadErr *DataLoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, tt.collection, loadErr.Collection)
			assert.ErrorIs(t, err, boom)
			assert.Zero(t, tt.store.upsertCalls)
		})
	}
}

func TestDraftWeek_UpsertError(t *testing.T) {
	store := &mockStore{availability: availableOn(testWeek, "a"), upsertErr: errors.New("disk full")}
	staff := &mockEmployees{employees: []db.Employee{staffMember("a", 0)}}
	start, end := weekBounds()

	result, err := DraftWeek(t.Context(), store, staff, emptyCalendar(t), nil, zap.NewNop(), start, end, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save assignments")
	require.NotNil(t, result)
	assert.False(t, result.Saved)
}

func TestDraftWeek_NoEmployees(t *testing.T) {
	start, end := weekBounds()

	result, err := DraftWeek(t.Context(), &mockStore{}, &mockEmployees{}, emptyCalendar(t), nil, zap.NewNop(), start, end, false)
	require.NoError(t, err)

	assert.Empty(t, result.Assignments)
	assert.Len(t, result.Understaffed, 7)
	assert.True(t, result.Saved)
}

// withValidationError makes the allocator report one broken invariant on top of its real outcome
func withValidationError(t *testing.T) {
	t.Helper()
	original := allocateWeek
	allocateWeek = func(config allocator.AllocationConfig) (*allocator.AllocationOutcome, error) {
		outcome, err := original(config)
		if err != nil {
			return nil, err
		}
		outcome.ValidationErrors = append(outcome.ValidationErrors, allocator.RosterValidationError{
			Date:        "2026-10-20",
			EmployeeID:  "a",
			Description: "employee a assigned more than once on 2026-10-20",
		})
		return outcome, nil
	}
	t.Cleanup(func() { allocateWeek = original })
}

func TestDraftWeek_ValidationFailureNotSaved(t *testing.T) {
	withValidationError(t)
	store := &mockStore{availability: availableOn(testWeek, "a", "b")}
	staff := &mockEmployees{employees: []db.Employee{staffMember("a", 0), staffMember("b", 0)}}
	start, end := weekBounds()

	result, err := DraftWeek(t.Context(), store, staff, emptyCalendar(t), nil, zap.NewNop(), start, end, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")

	require.NotNil(t, result)
	assert.False(t, result.Saved)
	assert.Len(t, result.ValidationErrors, 1)
	assert.Len(t, result.Assignments, 14)
	assert.Zero(t, store.upsertCalls)
	assert.Empty(t, store.upserted)
}

func TestDraftWeek_ValidationFailureDryRun(t *testing.T) {
	withValidationError(t)
	store := &mockStore{availability: availableOn(testWeek, "a", "b")}
	staff := &mockEmployees{employees: []db.Employee{staffMember("a", 0), staffMember("b", 0)}}
	start, end := weekBounds()

	result, err := DraftWeek(t.Context(), store, staff, emptyCalendar(t), nil, zap.NewNop(), start, end, true)
	require.NoError(t, err)

	assert.False(t, result.Saved)
	assert.Len(t, result.ValidationErrors, 1)
	assert.Zero(t, store.upsertCalls)
}

func TestDraftWeek_DuplicateEmployeeRows(t *testing.T) {
	store := &mockStore{availability: availableOn([]string{"2026-10-20"}, "a", "b")}
	preferred := staffMember("a", 0)
	preferred.PreferredStart = "09:00"
	staff := &mockEmployees{employees: []db.Employee{preferred, staffMember("a", 0), staffMember("b", 0)}}
	start, end := weekBounds()

	result, err := DraftWeek(t.Context(), store, staff, emptyCalendar(t), nil, zap.NewNop(), start, end, false)
	require.NoError(t, err)

	assert.True(t, result.Saved)
	assert.Empty(t, result.ValidationErrors)
	require.Len(t, store.upserted, 2)
	assert.NotEqual(t, store.upserted[0].EmployeeID, store.upserted[1].EmployeeID)
}
