package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/shift-roster/pkg/core/model"
)

func TestEnforceWeeklyMinimums_IgnoresAvailability(t *testing.T) {
	config := weekConfig([]model.Employee{employee("a", 6)}, nil)

	outcome, err := Allocate(config)
	require.NoError(t, err)

	assert.Len(t, outcome.Assignments, 6)
	assert.Equal(t, 6, outcome.TopUpCount)
	assert.Empty(t, outcome.BelowMinimum)

	// Open dates are filled in ascending order
	for i, a := range outcome.Assignments {
		assert.Equal(t, outcome.State.Dates[i], a.Date)
		assert.Equal(t, model.SourceAuto, a.Source)
	}
}

func TestEnforceWeeklyMinimums_CountsPreExistingAssignments(t *testing.T) {
	config := weekConfig([]model.Employee{employee("a", 6)}, nil)
	config.ExistingAssignments = []model.ShiftAssignment{
		{EmployeeID: "a", Date: "2026-10-18"},
		{EmployeeID: "a", Date: "2026-10-19"},
		{EmployeeID: "a", Date: "2026-10-20"},
	}

	outcome, err := Allocate(config)
	require.NoError(t, err)

	require.Len(t, outcome.Assignments, 3)
	assert.Equal(t, []string{"2026-10-21", "2026-10-22", "2026-10-23"},
		[]string{outcome.Assignments[0].Date, outcome.Assignments[1].Date, outcome.Assignments[2].Date})
	assert.Equal(t, 6, outcome.State.WeeklyCount("a"))
	assert.Empty(t, outcome.ValidationErrors)
}

func TestEnforceWeeklyMinimums_SkipsDatesAlreadyAssigned(t *testing.T) {
	config := weekConfig([]model.Employee{employee("a", 4)}, availableEveryDay("2026-10-20", "2026-10-21", "a"))

	outcome, err := Allocate(config)
	require.NoError(t, err)

	assert.Len(t, outcome.Assignments, 4)
	assert.Equal(t, 2, outcome.TopUpCount)
	assert.Equal(t, map[string]int{"a": 4}, countByEmployee(outcome.Assignments))
	assert.Empty(t, outcome.ValidationErrors)
}

func TestEnforceWeeklyMinimums_ShortWeekLeavesEmployeeBelowMinimum(t *testing.T) {
	config := AllocationConfig{
		WeekStart: mustDate("2026-10-20"),
		WeekEnd:   mustDate("2026-10-22"),
		Employees: []model.Employee{employee("a", 5)},
		Calendar:  noHolidays(),
	}

	outcome, err := Allocate(config)
	require.NoError(t, err)

	assert.Len(t, outcome.Assignments, 3)
	require.Len(t, outcome.BelowMinimum, 1)
	assert.Equal(t, MinimumShortfall{EmployeeID: "a", Minimum: 5, Assigned: 3}, outcome.BelowMinimum[0])
}

func TestEnforceWeeklyMinimums_SkipsInactive(t *testing.T) {
	inactive := employee("a", 6)
	inactive.Active = false

	outcome, err := Allocate(weekConfig([]model.Employee{inactive}, nil))
	require.NoError(t, err)

	assert.Empty(t, outcome.Assignments)
	assert.Empty(t, outcome.BelowMinimum)
}

func TestEnforceWeeklyMinimums_InputOrder(t *testing.T) {
	config := AllocationConfig{
		WeekStart: mustDate("2026-10-20"),
		WeekEnd:   mustDate("2026-10-20"),
		Employees: []model.Employee{employee("second", 1), employee("first", 1)},
		Calendar:  noHolidays(),
	}

	outcome, err := Allocate(config)
	require.NoError(t, err)

	require.Len(t, outcome.Assignments, 2)
	assert.Equal(t, "second", outcome.Assignments[0].EmployeeID)
	assert.Equal(t, "first", outcome.Assignments[1].EmployeeID)
}
