package allocator

import "github.com/jakechorley/shift-roster/pkg/core/model"

// RosterState is the working state for one week while it is being drafted
type RosterState struct {
	// Dates in the week, ascending, formatted as model.DateLayout
	Dates []string

	// Staffing holds the resolved headcount target for each date
	Staffing map[string]DateStaffing

	// Employees in the order they were supplied
	Employees []model.Employee

	// Assignments produced by this run, in the order they were made
	Assignments []model.ShiftAssignment

	// WeeklyCounts is the running number of shifts per employee this week,
	// including assignments that existed before the run
	WeeklyCounts map[string]int

	// availability is keyed by date then employee ID
	availability map[string]map[string]model.AvailabilityRequest

	// existing marks dates each employee was already booked on before the run
	existing map[string]map[string]bool

	// assigned marks dates each employee has been given during this run
	assigned map[string]map[string]bool

	templates ShiftTemplates
}

// WeeklyCount returns the running number of shifts for an employee this week
func (rs *RosterState) WeeklyCount(employeeID string) int {
	return rs.WeeklyCounts[employeeID]
}

// IsBooked reports whether the employee already works on the date, either from
// a pre-existing assignment or one made earlier in this run
func (rs *RosterState) IsBooked(employeeID, date string) bool {
	return rs.existing[employeeID][date] || rs.assigned[employeeID][date]
}

// AssignedCount returns how many assignments this run made for the date
func (rs *RosterState) AssignedCount(date string) int {
	count := 0
	for _, a := range rs.Assignments {
		if a.Date == date {
			count++
		}
	}
	return count
}

// DateShortfall records a date that could not be staffed to its target
type DateShortfall struct {
	Date     string
	Required int
	Assigned int
}

// MinimumShortfall records an employee left below their weekly minimum
type MinimumShortfall struct {
	EmployeeID string
	Minimum    int
	Assigned   int
}

// AllocationOutcome is the result of drafting one week
type AllocationOutcome struct {
	// State is the final roster state
	State *RosterState

	// Assignments produced by this run: day passes in date order, then top-ups
	Assignments []model.ShiftAssignment

	// TopUpCount is how many of the assignments came from the weekly minimum pass
	TopUpCount int

	// Understaffed dates received fewer new assignments than required
	Understaffed []DateShortfall

	// BelowMinimum employees could not be topped up to their weekly minimum
	BelowMinimum []MinimumShortfall

	// ValidationErrors lists broken roster invariants (expected to be empty)
	ValidationErrors []RosterValidationError
}
