package allocator

import "fmt"

// RosterValidationError describes a broken roster invariant
type RosterValidationError struct {
	Date        string
	EmployeeID  string
	Description string
}

// ValidateRosterState checks the invariants every drafted roster must hold:
//   - no employee is given two new assignments on the same date
//   - no new assignment lands on a date the employee was already booked on
//   - no inactive employee is assigned
//   - every date requires at least BaselineStaff
func ValidateRosterState(state *RosterState) []RosterValidationError {
	var errors []RosterValidationError

	active := make(map[string]bool, len(state.Employees))
	for _, emp := range state.Employees {
		active[emp.ID] = emp.Active
	}

	seen := make(map[string]map[string]bool)
	for _, a := range state.Assignments {
		if seen[a.EmployeeID] == nil {
			seen[a.EmployeeID] = make(map[string]bool)
		}
		if seen[a.EmployeeID][a.Date] {
			errors = append(errors, RosterValidationError{
				Date:        a.Date,
				EmployeeID:  a.EmployeeID,
				Description: fmt.Sprintf("employee %s assigned more than once on %s", a.EmployeeID, a.Date),
			})
		}
		seen[a.EmployeeID][a.Date] = true

		if state.existing[a.EmployeeID][a.Date] {
			errors = append(errors, RosterValidationError{
				Date:        a.Date,
				EmployeeID:  a.EmployeeID,
				Description: fmt.Sprintf("employee %s already had an assignment on %s", a.EmployeeID, a.Date),
			})
		}

		if !active[a.EmployeeID] {
			errors = append(errors, RosterValidationError{
				Date:        a.Date,
				EmployeeID:  a.EmployeeID,
				Description: fmt.Sprintf("employee %s is not active", a.EmployeeID),
			})
		}
	}

	for _, date := range state.Dates {
		if required := state.Staffing[date].Required; required < BaselineStaff {
			errors = append(errors, RosterValidationError{
				Date:        date,
				Description: fmt.Sprintf("required staff %d is below baseline %d", required, BaselineStaff),
			})
		}
	}

	return errors
}
