package allocator

import "github.com/jakechorley/shift-roster/pkg/core/model"

// IsEligible reports whether an employee may be assigned on a date by the day passes:
// they must be active, have marked themselves available, and not already hold a
// pre-existing assignment for that date
func (rs *RosterState) IsEligible(employee model.Employee, date string) bool {
	if !employee.Active {
		return false
	}

	req, ok := rs.availability[date][employee.ID]
	if !ok || !req.Available {
		return false
	}

	return !rs.existing[employee.ID][date]
}

// EligibleEmployees returns the employees eligible for a date, in input order
func (rs *RosterState) EligibleEmployees(date string) []model.Employee {
	eligible := make([]model.Employee, 0)
	for _, emp := range rs.Employees {
		if rs.IsEligible(emp, date) {
			eligible = append(eligible, emp)
		}
	}
	return eligible
}
