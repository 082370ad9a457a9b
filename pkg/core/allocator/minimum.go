package allocator

// enforceWeeklyMinimums tops up every active employee below their weekly minimum.
//
// Open dates are taken in ascending order and availability is deliberately not
// consulted: the contractual minimum outranks the employee's stated preference.
// Employees who run out of open dates are left short without error.
func (a *Allocator) enforceWeeklyMinimums() {
	for _, emp := range a.state.Employees {
		if !emp.Active {
			continue
		}

		shortfall := emp.MinShiftsPerWeek - a.state.WeeklyCount(emp.ID)
		for _, date := range a.state.Dates {
			if shortfall <= 0 {
				break
			}
			if a.state.IsBooked(emp.ID, date) {
				continue
			}
			a.assign(emp, date)
			shortfall--
		}
	}
}
