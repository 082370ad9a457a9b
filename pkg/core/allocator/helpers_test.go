package allocator

import (
	"time"

	"github.com/jakechorley/shift-roster/pkg/core/model"
)

// stubCalendar flags the listed dates as special days
type stubCalendar struct {
	special map[string]model.SpecialDay
}

func (c *stubCalendar) SpecialDayInfo(date time.Time) model.SpecialDay {
	key := date.Format(model.DateLayout)
	if info, ok := c.special[key]; ok {
		return info
	}
	return model.SpecialDay{Date: key}
}

func noHolidays() *stubCalendar {
	return &stubCalendar{}
}

func mustDate(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func employee(id string, minShifts int) model.Employee {
	return model.Employee{
		ID:               id,
		FullName:         "Employee " + id,
		Category:         "line",
		MinShiftsPerWeek: minShifts,
		Active:           true,
	}
}

// availableEveryDay builds availability for each employee on every date in [start, end]
func availableEveryDay(start, end string, employeeIDs ...string) []model.AvailabilityRequest {
	var reqs []model.AvailabilityRequest
	for _, day := range WeekDates(mustDate(start), mustDate(end)) {
		for _, id := range employeeIDs {
			reqs = append(reqs, model.AvailabilityRequest{
				EmployeeID: id,
				Date:       day.Format(model.DateLayout),
				Available:  true,
				Priority:   model.PriorityNormal,
			})
		}
	}
	return reqs
}

// countByDate counts assignments per date
func countByDate(assignments []model.ShiftAssignment) map[string]int {
	counts := make(map[string]int)
	for _, a := range assignments {
		counts[a.Date]++
	}
	return counts
}

// countByEmployee counts assignments per employee
func countByEmployee(assignments []model.ShiftAssignment) map[string]int {
	counts := make(map[string]int)
	for _, a := range assignments {
		counts[a.EmployeeID]++
	}
	return counts
}
