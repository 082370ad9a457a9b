package services

import (
	"fmt"
	"time"

	"github.com/jakechorley/shift-roster/pkg/core/model"
	"github.com/jakechorley/shift-roster/pkg/db"
)

// MaxWeekDays bounds how many dates a single run may cover
const MaxWeekDays = 31

// ParseWeek parses the inclusive date range for a run.
// An empty start means the next Sunday after now; an empty end means start plus six days.
func ParseWeek(start, end string, now time.Time) (time.Time, time.Time, error) {
	var weekStart time.Time
	if start == "" {
		weekStart = nextSunday(now)
	} else {
		parsed, err := time.Parse(model.DateLayout, start)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid week start %q: expected YYYY-MM-DD", start)
		}
		weekStart = parsed
	}

	weekEnd := weekStart.AddDate(0, 0, 6)
	if end != "" {
		parsed, err := time.Parse(model.DateLayout, end)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid week end %q: expected YYYY-MM-DD", end)
		}
		weekEnd = parsed
	}

	if weekEnd.Before(weekStart) {
		return time.Time{}, time.Time{}, fmt.Errorf("week end %s is before week start %s",
			weekEnd.Format(model.DateLayout), weekStart.Format(model.DateLayout))
	}
	if days := int(weekEnd.Sub(weekStart).Hours()/24) + 1; days > MaxWeekDays {
		return time.Time{}, time.Time{}, fmt.Errorf("date range covers %d days, at most %d allowed", days, MaxWeekDays)
	}

	return weekStart, weekEnd, nil
}

// nextSunday returns the Sunday after the given date (a week later if it is already Sunday)
func nextSunday(from time.Time) time.Time {
	normalized := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)

	daysUntilSunday := (7 - int(normalized.Weekday())) % 7
	if daysUntilSunday == 0 {
		daysUntilSunday = 7
	}

	return normalized.AddDate(0, 0, daysUntilSunday)
}

func toModelEmployees(records []db.Employee) []model.Employee {
	employees := make([]model.Employee, 0, len(records))
	for _, r := range records {
		employees = append(employees, model.Employee{
			ID:               r.ID,
			FullName:         r.FullName,
			Category:         r.Category,
			PreferredStart:   r.PreferredStart,
			MinShiftsPerWeek: r.MinShiftsPerWeek,
			Active:           r.Active,
		})
	}
	return employees
}

func toModelAvailability(records []db.AvailabilityRequest) []model.AvailabilityRequest {
	requests := make([]model.AvailabilityRequest, 0, len(records))
	for _, r := range records {
		requests = append(requests, model.AvailabilityRequest{
			EmployeeID: r.EmployeeID,
			Date:       r.ShiftDate,
			Available:  r.Available,
			Priority:   model.ParsePriority(r.Priority),
		})
	}
	return requests
}

func toModelOverrides(records []db.EventOverride) []model.EventOverride {
	overrides := make([]model.EventOverride, 0, len(records))
	for _, r := range records {
		overrides = append(overrides, model.EventOverride{
			Date:                 r.EventDate,
			ExtraEmployeesNeeded: r.ExtraEmployeesNeeded,
		})
	}
	return overrides
}

func toModelAssignments(records []db.ShiftAssignment) []model.ShiftAssignment {
	assignments := make([]model.ShiftAssignment, 0, len(records))
	for _, r := range records {
		assignments = append(assignments, model.ShiftAssignment{
			ID:         r.ID,
			EmployeeID: r.EmployeeID,
			Date:       r.ShiftDate,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			ShiftType:  model.ShiftType(r.ShiftType),
			Category:   r.Category,
			Status:     model.AssignmentStatus(r.Status),
			Source:     model.AssignmentSource(r.Source),
		})
	}
	return assignments
}

func toDBAssignments(assignments []model.ShiftAssignment) []db.ShiftAssignment {
	records := make([]db.ShiftAssignment, 0, len(assignments))
	for _, a := range assignments {
		records = append(records, db.ShiftAssignment{
			ID:         a.ID,
			EmployeeID: a.EmployeeID,
			ShiftDate:  a.Date,
			StartTime:  a.StartTime,
			EndTime:    a.EndTime,
			ShiftType:  string(a.ShiftType),
			Category:   a.Category,
			Status:     string(a.Status),
			Source:     string(a.Source),
		})
	}
	return records
}
