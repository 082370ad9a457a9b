package allocator

import (
	"fmt"
	"time"

	"github.com/jakechorley/shift-roster/pkg/core/calendar"
	"github.com/jakechorley/shift-roster/pkg/core/model"
)

// AllocationConfig contains everything needed to draft one week
type AllocationConfig struct {
	// WeekStart and WeekEnd bound the week (inclusive); only the date part is used
	WeekStart time.Time
	WeekEnd   time.Time

	// Employees is the full staff list; inactive employees are never assigned
	Employees []model.Employee

	// Availability submitted for the week. When an employee has several entries
	// for the same date the last one wins.
	Availability []model.AvailabilityRequest

	// EventOverrides raise the headcount on specific dates
	EventOverrides []model.EventOverride

	// ExistingAssignments were committed before this run (manual or from a prior run)
	ExistingAssignments []model.ShiftAssignment

	// Calendar reports holidays needing extra staff
	Calendar calendar.Calendar

	// ShiftTemplates fixes the hours of named employees
	ShiftTemplates ShiftTemplates
}

// Allocator drafts a week's roster
type Allocator struct {
	state *RosterState
}

// Allocate drafts the roster for one week.
//
// Each date in ascending order is resolved to a headcount, filled from the
// ranked eligible employees, and finally every active employee below their
// weekly minimum is topped up on open dates. Shortfalls are reported on the
// outcome rather than returned as errors.
func Allocate(config AllocationConfig) (*AllocationOutcome, error) {
	allocator, err := InitAllocation(config)
	if err != nil {
		return nil, err
	}

	for _, date := range allocator.state.Dates {
		allocator.fillDay(date)
	}
	dayPassCount := len(allocator.state.Assignments)

	allocator.enforceWeeklyMinimums()

	return allocator.buildOutcome(dayPassCount), nil
}

// InitAllocation validates the config and builds the initial roster state
func InitAllocation(config AllocationConfig) (*Allocator, error) {
	if config.Calendar == nil {
		return nil, fmt.Errorf("calendar is required")
	}
	if config.WeekEnd.Before(config.WeekStart) {
		return nil, fmt.Errorf("week end %s is before week start %s",
			config.WeekEnd.Format(model.DateLayout), config.WeekStart.Format(model.DateLayout))
	}

	days := WeekDates(config.WeekStart, config.WeekEnd)
	eventExtras := EventExtrasByDate(config.EventOverrides)

	state := &RosterState{
		Dates:        make([]string, 0, len(days)),
		Staffing:     make(map[string]DateStaffing, len(days)),
		Employees:    uniqueEmployees(config.Employees),
		Assignments:  make([]model.ShiftAssignment, 0),
		WeeklyCounts: make(map[string]int),
		availability: make(map[string]map[string]model.AvailabilityRequest),
		existing:     make(map[string]map[string]bool),
		assigned:     make(map[string]map[string]bool),
		templates:    config.ShiftTemplates,
	}

	inWeek := make(map[string]bool, len(days))
	for _, day := range days {
		key := day.Format(model.DateLayout)
		state.Dates = append(state.Dates, key)
		state.Staffing[key] = ResolveStaffing(day, eventExtras[key], config.Calendar)
		inWeek[key] = true
	}

	for _, req := range config.Availability {
		if !inWeek[req.Date] {
			continue
		}
		if state.availability[req.Date] == nil {
			state.availability[req.Date] = make(map[string]model.AvailabilityRequest)
		}
		state.availability[req.Date][req.EmployeeID] = req
	}

	for _, a := range config.ExistingAssignments {
		if !inWeek[a.Date] {
			continue
		}
		if state.existing[a.EmployeeID] == nil {
			state.existing[a.EmployeeID] = make(map[string]bool)
		}
		if !state.existing[a.EmployeeID][a.Date] {
			state.existing[a.EmployeeID][a.Date] = true
			state.WeeklyCounts[a.EmployeeID]++
		}
	}

	return &Allocator{state: state}, nil
}

// uniqueEmployees drops repeated IDs, keeping the first row for each
func uniqueEmployees(employees []model.Employee) []model.Employee {
	seen := make(map[string]bool, len(employees))
	unique := make([]model.Employee, 0, len(employees))
	for _, emp := range employees {
		if seen[emp.ID] {
			continue
		}
		seen[emp.ID] = true
		unique = append(unique, emp)
	}
	return unique
}

// State exposes the allocator's working state
func (a *Allocator) State() *RosterState {
	return a.state
}

// fillDay assigns up to the date's required headcount from the ranked eligible list.
// The first pass only takes employees with a preferred start; the second pass
// fills what is left from the whole list.
func (a *Allocator) fillDay(date string) {
	required := a.state.Staffing[date].Required
	ranked := RankCandidates(date, a.state.EligibleEmployees(date), a.state.WeeklyCounts)

	filled := 0
	for _, emp := range ranked {
		if filled >= required {
			return
		}
		if !emp.HasPreferredStart() || a.state.assigned[emp.ID][date] {
			continue
		}
		a.assign(emp, date)
		filled++
	}

	for _, emp := range ranked {
		if filled >= required {
			return
		}
		if a.state.assigned[emp.ID][date] {
			continue
		}
		a.assign(emp, date)
		filled++
	}
}

// assign records a fabricated shift for the employee on the date
func (a *Allocator) assign(emp model.Employee, date string) {
	a.state.Assignments = append(a.state.Assignments, FabricateShift(emp, date, a.state.templates))

	if a.state.assigned[emp.ID] == nil {
		a.state.assigned[emp.ID] = make(map[string]bool)
	}
	a.state.assigned[emp.ID][date] = true
	a.state.WeeklyCounts[emp.ID]++
}

// buildOutcome creates the final allocation report
func (a *Allocator) buildOutcome(dayPassCount int) *AllocationOutcome {
	outcome := &AllocationOutcome{
		State:            a.state,
		Assignments:      a.state.Assignments,
		TopUpCount:       len(a.state.Assignments) - dayPassCount,
		Understaffed:     []DateShortfall{},
		BelowMinimum:     []MinimumShortfall{},
		ValidationErrors: []RosterValidationError{},
	}

	for _, date := range a.state.Dates {
		required := a.state.Staffing[date].Required
		assigned := a.state.AssignedCount(date)
		if assigned < required {
			outcome.Understaffed = append(outcome.Understaffed, DateShortfall{
				Date:     date,
				Required: required,
				Assigned: assigned,
			})
		}
	}

	for _, emp := range a.state.Employees {
		if !emp.Active {
			continue
		}
		if count := a.state.WeeklyCount(emp.ID); count < emp.MinShiftsPerWeek {
			outcome.BelowMinimum = append(outcome.BelowMinimum, MinimumShortfall{
				EmployeeID: emp.ID,
				Minimum:    emp.MinShiftsPerWeek,
				Assigned:   count,
			})
		}
	}

	outcome.ValidationErrors = ValidateRosterState(a.state)

	return outcome
}
