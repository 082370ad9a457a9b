package model

import "strings"

// DateLayout is the civil date format used for every date in the roster
const DateLayout = "2006-01-02"

// TimeLayout is the time-of-day format used for shift start and end times
const TimeLayout = "15:04"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	return p == PriorityHigh || p == PriorityNormal || p == PriorityLow
}

// ParsePriority maps a stored priority tag onto a Priority, defaulting to normal
func ParsePriority(s string) Priority {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return PriorityNormal
	}
	return p
}

type ShiftType string

const (
	ShiftMorning ShiftType = "morning"
	ShiftEvening ShiftType = "evening"
)

func (s ShiftType) IsValid() bool {
	return s == ShiftMorning || s == ShiftEvening
}

type AssignmentStatus string

const (
	StatusPending   AssignmentStatus = "pending"
	StatusConfirmed AssignmentStatus = "confirmed"
)

type AssignmentSource string

const (
	SourceAuto   AssignmentSource = "auto"
	SourceManual AssignmentSource = "manual"
)

// Employee represents a member of staff who can be rostered
type Employee struct {
	ID               string
	FullName         string
	Category         string // work area, e.g. "line", "bar"
	PreferredStart   string // "HH:MM", empty if no preference
	MinShiftsPerWeek int
	Active           bool
}

// HasPreferredStart reports whether the employee submitted a preferred shift start
func (e Employee) HasPreferredStart() bool {
	return strings.TrimSpace(e.PreferredStart) != ""
}

// AvailabilityRequest is an employee's answer for a single date
type AvailabilityRequest struct {
	EmployeeID string
	Date       string
	Available  bool
	Priority   Priority
}

// EventOverride is a manager-entered staffing bump for a date
type EventOverride struct {
	Date                 string
	ExtraEmployeesNeeded int
}

// SpecialDay describes a date the calendar flags as needing extra staff
type SpecialDay struct {
	Date             string
	IsSpecial        bool
	Name             string
	ExtraStaffNeeded int
}

// ShiftAssignment places an employee on a date
type ShiftAssignment struct {
	ID         string
	EmployeeID string
	Date       string
	StartTime  string
	EndTime    string
	ShiftType  ShiftType
	Category   string
	Status     AssignmentStatus
	Source     AssignmentSource
}
