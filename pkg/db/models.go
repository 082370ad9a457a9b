package db

// Employee represents an employee record
type Employee struct {
	ID               string
	FullName         string
	Category         string
	PreferredStart   string // "HH:MM" or empty
	MinShiftsPerWeek int
	Active           bool
}

// AvailabilityRequest represents an employee's availability for one date
type AvailabilityRequest struct {
	ID         string
	EmployeeID string
	ShiftDate  string // YYYY-MM-DD
	Available  bool
	Priority   string
}

// EventOverride represents extra headcount needed on a date
type EventOverride struct {
	ID                   string
	EventDate            string // YYYY-MM-DD
	ExtraEmployeesNeeded int
	Description          string
}

// ShiftAssignment represents a shift given to an employee
type ShiftAssignment struct {
	ID         string
	EmployeeID string
	ShiftDate  string // YYYY-MM-DD
	StartTime  string // HH:MM
	EndTime    string // HH:MM
	ShiftType  string
	Category   string
	Status     string
	Source     string
}
