package db

import "context"

// EmployeeSource lists the staff that can be rostered.
// Both postgres.DB and the Sheets client implement this interface.
type EmployeeSource interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
}

// RosterReader reads the per-week collections the roster is drafted from.
// from and to are inclusive YYYY-MM-DD dates.
type RosterReader interface {
	GetAvailabilityRequests(ctx context.Context, from, to string) ([]AvailabilityRequest, error)
	GetEventOverrides(ctx context.Context, from, to string) ([]EventOverride, error)
	GetShiftAssignments(ctx context.Context, from, to string) ([]ShiftAssignment, error)
}

// Database defines the interface for all database operations
type Database interface {
	EmployeeSource
	RosterReader
	UpsertShiftAssignments(ctx context.Context, assignments []ShiftAssignment) error
}
