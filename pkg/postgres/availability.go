package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/shift-roster/pkg/db"
)

// GetAvailabilityRequests retrieves availability submitted for dates in [from, to].
// Rows come back in submission order so later submissions for the same
// employee and date supersede earlier ones.
func (d *DB) GetAvailabilityRequests(ctx context.Context, from, to string) ([]db.AvailabilityRequest, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, employee_id, shift_date, available, priority
		FROM availability_request
		WHERE shift_date BETWEEN $1 AND $2
		ORDER BY submitted_at, id
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability requests: %w", err)
	}
	defer rows.Close()

	var requests []db.AvailabilityRequest
	for rows.Next() {
		var req db.AvailabilityRequest
		var shiftDate time.Time
		if err := rows.Scan(&req.ID, &req.EmployeeID, &shiftDate, &req.Available, &req.Priority); err != nil {
			return nil, fmt.Errorf("failed to scan availability request: %w", err)
		}
		req.ShiftDate = shiftDate.Format("2006-01-02")
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availability requests: %w", err)
	}

	return requests, nil
}

// GetEventOverrides retrieves event overrides for dates in [from, to]
func (d *DB) GetEventOverrides(ctx context.Context, from, to string) ([]db.EventOverride, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, event_date, extra_employees_needed, description
		FROM event_override
		WHERE event_date BETWEEN $1 AND $2
		ORDER BY event_date, id
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query event overrides: %w", err)
	}
	defer rows.Close()

	var overrides []db.EventOverride
	for rows.Next() {
		var o db.EventOverride
		var eventDate time.Time
		if err := rows.Scan(&o.ID, &eventDate, &o.ExtraEmployeesNeeded, &o.Description); err != nil {
			return nil, fmt.Errorf("failed to scan event override: %w", err)
		}
		o.EventDate = eventDate.Format("2006-01-02")
		overrides = append(overrides, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event overrides: %w", err)
	}

	return overrides, nil
}
