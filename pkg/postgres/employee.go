package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/shift-roster/pkg/db"
)

// ListEmployees retrieves all employee records ordered by ID
func (d *DB) ListEmployees(ctx context.Context) ([]db.Employee, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, full_name, category, preferred_start, min_shifts_per_week, is_active
		FROM employee
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []db.Employee
	for rows.Next() {
		var e db.Employee
		var preferredStart *string
		if err := rows.Scan(&e.ID, &e.FullName, &e.Category, &preferredStart, &e.MinShiftsPerWeek, &e.Active); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		if preferredStart != nil {
			e.PreferredStart = *preferredStart
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}
