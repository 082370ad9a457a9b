package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/shift-roster/pkg/db"
)

// GetShiftAssignments retrieves assignments for dates in [from, to]
func (d *DB) GetShiftAssignments(ctx context.Context, from, to string) ([]db.ShiftAssignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, employee_id, shift_date, start_time, end_time, shift_type, category, status, source
		FROM shift_assignment
		WHERE shift_date BETWEEN $1 AND $2
		ORDER BY shift_date, employee_id
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.ShiftAssignment
	for rows.Next() {
		var a db.ShiftAssignment
		var shiftDate time.Time
		if err := rows.Scan(&a.ID, &a.EmployeeID, &shiftDate, &a.StartTime, &a.EndTime, &a.ShiftType, &a.Category, &a.Status, &a.Source); err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		a.ShiftDate = shiftDate.Format("2006-01-02")
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift assignments: %w", err)
	}

	return assignments, nil
}

// UpsertShiftAssignments writes assignments in one transaction.
// An assignment for an (employee, date) pair that already exists replaces its hours
// but keeps the stored ID, status and source.
func (d *DB) UpsertShiftAssignments(ctx context.Context, assignments []db.ShiftAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO shift_assignment (id, employee_id, shift_date, start_time, end_time, shift_type, category, status, source)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (employee_id, shift_date) DO UPDATE SET
				start_time = EXCLUDED.start_time,
				end_time = EXCLUDED.end_time,
				shift_type = EXCLUDED.shift_type,
				category = EXCLUDED.category
		`, a.ID, a.EmployeeID, a.ShiftDate, a.StartTime, a.EndTime, a.ShiftType, a.Category, a.Status, a.Source)
		if err != nil {
			return fmt.Errorf("failed to upsert shift assignment for %s on %s: %w", a.EmployeeID, a.ShiftDate, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

var _ db.Database = (*DB)(nil)
