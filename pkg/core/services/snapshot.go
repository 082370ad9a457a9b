package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jakechorley/shift-roster/pkg/core/model"
	"github.com/jakechorley/shift-roster/pkg/db"
)

// weekSnapshot holds the four input collections for one run
type weekSnapshot struct {
	employees    []db.Employee
	availability []db.AvailabilityRequest
	overrides    []db.EventOverride
	assignments  []db.ShiftAssignment
}

// loadWeekSnapshot reads the collections concurrently.
// The first failure cancels the remaining reads and is returned as a DataLoadError.
func loadWeekSnapshot(
	ctx context.Context,
	reader db.RosterReader,
	employees db.EmployeeSource,
	logger *zap.Logger,
	weekStart, weekEnd time.Time,
) (*weekSnapshot, error) {
	from := weekStart.Format(model.DateLayout)
	to := weekEnd.Format(model.DateLayout)

	logger.Debug("Loading week snapshot", zap.String("from", from), zap.String("to", to))

	snapshot := &weekSnapshot{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := employees.ListEmployees(gctx)
		if err != nil {
			return &DataLoadError{Collection: "employees", Err: err}
		}
		snapshot.employees = records
		return nil
	})
	g.Go(func() error {
		records, err := reader.GetAvailabilityRequests(gctx, from, to)
		if err != nil {
			return &DataLoadError{Collection: "availability requests", Err: err}
		}
		snapshot.availability = records
		return nil
	})
	g.Go(func() error {
		records, err := reader.GetEventOverrides(gctx, from, to)
		if err != nil {
			return &DataLoadError{Collection: "event overrides", Err: err}
		}
		snapshot.overrides = records
		return nil
	})
	g.Go(func() error {
		records, err := reader.GetShiftAssignments(gctx, from, to)
		if err != nil {
			return &DataLoadError{Collection: "shift assignments", Err: err}
		}
		snapshot.assignments = records
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("Loaded week snapshot",
		zap.Int("employees", len(snapshot.employees)),
		zap.Int("availability_requests", len(snapshot.availability)),
		zap.Int("event_overrides", len(snapshot.overrides)),
		zap.Int("existing_assignments", len(snapshot.assignments)))

	return snapshot, nil
}
