package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-roster/pkg/core/allocator"
	"github.com/jakechorley/shift-roster/pkg/core/calendar"
	"github.com/jakechorley/shift-roster/pkg/core/model"
	"github.com/jakechorley/shift-roster/pkg/db"
)

// DraftWeekStore defines the database operations needed to draft a week
type DraftWeekStore interface {
	db.RosterReader
	UpsertShiftAssignments(ctx context.Context, assignments []db.ShiftAssignment) error
}

// allocateWeek runs the allocation engine; tests replace it to force outcomes
var allocateWeek = allocator.Allocate

// DraftWeekResult contains the drafted roster and everything it fell short on
type DraftWeekResult struct {
	WeekStart        string
	WeekEnd          string
	Staffing         []allocator.DateStaffing
	Assignments      []model.ShiftAssignment
	WeeklyCounts     map[string]int
	TopUpCount       int
	Understaffed     []allocator.DateShortfall
	BelowMinimum     []allocator.MinimumShortfall
	ValidationErrors []allocator.RosterValidationError
	Saved            bool
}

// DraftWeek drafts the roster for [weekStart, weekEnd] and saves the new assignments.
// If dryRun is true, nothing is written. A roster that fails validation is never saved.
func DraftWeek(
	ctx context.Context,
	database DraftWeekStore,
	employees db.EmployeeSource,
	cal calendar.Calendar,
	templates allocator.ShiftTemplates,
	logger *zap.Logger,
	weekStart, weekEnd time.Time,
	dryRun bool,
) (*DraftWeekResult, error) {
	logger.Debug("Starting draftWeek",
		zap.String("week_start", weekStart.Format(model.DateLayout)),
		zap.String("week_end", weekEnd.Format(model.DateLayout)),
		zap.Bool("dry_run", dryRun))

	snapshot, err := loadWeekSnapshot(ctx, database, employees, logger, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	outcome, err := allocateWeek(allocator.AllocationConfig{
		WeekStart:           weekStart,
		WeekEnd:             weekEnd,
		Employees:           toModelEmployees(snapshot.employees),
		Availability:        toModelAvailability(snapshot.availability),
		EventOverrides:      toModelOverrides(snapshot.overrides),
		ExistingAssignments: toModelAssignments(snapshot.assignments),
		Calendar:            cal,
		ShiftTemplates:      templates,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to allocate week: %w", err)
	}

	for i := range outcome.Assignments {
		outcome.Assignments[i].ID = uuid.New().String()
	}

	result := &DraftWeekResult{
		WeekStart:        weekStart.Format(model.DateLayout),
		WeekEnd:          weekEnd.Format(model.DateLayout),
		Staffing:         orderedStaffing(outcome.State),
		Assignments:      outcome.Assignments,
		WeeklyCounts:     outcome.State.WeeklyCounts,
		TopUpCount:       outcome.TopUpCount,
		Understaffed:     outcome.Understaffed,
		BelowMinimum:     outcome.BelowMinimum,
		ValidationErrors: outcome.ValidationErrors,
	}

	logger.Info("Drafted week",
		zap.String("week_start", result.WeekStart),
		zap.Int("assignments", len(result.Assignments)),
		zap.Int("top_ups", result.TopUpCount))

	for _, s := range result.Understaffed {
		logger.Info("Date understaffed",
			zap.String("date", s.Date),
			zap.Int("required", s.Required),
			zap.Int("assigned", s.Assigned))
	}
	for _, s := range result.BelowMinimum {
		logger.Info("Employee below weekly minimum",
			zap.String("employee_id", s.EmployeeID),
			zap.Int("minimum", s.Minimum),
			zap.Int("assigned", s.Assigned))
	}

	if len(result.ValidationErrors) > 0 {
		for _, ve := range result.ValidationErrors {
			logger.Warn("Roster validation error",
				zap.String("date", ve.Date),
				zap.String("employee_id", ve.EmployeeID),
				zap.String("description", ve.Description))
		}
		if !dryRun {
			return result, fmt.Errorf("drafted roster failed validation with %d errors, not saving", len(result.ValidationErrors))
		}
	}

	if dryRun {
		logger.Info("Dry run, skipping save")
		return result, nil
	}

	if err := database.UpsertShiftAssignments(ctx, toDBAssignments(result.Assignments)); err != nil {
		return result, fmt.Errorf("failed to save assignments: %w", err)
	}
	result.Saved = true

	logger.Info("Saved assignments", zap.Int("count", len(result.Assignments)))

	return result, nil
}

// orderedStaffing returns the resolved staffing for each date in date order
func orderedStaffing(state *allocator.RosterState) []allocator.DateStaffing {
	staffing := make([]allocator.DateStaffing, 0, len(state.Dates))
	for _, date := range state.Dates {
		staffing = append(staffing, state.Staffing[date])
	}
	return staffing
}
