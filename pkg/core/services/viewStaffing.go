package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-roster/pkg/core/allocator"
	"github.com/jakechorley/shift-roster/pkg/core/calendar"
	"github.com/jakechorley/shift-roster/pkg/core/model"
	"github.com/jakechorley/shift-roster/pkg/db"
)

// StaffingStore defines the database operations needed to view staffing
type StaffingStore interface {
	GetEventOverrides(ctx context.Context, from, to string) ([]db.EventOverride, error)
}

// RoshChodeshAlert flags a date that starts a Hebrew month
type RoshChodeshAlert struct {
	Date  string
	Month string
}

// StaffingReport lists the headcount each date of a week needs
type StaffingReport struct {
	WeekStart         string
	WeekEnd           string
	Dates             []allocator.DateStaffing
	TotalRequired     int
	RoshChodeshAlerts []RoshChodeshAlert
}

// ViewStaffing resolves the required headcount for every date in [weekStart, weekEnd].
// When roshChodesh is set, dates that begin a Hebrew month are reported as alerts;
// they never change the headcount.
func ViewStaffing(
	ctx context.Context,
	database StaffingStore,
	cal calendar.Calendar,
	roshChodesh bool,
	logger *zap.Logger,
	weekStart, weekEnd time.Time,
) (*StaffingReport, error) {
	from := weekStart.Format(model.DateLayout)
	to := weekEnd.Format(model.DateLayout)

	logger.Debug("Fetching event overrides", zap.String("from", from), zap.String("to", to))
	overrides, err := database.GetEventOverrides(ctx, from, to)
	if err != nil {
		return nil, &DataLoadError{Collection: "event overrides", Err: err}
	}
	logger.Debug("Found event overrides", zap.Int("count", len(overrides)))

	extras := allocator.EventExtrasByDate(toModelOverrides(overrides))

	report := &StaffingReport{
		WeekStart:         from,
		WeekEnd:           to,
		Dates:             []allocator.DateStaffing{},
		RoshChodeshAlerts: []RoshChodeshAlert{},
	}

	for _, day := range allocator.WeekDates(weekStart, weekEnd) {
		key := day.Format(model.DateLayout)
		staffing := allocator.ResolveStaffing(day, extras[key], cal)
		report.Dates = append(report.Dates, staffing)
		report.TotalRequired += staffing.Required

		if !roshChodesh {
			continue
		}
		if ok, month := calendar.RoshChodesh(day); ok {
			report.RoshChodeshAlerts = append(report.RoshChodeshAlerts, RoshChodeshAlert{Date: key, Month: month})
			logger.Info("Rosh Chodesh in range", zap.String("date", key), zap.String("month", month))
		}
	}

	return report, nil
}
