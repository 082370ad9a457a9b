package allocator

import (
	"time"

	"github.com/jakechorley/shift-roster/pkg/core/calendar"
	"github.com/jakechorley/shift-roster/pkg/core/model"
)

// BaselineStaff is the headcount every date needs before any adjustment
const BaselineStaff = 3

// StaffingReason names the calendar condition that raised a date's headcount
type StaffingReason string

const (
	ReasonNone       StaffingReason = ""
	ReasonSpecialDay StaffingReason = "special_day"
	ReasonMonthStart StaffingReason = "month_start"
	ReasonWeekend    StaffingReason = "weekend"
)

// DateStaffing is the resolved headcount target for a single date
type DateStaffing struct {
	Date           string
	Required       int
	EventExtra     int
	CalendarExtra  int
	Reason         StaffingReason
	SpecialDayName string
}

// ResolveStaffing computes the required headcount for a date.
//
// The event override extra always applies. On top of it at most one calendar
// bonus applies, checked in order: special day, first of month, Friday/Saturday.
// Negative extras are ignored so a date never drops below BaselineStaff.
func ResolveStaffing(date time.Time, eventExtra int, cal calendar.Calendar) DateStaffing {
	staffing := DateStaffing{
		Date:       date.Format(model.DateLayout),
		EventExtra: max(eventExtra, 0),
	}

	if special := cal.SpecialDayInfo(date); special.IsSpecial {
		staffing.Reason = ReasonSpecialDay
		staffing.CalendarExtra = max(special.ExtraStaffNeeded, 0)
		staffing.SpecialDayName = special.Name
	} else if calendar.IsFirstOfMonth(date) {
		staffing.Reason = ReasonMonthStart
		staffing.CalendarExtra = 1
	} else if calendar.IsWeekend(date) {
		staffing.Reason = ReasonWeekend
		staffing.CalendarExtra = 1
	}

	staffing.Required = BaselineStaff + staffing.EventExtra + staffing.CalendarExtra
	return staffing
}

// RequiredStaff returns only the headcount from ResolveStaffing
func RequiredStaff(date time.Time, eventExtra int, cal calendar.Calendar) int {
	return ResolveStaffing(date, eventExtra, cal).Required
}

// EventExtrasByDate sums event override extras per date
func EventExtrasByDate(overrides []model.EventOverride) map[string]int {
	extras := make(map[string]int)
	for _, o := range overrides {
		extras[o.Date] += o.ExtraEmployeesNeeded
	}
	return extras
}

// WeekDates returns every civil date from start to end inclusive
func WeekDates(start, end time.Time) []time.Time {
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	var dates []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
