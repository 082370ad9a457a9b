package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jakechorley/shift-roster/pkg/core/model"
)

// Calendar reports which dates need extra staffing
type Calendar interface {
	SpecialDayInfo(date time.Time) model.SpecialDay
}

// HolidayRule describes a recurring or one-off holiday
// Exactly one of RRule or Date is expected to be set
type HolidayRule struct {
	Name       string
	RRule      string
	Date       string
	ExtraStaff int
}

type holiday struct {
	name       string
	rule       *rrule.RRule
	date       string
	extraStaff int
}

// HolidayCalendar answers special day lookups from a fixed set of holiday rules
type HolidayCalendar struct {
	holidays []holiday
}

// ruleEpoch anchors rules that carry no DTSTART of their own
var ruleEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// NewHolidayCalendar parses the holiday rules into a calendar
func NewHolidayCalendar(rules []HolidayRule) (*HolidayCalendar, error) {
	cal := &HolidayCalendar{holidays: make([]holiday, 0, len(rules))}

	for i, r := range rules {
		h := holiday{name: r.Name, extraStaff: r.ExtraStaff}

		switch {
		case r.RRule != "":
			opt, err := rrule.StrToROption(r.RRule)
			if err != nil {
				return nil, fmt.Errorf("invalid rrule for holiday %d (%s): %w", i, r.Name, err)
			}
			if opt.Dtstart.IsZero() {
				opt.Dtstart = ruleEpoch
			}
			rule, err := rrule.NewRRule(*opt)
			if err != nil {
				return nil, fmt.Errorf("invalid rrule for holiday %d (%s): %w", i, r.Name, err)
			}
			h.rule = rule
		case r.Date != "":
			if _, err := time.Parse(model.DateLayout, r.Date); err != nil {
				return nil, fmt.Errorf("invalid date for holiday %d (%s): %w", i, r.Name, err)
			}
			h.date = r.Date
		default:
			return nil, fmt.Errorf("holiday %d (%s) needs either an rrule or a date", i, r.Name)
		}

		cal.holidays = append(cal.holidays, h)
	}

	return cal, nil
}

// SpecialDayInfo returns the holidays falling on the date
// When several holidays coincide their extras are summed
func (c *HolidayCalendar) SpecialDayInfo(date time.Time) model.SpecialDay {
	day := civil(date)
	key := day.Format(model.DateLayout)
	info := model.SpecialDay{Date: key}

	var names []string
	for _, h := range c.holidays {
		if !h.fallsOn(day, key) {
			continue
		}
		info.IsSpecial = true
		info.ExtraStaffNeeded += h.extraStaff
		names = append(names, h.name)
	}
	info.Name = strings.Join(names, ", ")

	return info
}

func (h holiday) fallsOn(day time.Time, key string) bool {
	if h.rule == nil {
		return h.date == key
	}
	end := day.AddDate(0, 0, 1).Add(-time.Second)
	return len(h.rule.Between(day, end, true)) > 0
}

// IsFirstOfMonth reports whether the date is the first day of a Gregorian month
func IsFirstOfMonth(date time.Time) bool {
	return date.Day() == 1
}

// IsWeekend reports whether the date falls on the local weekend (Friday or Saturday)
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Friday || wd == time.Saturday
}

// civil truncates a time to midnight UTC on the same calendar day
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
