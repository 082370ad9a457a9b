package allocator

import (
	"fmt"
	"strings"
	"time"

	"github.com/jakechorley/shift-roster/pkg/core/model"
)

const (
	DefaultShiftStart = "08:00"
	DefaultShiftEnd   = "16:00"
	DefaultCategory   = "line"

	// ShiftLength is added to a preferred start to get the end time
	ShiftLength = 8 * time.Hour

	// EveningStartHour is the first start hour that counts as an evening shift
	EveningStartHour = 14
)

// ShiftTemplate fixes the hours for a named employee
// ShiftType and Category may be left empty to derive them as for any other employee
type ShiftTemplate struct {
	StartTime string
	EndTime   string
	ShiftType model.ShiftType
	Category  string
}

// ShiftTemplates maps employee IDs to their fixed shift template
type ShiftTemplates map[string]ShiftTemplate

// FabricateShift builds the assignment an employee would get on a date.
//
// Hours come from, in order: the employee's shift template, their preferred
// start plus ShiftLength (wrapping past midnight), or the 08:00-16:00 default.
// A preferred start that cannot be parsed falls back to the default.
func FabricateShift(employee model.Employee, date string, templates ShiftTemplates) model.ShiftAssignment {
	assignment := model.ShiftAssignment{
		EmployeeID: employee.ID,
		Date:       date,
		StartTime:  DefaultShiftStart,
		EndTime:    DefaultShiftEnd,
		Category:   employee.Category,
		Status:     model.StatusPending,
		Source:     model.SourceAuto,
	}

	if tmpl, ok := templates[employee.ID]; ok {
		assignment.StartTime = tmpl.StartTime
		assignment.EndTime = tmpl.EndTime
		assignment.ShiftType = tmpl.ShiftType
		if tmpl.Category != "" {
			assignment.Category = tmpl.Category
		}
	} else if employee.HasPreferredStart() {
		if start, end, err := preferredHours(employee.PreferredStart); err == nil {
			assignment.StartTime = start
			assignment.EndTime = end
		}
	}

	if assignment.ShiftType == "" {
		assignment.ShiftType = ShiftTypeFor(assignment.StartTime)
	}
	if strings.TrimSpace(assignment.Category) == "" {
		assignment.Category = DefaultCategory
	}

	return assignment
}

// ShiftTypeFor classifies a start time as a morning or evening shift
func ShiftTypeFor(startTime string) model.ShiftType {
	start, err := time.Parse(model.TimeLayout, strings.TrimSpace(startTime))
	if err != nil || start.Hour() < EveningStartHour {
		return model.ShiftMorning
	}
	return model.ShiftEvening
}

// preferredHours normalises a preferred start and computes the end ShiftLength later
func preferredHours(preferred string) (string, string, error) {
	start, err := time.Parse(model.TimeLayout, strings.TrimSpace(preferred))
	if err != nil {
		return "", "", fmt.Errorf("invalid preferred start %q: %w", preferred, err)
	}

	minutes := start.Hour()*60 + start.Minute()
	endMinutes := (minutes + int(ShiftLength.Minutes())) % (24 * 60)

	return formatMinutes(minutes), formatMinutes(endMinutes), nil
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
