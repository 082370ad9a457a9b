package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jakechorley/shift-roster/pkg/core/allocator"
	"github.com/jakechorley/shift-roster/pkg/core/model"
	"github.com/jakechorley/shift-roster/pkg/core/services"
)

const (
	colorGreen  = "10"
	colorYellow = "11"
	colorRed    = "9"
	colorBorder = "240"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorYellow))
)

// fillColor picks the colour for a date from how much of its headcount was met
func fillColor(assigned, required int, green, yellow, red string) string {
	switch {
	case assigned >= required:
		return green
	case required-assigned == 1:
		return yellow
	default:
		return red
	}
}

func formatDate(date string) string {
	parsed, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format("Mon Jan 02")
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(colorBorder))).
		Headers(headers...)
}

// renderDraft formats a drafted week as a per-date table followed by any shortfalls
func renderDraft(result *services.DraftWeekResult, names map[string]string) string {
	byDate := make(map[string][]model.ShiftAssignment)
	for _, a := range result.Assignments {
		byDate[a.Date] = append(byDate[a.Date], a)
	}

	fills := make([]string, 0, len(result.Staffing))
	t := newTable("Date", "Staff", "Shifts")
	for _, s := range result.Staffing {
		shifts := byDate[s.Date]
		sort.SliceStable(shifts, func(i, j int) bool {
			return shifts[i].StartTime < shifts[j].StartTime
		})

		entries := make([]string, 0, len(shifts))
		for _, a := range shifts {
			entries = append(entries, fmt.Sprintf("%s %s-%s", displayName(a.EmployeeID, names), a.StartTime, a.EndTime))
		}

		fills = append(fills, fillColor(len(shifts), s.Required, colorGreen, colorYellow, colorRed))
		t.Row(formatDate(s.Date), fmt.Sprintf("%d/%d", len(shifts), s.Required), strings.Join(entries, "\n"))
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col == 1 && row >= 0 && row < len(fills) {
			return cellStyle.Foreground(lipgloss.Color(fills[row]))
		}
		return cellStyle
	})

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Roster %s to %s", result.WeekStart, result.WeekEnd)))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")

	for _, s := range result.Understaffed {
		b.WriteString(warningStyle.Render(fmt.Sprintf("⚠ %s understaffed: %d of %d", formatDate(s.Date), s.Assigned, s.Required)))
		b.WriteString("\n")
	}
	for _, s := range result.BelowMinimum {
		b.WriteString(warningStyle.Render(fmt.Sprintf("⚠ %s below weekly minimum: %d of %d",
			displayName(s.EmployeeID, names), s.Assigned, s.Minimum)))
		b.WriteString("\n")
	}
	if result.TopUpCount > 0 {
		b.WriteString(fmt.Sprintf("%d shifts added to meet weekly minimums\n", result.TopUpCount))
	}

	return b.String()
}

// renderStaffing formats the staffing report for a week
func renderStaffing(report *services.StaffingReport) string {
	t := newTable("Date", "Required", "Reason")
	for _, d := range report.Dates {
		t.Row(formatDate(d.Date), fmt.Sprintf("%d", d.Required), staffingReason(d))
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return cellStyle
	})

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Staffing %s to %s (%d shifts)", report.WeekStart, report.WeekEnd, report.TotalRequired)))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")

	for _, a := range report.RoshChodeshAlerts {
		b.WriteString(warningStyle.Render(fmt.Sprintf("☾ %s is Rosh Chodesh %s", formatDate(a.Date), a.Month)))
		b.WriteString("\n")
	}

	return b.String()
}

func staffingReason(d allocator.DateStaffing) string {
	var parts []string
	switch d.Reason {
	case allocator.ReasonSpecialDay:
		parts = append(parts, fmt.Sprintf("%s +%d", d.SpecialDayName, d.CalendarExtra))
	case allocator.ReasonMonthStart:
		parts = append(parts, fmt.Sprintf("month start +%d", d.CalendarExtra))
	case allocator.ReasonWeekend:
		parts = append(parts, fmt.Sprintf("weekend +%d", d.CalendarExtra))
	}
	if d.EventExtra > 0 {
		parts = append(parts, fmt.Sprintf("event +%d", d.EventExtra))
	}
	if len(parts) == 0 {
		return "baseline"
	}
	return strings.Join(parts, ", ")
}

func displayName(id string, names map[string]string) string {
	if name := names[id]; name != "" {
		return name
	}
	return id
}
