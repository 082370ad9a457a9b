package sheetsclient

import (
	"context"
	"fmt"
	"time"
)

// PublishedShift is one employee's hours on a published date
type PublishedShift struct {
	EmployeeName string
	StartTime    string
	EndTime      string
}

// PublishedDay is a single row in the published roster
type PublishedDay struct {
	Date     string // Format: "2006-01-02"
	Required int
	Shifts   []PublishedShift
}

// PublishedWeek represents the complete published roster for a week
type PublishedWeek struct {
	StartDate string // Format: "2006-01-02"
	EndDate   string // Format: "2006-01-02"
	Days      []PublishedDay
}

// PublishWeek writes a week's roster to its own tab, creating the tab if needed.
// An existing tab for the same week is overwritten.
func (c *Client) PublishWeek(ctx context.Context, spreadsheetID string, week *PublishedWeek) (string, error) {
	tabTitle, err := generateTabTitle(week.StartDate, week.EndDate)
	if err != nil {
		return "", fmt.Errorf("failed to generate tab title: %w", err)
	}

	exists, err := c.HasSheet(ctx, spreadsheetID, tabTitle)
	if err != nil {
		return "", err
	}
	if !exists {
		if _, err := c.CreateSheet(ctx, spreadsheetID, tabTitle); err != nil {
			return "", fmt.Errorf("failed to create tab: %w", err)
		}
	}

	if err := c.ReplaceValues(ctx, spreadsheetID, fmt.Sprintf("'%s'!A1:ZZ", tabTitle), buildRosterRows(week)); err != nil {
		return "", fmt.Errorf("failed to write roster: %w", err)
	}

	return tabTitle, nil
}

// generateTabTitle creates a tab title in the format "Sun Oct 18 2026 - Sat Oct 24 2026"
func generateTabTitle(startDate, endDate string) (string, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return "", fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return "", fmt.Errorf("invalid end date: %w", err)
	}

	return fmt.Sprintf("%s - %s",
		start.Format("Mon Jan 02 2006"),
		end.Format("Mon Jan 02 2006"),
	), nil
}

// buildRosterRows lays out a header row and one row per date with a column per shift
func buildRosterRows(week *PublishedWeek) [][]interface{} {
	maxShifts := 0
	for _, day := range week.Days {
		maxShifts = max(maxShifts, len(day.Shifts))
	}

	header := []interface{}{"Date", "Required"}
	for i := 0; i < maxShifts; i++ {
		header = append(header, fmt.Sprintf("Shift %d", i+1))
	}

	rows := [][]interface{}{header}
	for _, day := range week.Days {
		date := day.Date
		if parsed, err := time.Parse("2006-01-02", day.Date); err == nil {
			date = parsed.Format("Mon Jan 02 2006")
		}

		row := []interface{}{date, day.Required}
		for i := 0; i < maxShifts; i++ {
			if i < len(day.Shifts) {
				s := day.Shifts[i]
				row = append(row, fmt.Sprintf("%s (%s-%s)", s.EmployeeName, s.StartTime, s.EndTime))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}

	return rows
}
