package sheetsclient

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jakechorley/shift-roster/pkg/db"
)

// Expected column names in the employees sheet
var employeeFields = []string{
	"ID",
	"Full name",
	"Category",
	"Preferred start",
	"Min shifts",
	"Status",
}

// EmployeeSheet reads the staff list from one tab of a spreadsheet
type EmployeeSheet struct {
	client        *Client
	spreadsheetID string
	tab           string
}

// NewEmployeeSheet returns an employee source backed by the given spreadsheet tab
func NewEmployeeSheet(client *Client, spreadsheetID, tab string) *EmployeeSheet {
	return &EmployeeSheet{client: client, spreadsheetID: spreadsheetID, tab: tab}
}

// ListEmployees retrieves and parses employees from the configured spreadsheet
func (s *EmployeeSheet) ListEmployees(ctx context.Context) ([]db.Employee, error) {
	values, err := s.client.GetValues(ctx, s.spreadsheetID, s.tab)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee data: %w", err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("spreadsheet is empty")
	}

	employees, err := parseEmployees(values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse employees: %w", err)
	}

	return employees, nil
}

// parseEmployees converts raw spreadsheet data into employee records.
// Rows without an ID are skipped. An employee is active when Status reads "Active".
// A blank Min shifts cell means one shift a week; anything below one is rejected.
func parseEmployees(raw [][]interface{}) ([]db.Employee, error) {
	if len(raw) < 1 {
		return nil, fmt.Errorf("no header row found")
	}

	fieldIndexes := make(map[string]int)
	headerRow := raw[0]

	for _, field := range employeeFields {
		index := -1
		for i, cell := range headerRow {
			if cellStr, ok := cell.(string); ok && strings.TrimSpace(cellStr) == field {
				index = i
				break
			}
		}
		if index == -1 {
			return nil, fmt.Errorf("missing required field in header: %s", field)
		}
		fieldIndexes[field] = index
	}

	getField := func(field string, row []interface{}) string {
		index := fieldIndexes[field]
		if index >= len(row) {
			return ""
		}
		if str, ok := row[index].(string); ok {
			return strings.TrimSpace(str)
		}
		return ""
	}

	employees := make([]db.Employee, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		row := raw[i]

		id := getField("ID", row)
		if id == "" {
			continue
		}

		minShifts := 1
		if value := getField("Min shifts", row); value != "" {
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid min shifts %q for employee in row %d", value, i+1)
			}
			minShifts = n
		}

		employees = append(employees, db.Employee{
			ID:               id,
			FullName:         getField("Full name", row),
			Category:         getField("Category", row),
			PreferredStart:   getField("Preferred start", row),
			MinShiftsPerWeek: minShifts,
			Active:           strings.EqualFold(getField("Status", row), "active"),
		})
	}

	return employees, nil
}

var _ db.EmployeeSource = (*EmployeeSheet)(nil)
