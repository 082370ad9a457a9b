package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListEmployeesCmd creates the listEmployees command
func ListEmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listEmployees",
		Short: "List all employees that can be rostered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Info("listEmployees command")

			employees, err := app.Employees.ListEmployees(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list employees: %w", err)
			}

			app.Logger.Info("Employees fetched successfully", zap.Int("count", len(employees)))

			t := newTable("ID", "Name", "Category", "Preferred start", "Min shifts", "Status")
			for _, e := range employees {
				status := "Active"
				if !e.Active {
					status = "Inactive"
				}
				preferred := e.PreferredStart
				if preferred == "" {
					preferred = "-"
				}
				t.Row(e.ID, e.FullName, e.Category, preferred, fmt.Sprintf("%d", e.MinShiftsPerWeek), status)
			}

			fmt.Printf("\nFound %d employees:\n\n", len(employees))
			fmt.Println(t.Render())

			return nil
		},
	}
}
