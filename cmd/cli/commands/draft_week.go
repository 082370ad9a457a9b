package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shift-roster/pkg/core/services"
)

// DraftWeekCmd creates the draftWeek command
func DraftWeekCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draftWeek [week_start]",
		Short: "Draft the roster for a week (defaults to next Sunday)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			end, _ := cmd.Flags().GetString("end")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			var start string
			if len(args) > 0 {
				start = args[0]
			}
			weekStart, weekEnd, err := services.ParseWeek(start, end, time.Now())
			if err != nil {
				return err
			}

			result, err := services.DraftWeek(
				app.Ctx,
				app.Database,
				app.Employees,
				app.Calendar,
				app.Cfg.Templates(),
				app.Logger,
				weekStart,
				weekEnd,
				dryRun,
			)
			if result != nil {
				// Unknown names fall back to employee IDs
				names, _ := employeeNames(app)
				fmt.Println()
				fmt.Print(renderDraft(result, names))
			}
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Printf("\nDry run: %d assignments not saved\n\n", len(result.Assignments))
			} else {
				fmt.Printf("\n✓ Saved %d assignments\n\n", len(result.Assignments))
			}

			return nil
		},
	}

	cmd.Flags().String("end", "", "Last date of the range (YYYY-MM-DD, defaults to start + 6 days)")
	cmd.Flags().Bool("dry-run", false, "Draft without saving to the database")

	return cmd
}

func employeeNames(app *AppContext) (map[string]string, error) {
	employees, err := app.Employees.ListEmployees(app.Ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.FullName
	}
	return names, nil
}
