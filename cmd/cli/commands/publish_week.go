package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shift-roster/pkg/core/services"
)

// PublishWeekCmd creates the publishWeek command
func PublishWeekCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publishWeek [week_start]",
		Short: "Publish a saved week's roster to the roster sheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.SheetsClient == nil {
				return fmt.Errorf("publishWeek needs rosterSheetID and serviceAccountFile in the config")
			}

			end, _ := cmd.Flags().GetString("end")

			var start string
			if len(args) > 0 {
				start = args[0]
			}
			weekStart, weekEnd, err := services.ParseWeek(start, end, time.Now())
			if err != nil {
				return err
			}

			result, err := services.PublishWeek(
				app.Ctx,
				app.Database,
				app.Employees,
				app.SheetsClient,
				app.Calendar,
				app.Cfg.RosterSheetID,
				app.Logger,
				weekStart,
				weekEnd,
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Published %d assignments over %d days to tab %q\n\n", result.Assignments, result.Days, result.TabTitle)

			return nil
		},
	}

	cmd.Flags().String("end", "", "Last date of the range (YYYY-MM-DD, defaults to start + 6 days)")

	return cmd
}
