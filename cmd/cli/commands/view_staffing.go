package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shift-roster/pkg/core/services"
)

// ViewStaffingCmd creates the viewStaffing command
func ViewStaffingCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewStaffing [week_start]",
		Short: "Show the required headcount for each date of a week",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			end, _ := cmd.Flags().GetString("end")

			var start string
			if len(args) > 0 {
				start = args[0]
			}
			weekStart, weekEnd, err := services.ParseWeek(start, end, time.Now())
			if err != nil {
				return err
			}

			report, err := services.ViewStaffing(app.Ctx, app.Database, app.Calendar, app.Cfg.RoshChodeshAlerts, app.Logger, weekStart, weekEnd)
			if err != nil {
				return err
			}

			fmt.Println()
			fmt.Print(renderStaffing(report))
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("end", "", "Last date of the range (YYYY-MM-DD, defaults to start + 6 days)")

	return cmd
}
