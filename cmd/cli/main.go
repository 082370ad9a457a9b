package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-roster/cmd/cli/commands"
	"github.com/jakechorley/shift-roster/internal/config"
	"github.com/jakechorley/shift-roster/pkg/clients/sheetsclient"
	"github.com/jakechorley/shift-roster/pkg/core/calendar"
	"github.com/jakechorley/shift-roster/pkg/postgres"
	"github.com/jakechorley/shift-roster/pkg/utils/logging"
)

var (
	env      string
	app      = &commands.AppContext{}
	database *postgres.DB
)

func main() {
	// Secrets such as DATABASE_URL may live in a local .env file
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Shift Roster CLI - Draft weekly staff rosters",
		Long:  `A CLI tool for drafting weekly shift rosters from employee availability, holidays and staffing rules.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if database != nil {
				database.Close()
			}
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	_ = rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.DraftWeekCmd(app))
	rootCmd.AddCommand(commands.ViewStaffingCmd(app))
	rootCmd.AddCommand(commands.ListEmployeesCmd(app))
	rootCmd.AddCommand(commands.PublishWeekCmd(app))
	rootCmd.AddCommand(commands.ServeCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up config, logger, calendar, database and the employee source
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger, err = logging.InitLogger(env, app.Cfg.LogDir)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Calendar, err = calendar.NewHolidayCalendar(app.Cfg.HolidayRules())
	if err != nil {
		return fmt.Errorf("failed to build holiday calendar: %w", err)
	}
	app.Logger.Debug("Holiday calendar loaded", zap.Int("holidays", len(app.Cfg.Holidays)))

	app.Logger.Info("Connecting to database")
	database, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Database = database
	app.Employees = database
	app.Logger.Debug("Database initialized successfully")

	if app.Cfg.ServiceAccountFile != "" {
		app.Logger.Info("Initializing sheets client")
		app.SheetsClient, err = sheetsclient.NewClient(app.Ctx, app.Cfg.ServiceAccountFile)
		if err != nil {
			return fmt.Errorf("failed to create sheets client: %w", err)
		}
	}

	if app.Cfg.EmployeeSheetID != "" {
		app.Logger.Info("Reading employees from sheet", zap.String("spreadsheet_id", app.Cfg.EmployeeSheetID))
		app.Employees = sheetsclient.NewEmployeeSheet(app.SheetsClient, app.Cfg.EmployeeSheetID, app.Cfg.EmployeesTab)
	}

	return nil
}
