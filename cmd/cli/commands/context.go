package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-roster/internal/config"
	"github.com/jakechorley/shift-roster/pkg/clients/sheetsclient"
	"github.com/jakechorley/shift-roster/pkg/core/calendar"
	"github.com/jakechorley/shift-roster/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg          *config.Config
	SheetsClient *sheetsclient.Client // nil unless a spreadsheet is configured
	Database     db.Database
	Employees    db.EmployeeSource
	Calendar     *calendar.HolidayCalendar
	Logger       *zap.Logger
	Ctx          context.Context
}
