package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/shift-roster/pkg/core/allocator"
	"github.com/jakechorley/shift-roster/pkg/core/calendar"
	"github.com/jakechorley/shift-roster/pkg/core/model"
)

const (
	defaultListenAddr = ":8000"
	defaultLogDir     = "logs"
)

// ShiftTemplate fixes the hours of a named employee
type ShiftTemplate struct {
	EmployeeID string `yaml:"employeeID" validate:"required"`
	Start      string `yaml:"start" validate:"required"`
	End        string `yaml:"end" validate:"required"`
	ShiftType  string `yaml:"shiftType,omitempty" validate:"omitempty,oneof=morning evening"`
	Category   string `yaml:"category,omitempty"`
}

// Holiday marks dates that need extra staff. Exactly one of RRule and Date is set.
type Holiday struct {
	Name       string `yaml:"name" validate:"required"`
	RRule      string `yaml:"rrule,omitempty" validate:"required_without=Date,excluded_with=Date"`
	Date       string `yaml:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExtraStaff int    `yaml:"extraStaff" validate:"min=0"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL        string          `yaml:"databaseURL,omitempty"`
	EmployeeSheetID    string          `yaml:"employeeSheetID,omitempty"`
	EmployeesTab       string          `yaml:"employeesTab,omitempty" validate:"required_with=EmployeeSheetID"`
	RosterSheetID      string          `yaml:"rosterSheetID,omitempty"`
	ServiceAccountFile string          `yaml:"serviceAccountFile,omitempty" validate:"required_with=EmployeeSheetID RosterSheetID"`
	ShiftTemplates     []ShiftTemplate `yaml:"shiftTemplates,omitempty" validate:"dive"`
	Holidays           []Holiday       `yaml:"holidays,omitempty" validate:"dive"`
	RoshChodeshAlerts  bool            `yaml:"roshChodeshAlerts,omitempty"`
	ListenAddr         string          `yaml:"listenAddr,omitempty"`
	LogDir             string          `yaml:"logDir,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates <env>_roster_config.yaml.
// It looks for the config file in the current directory first, then in the user's home directory.
// DATABASE_URL, when set, overrides databaseURL.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(fmt.Sprintf("%s_roster_config.yaml", env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, shift template times and holiday rrules
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("config validation failed: databaseURL or DATABASE_URL is required")
	}

	seen := make(map[string]bool, len(cfg.ShiftTemplates))
	for i, tmpl := range cfg.ShiftTemplates {
		if seen[tmpl.EmployeeID] {
			return fmt.Errorf("duplicate shift template for employee %s", tmpl.EmployeeID)
		}
		seen[tmpl.EmployeeID] = true

		if _, err := time.Parse(model.TimeLayout, tmpl.Start); err != nil {
			return fmt.Errorf("invalid start in shiftTemplates[%d]: %w", i, err)
		}
		if _, err := time.Parse(model.TimeLayout, tmpl.End); err != nil {
			return fmt.Errorf("invalid end in shiftTemplates[%d]: %w", i, err)
		}
	}

	for i, holiday := range cfg.Holidays {
		if holiday.RRule == "" {
			continue
		}
		if _, err := rrule.StrToROption(holiday.RRule); err != nil {
			return fmt.Errorf("invalid rrule in holidays[%d]: %w", i, err)
		}
	}

	return nil
}

// HolidayRules converts the configured holidays for the calendar
func (c *Config) HolidayRules() []calendar.HolidayRule {
	rules := make([]calendar.HolidayRule, 0, len(c.Holidays))
	for _, h := range c.Holidays {
		rules = append(rules, calendar.HolidayRule{
			Name:       h.Name,
			RRule:      h.RRule,
			Date:       h.Date,
			ExtraStaff: h.ExtraStaff,
		})
	}
	return rules
}

// Templates converts the configured shift templates into the allocator's lookup
func (c *Config) Templates() allocator.ShiftTemplates {
	templates := make(allocator.ShiftTemplates, len(c.ShiftTemplates))
	for _, t := range c.ShiftTemplates {
		templates[t.EmployeeID] = allocator.ShiftTemplate{
			StartTime: t.Start,
			EndTime:   t.End,
			ShiftType: model.ShiftType(t.ShiftType),
			Category:  t.Category,
		}
	}
	return templates
}

// findConfigFile searches for the config file in the current directory and home directory
func findConfigFile(configFileName string) (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", configFileName)
}
