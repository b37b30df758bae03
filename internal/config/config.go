package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// QuotaOverride replaces the built-in staffing quota for one shift type
type QuotaOverride struct {
	ShiftType string `yaml:"shiftType" validate:"required,oneof=Morning General Afternoon Night WeekendMorning WeekendAfternoon WeekendNight"`
	Seniors   int    `yaml:"seniors" validate:"min=0"`
	Juniors   int    `yaml:"juniors" validate:"min=0"`
}

// HolidayRule marks recurring public holidays. Week generation warns when a
// generated date matches one; it does not skip the date.
type HolidayRule struct {
	Name  string `yaml:"name" validate:"required"`
	RRule string `yaml:"rrule" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	RosterSheetID   string          `yaml:"rosterSheetID,omitempty"`
	RosterTab       string          `yaml:"rosterTab,omitempty"`
	ScheduleSheetID string          `yaml:"scheduleSheetID,omitempty"`
	GmailSender     string          `yaml:"gmailSender,omitempty"`
	QuotaOverrides  []QuotaOverride `yaml:"quotaOverrides,omitempty" validate:"dive"`
	Holidays        []HolidayRule   `yaml:"holidays,omitempty" validate:"dive"`

	// DatabaseURL comes from the environment, not the yaml file
	DatabaseURL string `yaml:"-" validate:"required"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from crewroster.yaml plus the
// DATABASE_URL environment variable. A .env file in the current directory is
// loaded first if present. The config file is looked up in the current
// directory, then in the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
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

	// .env is optional; a missing file is not an error
	godotenv.Load()
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, holiday := range cfg.Holidays {
		if _, err := rrule.StrToRRule(holiday.RRule); err != nil {
			return fmt.Errorf("invalid rrule in holidays[%d] (%s): %w", i, holiday.Name, err)
		}
	}

	return nil
}

// findConfigFile searches for crewroster.yaml in the current directory and
// the user's home directory
func findConfigFile() (string, error) {
	configFileName := "crewroster.yaml"

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

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
