package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ChatbotURL      string        `envconfig:"CHATBOT_API_URL"   default:"https://chatbot-omega-ivory-22.vercel.app/api/chat"`
	ChatbotTimeout  time.Duration `envconfig:"CHATBOT_TIMEOUT"   default:"60s"`
	ChatbotInterval time.Duration `envconfig:"CHATBOT_INTERVAL"  default:"1s"`
	Version         string        `envconfig:"TEST_VERSION"      default:"ver1.0"`
	ResultsFile     string        `envconfig:"RESULTS_FILE"      default:"edge_case_results.csv"`

	AppsScriptURL   string        `envconfig:"APPS_SCRIPT_URL"   default:"https://script.google.com/macros/s/AKfycbze5_uqIy0-UFmzOZBiGWF8F0VEe5zxyVTbHzpLrTwBAY0gK_4af5eRX0CZ8Uqv3BxD/exec"`
	UploadSheetName string        `envconfig:"UPLOAD_SHEET_NAME" default:"EdgeCaseTest"`
	UploadTimeout   time.Duration `envconfig:"UPLOAD_TIMEOUT"    default:"30s"`
	UploadInterval  time.Duration `envconfig:"UPLOAD_INTERVAL"   default:"500ms"`
	UploadStrict    bool          `envconfig:"UPLOAD_STRICT"     default:"false"`

	SpreadsheetID  string `envconfig:"SPREADSHEET_ID"   default:"1-YZhxai1zHQOBspas4ivKBiNf8cFnq-JC7IXgFB0to4"`
	CheckSheetName string `envconfig:"CHECK_SHEET_NAME" default:"엣지케이스 시트"`
	SheetsAPIKey   string `envconfig:"SHEETS_API_KEY"`

	DatabaseURL string `envconfig:"DATABASE_URL"`
	APIPort     string `envconfig:"API_PORT"  default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.ChatbotURL == "" {
		return fmt.Errorf("CHATBOT_API_URL must not be empty")
	}
	if c.AppsScriptURL == "" {
		return fmt.Errorf("APPS_SCRIPT_URL must not be empty")
	}
	if c.ResultsFile == "" {
		return fmt.Errorf("RESULTS_FILE must not be empty")
	}

	durations := map[string]time.Duration{
		"CHATBOT_TIMEOUT":  c.ChatbotTimeout,
		"CHATBOT_INTERVAL": c.ChatbotInterval,
		"UPLOAD_TIMEOUT":   c.UploadTimeout,
		"UPLOAD_INTERVAL":  c.UploadInterval,
	}
	for key, value := range durations {
		if value < 0 {
			return fmt.Errorf("invalid value for %s: expected a non-negative duration, got '%s'", key, value)
		}
	}

	return nil
}

// ArchiveEnabled reports whether results should also be written to postgres.
func (c *Config) ArchiveEnabled() bool {
	return c.DatabaseURL != ""
}

// SheetCheckEnabled reports whether the spreadsheet can be inspected before a run.
func (c *Config) SheetCheckEnabled() bool {
	return c.SheetsAPIKey != "" && c.SpreadsheetID != ""
}
