package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	Trip    TripConfig    `mapstructure:"trip"`
	Display DisplayConfig `mapstructure:"display"`
	History HistoryConfig `mapstructure:"history"`
}

// SourceConfig configures where trip snapshots come from
type SourceConfig struct {
	Type     string `mapstructure:"type"` // "api", "file" or "composite"
	APIURL   string `mapstructure:"api_url"`
	APIToken string `mapstructure:"api_token"`
	FilePath string `mapstructure:"file_path"`
}

// TripConfig selects the trip to work with
type TripConfig struct {
	ID string `mapstructure:"id"`
}

// DisplayConfig represents output and logging configuration
type DisplayConfig struct {
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`
}

// HistoryConfig configures the history view
type HistoryConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.trip-itinerary")
		v.AddConfigPath("/etc/trip-itinerary")
	}

	// Read environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Trip.ID == "" {
		return fmt.Errorf("trip.id is required")
	}

	srcType := c.Source.Type
	if srcType == "" {
		srcType = "api"
	}

	switch srcType {
	case "api":
		if c.Source.APIURL == "" {
			return fmt.Errorf("source.api_url is required for api type")
		}
	case "file":
		if c.Source.FilePath == "" {
			return fmt.Errorf("source.file_path is required for file type")
		}
	case "composite":
		if c.Source.APIURL == "" {
			return fmt.Errorf("source.api_url is required for composite type")
		}
		if c.Source.FilePath == "" {
			return fmt.Errorf("source.file_path is required for composite type")
		}
	default:
		return fmt.Errorf("source.type must be 'api', 'file' or 'composite', got '%s'", srcType)
	}

	if c.History.PageSize < 0 {
		return fmt.Errorf("history.page_size must not be negative")
	}

	return nil
}

// GetSourceType returns the effective source type
func (c *SourceConfig) GetSourceType() string {
	if c.Type == "" {
		return "api"
	}
	return c.Type
}

// GetPageSize returns the history page size
func (c *HistoryConfig) GetPageSize() int {
	if c.PageSize <= 0 {
		return 5
	}
	return c.PageSize
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Source.APIToken = os.ExpandEnv(c.Source.APIToken)
	c.Source.APIURL = os.ExpandEnv(c.Source.APIURL)
}
