package config

import (
	"os"
	"strconv"

	"datalens/internal/errors"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Output   OutputConfig
	Plot     PlotConfig
	LogLevel string
}

// DataConfig holds input dataset settings
type DataConfig struct {
	Path string
}

// OutputConfig holds chart output settings
type OutputConfig struct {
	Path string
}

// PlotConfig holds chart rendering settings
type PlotConfig struct {
	Style string
	DPI   int
}

// fileConfig mirrors the optional YAML configuration file. Environment
// variables always win over file values.
type fileConfig struct {
	DataPath   string `yaml:"data_path"`
	OutputPath string `yaml:"output_path"`
	LogLevel   string `yaml:"log_level"`
	PlotStyle  string `yaml:"plot_style"`
	PlotDPI    int    `yaml:"plot_dpi"`
}

// Defaults for the passive configuration surface.
const (
	DefaultDataPath   = "data/sample_data.csv"
	DefaultOutputPath = "plots"
	DefaultPlotStyle  = "default"
	DefaultPlotDPI    = 300
)

// Load reads configuration from an optional .env file, an optional YAML file
// named by DATALENS_CONFIG, and environment variables, then validates it.
func Load() (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	config := &Config{
		Data:     DataConfig{Path: DefaultDataPath},
		Output:   OutputConfig{Path: DefaultOutputPath},
		Plot:     PlotConfig{Style: DefaultPlotStyle, DPI: DefaultPlotDPI},
		LogLevel: "INFO",
	}

	if path := os.Getenv("DATALENS_CONFIG"); path != "" {
		if err := applyFile(config, path); err != nil {
			return nil, errors.Wrap(err, "failed to load configuration file")
		}
	}

	config.Data.Path = getEnvOrDefault("DATA_PATH", config.Data.Path)
	config.Output.Path = getEnvOrDefault("OUTPUT_PATH", config.Output.Path)
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", config.LogLevel)
	config.Plot.Style = getEnvOrDefault("PLOT_STYLE", config.Plot.Style)
	config.Plot.DPI = getEnvIntOrDefault("PLOT_DPI", config.Plot.DPI)

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func applyFile(config *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.ConfigInvalid("configuration file not readable: " + path)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return errors.ConfigInvalid("configuration file not valid YAML: " + path)
	}

	if fc.DataPath != "" {
		config.Data.Path = fc.DataPath
	}
	if fc.OutputPath != "" {
		config.Output.Path = fc.OutputPath
	}
	if fc.LogLevel != "" {
		config.LogLevel = fc.LogLevel
	}
	if fc.PlotStyle != "" {
		config.Plot.Style = fc.PlotStyle
	}
	if fc.PlotDPI != 0 {
		config.Plot.DPI = fc.PlotDPI
	}
	return nil
}

func validateConfig(config *Config) error {
	if config.Output.Path == "" {
		return errors.ConfigInvalid("output path is required")
	}
	if config.Plot.DPI <= 0 {
		return errors.ConfigInvalid("plot DPI must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
