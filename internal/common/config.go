package common

import (
	"os"
	"strconv"

	"github.com/planclip/planclip/constants"
)

// Config holds all application configuration
type Config struct {
	Capture CaptureConfig
	Output  OutputConfig
	Log     LogConfig
}

// CaptureConfig holds capture-phase configuration
type CaptureConfig struct {
	// DPI at which the reference page is rendered for the preview.
	// The pixels-per-point scale derived from it (DPI/72) is threaded
	// explicitly into both the renderer and the pixel->point conversion.
	DPI             int
	PreviewMaxWidth int // pixels; 0 disables the cap
}

// OutputConfig holds output-table configuration
type OutputConfig struct {
	Path string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug|info|warn|error
	Format string // json|text
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Capture: CaptureConfig{
			DPI:             getEnvAsInt("PLANCLIP_DPI", 150),
			PreviewMaxWidth: getEnvAsInt("PLANCLIP_PREVIEW_MAX_WIDTH", 1600),
		},
		Output: OutputConfig{
			Path: getEnv("PLANCLIP_OUTPUT", constants.DefaultOutputFile),
		},
		Log: LogConfig{
			Level:  getEnv("PLANCLIP_LOG_LEVEL", "info"),
			Format: getEnv("PLANCLIP_LOG_FORMAT", "json"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
