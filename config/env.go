package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"io/fs"
	"os"
	"strconv"
	"time"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "FACEOVERLAY_"

// LoadDotEnv loads environment variables from a .env file if one exists
func LoadDotEnv(file string) error {

	err := godotenv.Load(file)

	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", file, err)
	}

	return nil
}

// ApplyEnv overrides configuration values from FACEOVERLAY_* environment
// variables.  Unparsable values leave the setting unchanged.
func (c *Config) ApplyEnv() {
	c.View.Width = getEnvAsInt("VIEW_WIDTH", c.View.Width)
	c.View.Height = getEnvAsInt("VIEW_HEIGHT", c.View.Height)
	c.ScanPeriod = getEnvAsDuration("SCAN_PERIOD", c.ScanPeriod)
	c.Glyphs = getEnvAsBool("GLYPHS", c.Glyphs)
	c.Theme.OuterColor = getEnv("OUTER_COLOR", c.Theme.OuterColor)
	c.Theme.InnerColor = getEnv("INNER_COLOR", c.Theme.InnerColor)
	c.Theme.ScanColor = getEnv("SCAN_COLOR", c.Theme.ScanColor)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
