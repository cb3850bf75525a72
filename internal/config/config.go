package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultAPIToken         = "dev-token"
	defaultGRPCAddr         = ":8080"
	defaultSnapshotSchedule = "@daily"
)

// Config holds application configuration
type Config struct {
	DBConnStr        string
	APIToken         string
	GRPCAddr         string
	LogLevel         string
	SnapshotSchedule string // cron spec for the net worth snapshot job
	SnapshotsEnabled bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DBConnStr:        getEnv("DB_CONN_STR", ""),
		APIToken:         getEnv("API_TOKEN", defaultAPIToken),
		GRPCAddr:         getEnv("GRPC_ADDR", defaultGRPCAddr),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", defaultSnapshotSchedule),
		SnapshotsEnabled: true,
	}

	// If explicit string is missing, build it from individual vars (Docker friendly)
	if cfg.DBConnStr == "" {
		cfg.DBConnStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "wealthflow"),
		)
	}

	if enabled := strings.TrimSpace(os.Getenv("SNAPSHOTS_ENABLED")); enabled != "" {
		value, err := strconv.ParseBool(enabled)
		if err != nil {
			return nil, fmt.Errorf("failed to parse SNAPSHOTS_ENABLED: %w", err)
		}
		cfg.SnapshotsEnabled = value
	}

	if cfg.APIToken == "" {
		return nil, fmt.Errorf("API_TOKEN is required")
	}
	if cfg.SnapshotsEnabled && cfg.SnapshotSchedule == "" {
		return nil, fmt.Errorf("SNAPSHOT_SCHEDULE is required when snapshots are enabled")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
