package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Ingest   IngestConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds the parse-run archive configuration. The DSN selects
// the driver: postgres:// URLs use pgx, anything else is treated as a
// SQLite path.
type DatabaseConfig struct {
	DSN           string
	DialTimeout   time.Duration
	HealthTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// IngestConfig holds drop-directory watcher configuration. WatchDir empty
// disables the watcher.
type IngestConfig struct {
	WatchDir       string
	Debounce       time.Duration
	Workers        int
	QueueSize      int
	ProcessTimeout time.Duration
}

// PipelineConfig holds extraction tunables.
type PipelineConfig struct {
	// LineProximity is the vertical token-grouping threshold in layout
	// units; 0 keeps the built-in default.
	LineProximity float64
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:           getEnv("DB_DSN", "docparse.db"),
			DialTimeout:   getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			HealthTimeout: getEnvAsDuration("DB_HEALTH_TIMEOUT", 5*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Ingest: IngestConfig{
			WatchDir:       getEnv("WATCH_DIR", ""),
			Debounce:       getEnvAsDuration("WATCH_DEBOUNCE", 500*time.Millisecond),
			Workers:        getEnvAsInt("INGEST_WORKERS", 4),
			QueueSize:      getEnvAsInt("INGEST_QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("INGEST_PROCESS_TIMEOUT", time.Minute),
		},
		Pipeline: PipelineConfig{
			LineProximity: getEnvAsFloat64("PIPELINE_LINE_PROXIMITY", 0),
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

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_DSN is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Ingest.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "INGEST_WORKERS must be positive", ErrInvalidInput)
	}
	return nil
}
