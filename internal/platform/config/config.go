// Package config loads application settings from an optional YAML file,
// applies environment overrides and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Storage drivers accepted by database.driver.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
	DriverSpanner  = "spanner"
	DriverMemory   = "memory"
)

// Config holds all application settings.
type Config struct {
	App       AppConfig       `yaml:"app"`
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Spanner   SpannerConfig   `yaml:"spanner"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors"`
}

type AppConfig struct {
	Name        string `yaml:"name" validate:"required"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment" validate:"oneof=development test staging production"`
}

type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gte=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig selects the user store. DSN is ignored by the spanner
// and memory drivers.
type DatabaseConfig struct {
	Driver       string `yaml:"driver" validate:"oneof=sqlite3 postgres spanner memory"`
	DSN          string `yaml:"dsn" validate:"required_unless=Driver spanner Driver memory"`
	MaxOpenConns int    `yaml:"max_open_conns" validate:"gte=0"`
}

type SpannerConfig struct {
	ProjectID  string `yaml:"project_id"`
	InstanceID string `yaml:"instance_id"`
	DatabaseID string `yaml:"database_id"`
}

// DSN returns the Spanner database path.
func (c SpannerConfig) DSN() string {
	return fmt.Sprintf("projects/%s/instances/%s/databases/%s",
		c.ProjectID, c.InstanceID, c.DatabaseID)
}

// KafkaConfig enables forwarding of user events when Brokers is non-empty.
type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic" validate:"required_with=Brokers"`
}

func (c KafkaConfig) Enabled() bool { return len(c.Brokers) > 0 }

type TelemetryConfig struct {
	// TraceEndpoint is the OTLP gRPC collector address; tracing is a no-op when empty.
	TraceEndpoint string  `yaml:"trace_endpoint"`
	SampleRate    float64 `yaml:"sample_rate" validate:"gte=0,lte=1"`
	LogLevel      string  `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// RateLimitConfig limits requests per client IP. RPS 0 disables the limiter.
type RateLimitConfig struct {
	RPS     float64       `yaml:"rps" validate:"gte=0"`
	Burst   int           `yaml:"burst" validate:"gte=0"`
	IdleTTL time.Duration `yaml:"idle_ttl" validate:"gte=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "user-management",
			Version:     "0.1.0",
			Environment: "development",
		},
		Server: ServerConfig{
			Port:            5000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			DSN:    "./usersdata.db",
		},
		Kafka: KafkaConfig{
			Topic: "users.events",
		},
		Telemetry: TelemetryConfig{
			SampleRate: 1.0,
			LogLevel:   "info",
		},
		RateLimit: RateLimitConfig{
			IdleTTL: 3 * time.Minute,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty) and environment overrides, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.App.Environment = getEnv("APP_ENV", c.App.Environment)
	c.Database.Driver = getEnv("DATABASE_DRIVER", c.Database.Driver)
	c.Database.DSN = getEnv("DATABASE_DSN", c.Database.DSN)
	c.Spanner.ProjectID = getEnv("SPANNER_PROJECT_ID", c.Spanner.ProjectID)
	c.Spanner.InstanceID = getEnv("SPANNER_INSTANCE_ID", c.Spanner.InstanceID)
	c.Spanner.DatabaseID = getEnv("SPANNER_DATABASE_ID", c.Spanner.DatabaseID)
	c.Telemetry.TraceEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", c.Telemetry.TraceEndpoint)
	c.Telemetry.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", c.Telemetry.LogLevel))

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = splitList(v)
	}

	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	return nil
}

// Validate checks struct constraints and the cross-section rules the tags
// cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Database.Driver == DriverSpanner {
		if c.Spanner.ProjectID == "" || c.Spanner.InstanceID == "" || c.Spanner.DatabaseID == "" {
			return errors.New("invalid config: spanner project_id, instance_id and database_id are required for the spanner driver")
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
