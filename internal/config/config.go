package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// LevelForEnvironment maps APP_ENV to the default log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port        int    `json:"port"`
	Host        string `json:"host"`
	Environment string `json:"environment"`

	// Database configuration
	DBDriver     string `json:"db_driver"`
	DatabaseURL  string `json:"database_url"`
	DBHost       string `json:"db_host"`
	DBPort       string `json:"db_port"`
	DBName       string `json:"db_name"`
	DBUser       string `json:"db_user"`
	DBPassword   string `json:"db_password"`
	DBSSLMode    string `json:"db_sslmode"`
	DBPath       string `json:"db_path"`
	SeedDatabase bool   `json:"db_seed"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	JWTSecret          string   `json:"jwt_secret"`
	AuthEnabled        bool     `json:"auth_enabled"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`

	// Tracing configuration
	TracingEnabled   bool    `json:"otel_enabled"`
	OTLPEndpoint     string  `json:"otel_exporter_otlp_endpoint"`
	OTLPInsecure     bool    `json:"otel_exporter_otlp_insecure"`
	TraceSampleRatio float64 `json:"otel_sampler_ratio"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, DBDriver: %s, DatabaseURL: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBPath: %s, LogLevel: %s, JWTSecret: [REDACTED], AuthEnabled: %t, TracingEnabled: %t}",
		c.Port, c.Host, c.Environment, c.DBDriver, database.MaskURL(c.DatabaseURL), c.DBHost, c.DBName, c.DBUser,
		c.DBPath, c.LogLevel, c.AuthEnabled, c.TracingEnabled)
}

// Database returns the connection settings for the database package
func (c *Config) Database() database.DatabaseConfig {
	return database.DatabaseConfig{
		Driver:   c.DBDriver,
		URL:      c.DatabaseURL,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSSLMode,
		Path:     c.DBPath,
	}
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates formats like DATABASE_URL and APP_PORT
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid APP_PORT: %d out of range", port)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL != "" {
		if _, err := url.ParseRequestURI(dbURL); err != nil {
			return nil, fmt.Errorf("invalid DATABASE_URL format: %w", err)
		}
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	if driver != "sqlite" && driver != "postgres" {
		return nil, fmt.Errorf("invalid DB_DRIVER %q (supported: sqlite, postgres)", driver)
	}

	ratio := GetEnvAsType("OTEL_SAMPLER_RATIO", 1.0)
	if ratio < 0 || ratio > 1 {
		return nil, fmt.Errorf("invalid OTEL_SAMPLER_RATIO: %v not in [0, 1]", ratio)
	}

	environment := GetEnvWithDefault("APP_ENV", "development")
	config := &Config{
		Port:               port,
		Host:               GetEnvWithDefault("APP_HOST", "localhost"),
		Environment:        environment,
		DBDriver:           driver,
		DatabaseURL:        dbURL,
		DBHost:             GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:             GetEnvWithDefault("DB_PORT", "5432"),
		DBName:             GetEnvWithDefault("DB_NAME", "pizza_orders"),
		DBUser:             GetEnvWithDefault("DB_USER", "pizza"),
		DBPassword:         GetEnvWithDefault("DB_PASSWORD", "password"),
		DBSSLMode:          GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:             GetEnvWithDefault("DB_PATH", "pizza_orders.db"),
		SeedDatabase:       GetEnvAsType("DB_SEED", true),
		LogLevel:           GetEnvWithDefault("LOG_LEVEL", LevelForEnvironment(environment).String()),
		JWTSecret:          GetEnvWithDefault("JWT_SECRET", "secret"),
		AuthEnabled:        GetEnvAsType("AUTH_ENABLED", false),
		CORSAllowedOrigins: splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		TracingEnabled:     GetEnvAsType("OTEL_ENABLED", false),
		OTLPEndpoint:       os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTLPInsecure:       GetEnvAsType("OTEL_EXPORTER_OTLP_INSECURE", true),
		TraceSampleRatio:   ratio,
	}
	if config.AuthEnabled && config.JWTSecret == "secret" {
		log.Warn("AUTH_ENABLED is set but JWT_SECRET uses the default value")
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case float64:
		floatValue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return defaultValue
		}
		return any(floatValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
