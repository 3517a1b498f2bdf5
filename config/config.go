package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment `yaml:"-"`

	// Server configuration
	ServerHost  string   `yaml:"server_host"`
	ServerPort  string   `yaml:"server_port"`
	CORSOrigins []string `yaml:"cors_origins"`
	LogLevel    string   `yaml:"log_level"`

	// Database configuration
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"-"`
	DBName     string `yaml:"db_name"`
	DBSSLMode  string `yaml:"db_ssl_mode"`

	// Redis configuration. An empty URL disables rate limiting.
	RedisURL      string `yaml:"redis_url"`
	RedisPassword string `yaml:"-"`

	// Recipe page fetching
	FetchTimeout      time.Duration `yaml:"fetch_timeout"`
	FetchMaxBodyBytes int64         `yaml:"fetch_max_body_bytes"`
	FetchUserAgent    string        `yaml:"fetch_user_agent"`
	RepairJSONLD      bool          `yaml:"repair_jsonld"`

	// Rate limiting
	RateLimitWindow   time.Duration `yaml:"rate_limit_window"`
	RateLimitRequests int           `yaml:"rate_limit_requests"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Environment:       Development,
		ServerHost:        "0.0.0.0",
		ServerPort:        "8080",
		LogLevel:          "info",
		DBHost:            "localhost",
		DBPort:            "5432",
		DBUser:            "postgres",
		DBName:            "recipe_extract",
		DBSSLMode:         "disable",
		FetchTimeout:      10 * time.Second,
		FetchMaxBodyBytes: 5 << 20,
		FetchUserAgent:    "recipe-extract/1.0",
		RateLimitWindow:   time.Minute,
		RateLimitRequests: 60,
	}
}

// Addr returns the host:port the HTTP server listens on
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}

// LoadConfig builds the configuration from defaults, an optional YAML file
// named by CONFIG_FILE, environment variables and Docker secrets, in that
// order of precedence.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	if env == Development {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg := Default()
	cfg.Environment = env

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	// Docker secrets win over plain environment variables
	if secret := readSecret("db_password"); secret != "" {
		cfg.DBPassword = secret
	}
	if secret := readSecret("redis_password"); secret != "" {
		cfg.RedisPassword = secret
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadFile overlays the YAML file at path onto cfg
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// loadEnv overlays environment variables onto cfg. Every malformed value is
// reported, not just the first.
func loadEnv(cfg *Config) error {
	var errs []error

	setString(&cfg.ServerHost, "SERVER_HOST")
	setString(&cfg.ServerPort, "SERVER_PORT")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.DBHost, "DB_HOST")
	setString(&cfg.DBPort, "DB_PORT")
	setString(&cfg.DBUser, "DB_USER")
	setString(&cfg.DBPassword, "DB_PASSWORD")
	setString(&cfg.DBName, "DB_NAME")
	setString(&cfg.DBSSLMode, "DB_SSL_MODE")
	setString(&cfg.RedisURL, "REDIS_URL")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.FetchUserAgent, "FETCH_USER_AGENT")

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	errs = appendErr(errs, setDuration(&cfg.FetchTimeout, "FETCH_TIMEOUT"))
	errs = appendErr(errs, setDuration(&cfg.RateLimitWindow, "RATE_LIMIT_WINDOW"))
	errs = appendErr(errs, setInt64(&cfg.FetchMaxBodyBytes, "FETCH_MAX_BODY_BYTES"))
	errs = appendErr(errs, setInt(&cfg.RateLimitRequests, "RATE_LIMIT_REQUESTS"))
	errs = appendErr(errs, setBool(&cfg.RepairJSONLD, "REPAIR_JSONLD"))

	return errors.Join(errs...)
}

func appendErr(errs []error, err error) []error {
	if err != nil {
		return append(errs, err)
	}
	return errs
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return ValidationError{Field: key, Message: fmt.Sprintf("invalid duration %q", v)}
	}
	*dst = d
	return nil
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return ValidationError{Field: key, Message: fmt.Sprintf("invalid integer %q", v)}
	}
	*dst = n
	return nil
}

func setInt64(dst *int64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return ValidationError{Field: key, Message: fmt.Sprintf("invalid integer %q", v)}
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return ValidationError{Field: key, Message: fmt.Sprintf("invalid boolean %q", v)}
	}
	*dst = b
	return nil
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

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
