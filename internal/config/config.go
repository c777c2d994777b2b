package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Provider is the read-only view of the configuration handed to the rest of
// the application. Handlers and stores depend on this instead of *Config so
// tests can stub only the getters they need.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetDBURL() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
	GetDBQueryTimeout() time.Duration
	GetLogFormat() string
	GetLogLevel() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr     string
	AppBaseURL     string
	SessionSecret  string
	DBUrl          string
	DBNs           string
	DBDb           string
	DBUser         string
	DBPass         string
	DBQueryTimeout time.Duration
	LogFormat      string
	LogLevel       string
}

const (
	defaultServerAddr     = ":8080"
	defaultAppBaseURL     = "http://localhost:8080"
	defaultDBQueryTimeout = 5 * time.Second
)

// ErrMissingRequired is returned by Load when a required variable is unset.
var ErrMissingRequired = errors.New("required environment variable not set")

// Load reads configuration from the environment. It does not read .env files;
// callers that want that behaviour use New.
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddr:     getEnv("SERVER_ADDR", defaultServerAddr),
		AppBaseURL:     strings.TrimRight(getEnv("APP_BASE_URL", defaultAppBaseURL), "/"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		DBUrl:          os.Getenv("SURREAL_URL"),
		DBUser:         os.Getenv("SURREAL_USER"),
		DBPass:         os.Getenv("SURREAL_PASS"),
		DBNs:           os.Getenv("SURREAL_NS"),
		DBDb:           os.Getenv("SURREAL_DB"),
		DBQueryTimeout: defaultDBQueryTimeout,
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		LogLevel:       getEnv("LOG_LEVEL", "debug"),
	}

	if raw := os.Getenv("DB_QUERY_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_QUERY_TIMEOUT %q: %w", raw, err)
		}
		cfg.DBQueryTimeout = d
	}

	var missing []string
	for name, value := range map[string]string{
		"SURREAL_URL":    cfg.DBUrl,
		"SURREAL_NS":     cfg.DBNs,
		"SURREAL_DB":     cfg.DBDb,
		"SESSION_SECRET": cfg.SessionSecret,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// New loads configuration from a .env file (if present) and the environment.
// It exits the process when required variables are missing.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetServerAddr() string            { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string            { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string         { return c.SessionSecret }
func (c *Config) GetDBURL() string                 { return c.DBUrl }
func (c *Config) GetDBNs() string                  { return c.DBNs }
func (c *Config) GetDBDb() string                  { return c.DBDb }
func (c *Config) GetDBUser() string                { return c.DBUser }
func (c *Config) GetDBPass() string                { return c.DBPass }
func (c *Config) GetDBQueryTimeout() time.Duration { return c.DBQueryTimeout }
func (c *Config) GetLogFormat() string             { return c.LogFormat }
func (c *Config) GetLogLevel() string              { return c.LogLevel }
