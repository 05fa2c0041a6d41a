package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	Fireflies    FirefliesConfig
	ProjectBrief ProjectBriefConfig
	OpenAI       OpenAIConfig
	Cache        CacheConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
	LogLevel        string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver         string // "sqlite" or "postgres"
	URI            string
	MaxConns       int
	MinConns       int
	AutoMigrate    bool
	ConnectTimeout time.Duration
}

// RedisConfig holds Redis configuration. An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// FirefliesConfig holds Fireflies.ai API and webhook settings
type FirefliesConfig struct {
	APIURL          string        `envconfig:"API_URL" default:"https://api.fireflies.ai/graphql"`
	APIKey          string        `envconfig:"API_KEY"`
	WebhookSecret   string        `envconfig:"WEBHOOK_SECRET"`
	VerifySignature *bool         `envconfig:"VERIFY_SIGNATURE"`
	Timeout         time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// ProjectBriefConfig holds settings for the external project-data microservice
type ProjectBriefConfig struct {
	ServiceURL string        `envconfig:"SERVICE_URL"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"10s"`
	CacheTTL   time.Duration `envconfig:"CACHE_TTL" default:"1h"`
}

// OpenAIConfig holds settings for brief validation via chat completions
type OpenAIConfig struct {
	APIKey            string        `envconfig:"API_KEY"`
	BaseURL           string        `envconfig:"BASE_URL"`
	Model             string        `envconfig:"MODEL" default:"gpt-4o"`
	Temperature       float32       `envconfig:"TEMPERATURE" default:"0.1"`
	ValidationEnabled bool          `envconfig:"VALIDATION_ENABLED" default:"true"`
	CacheTTL          time.Duration `envconfig:"CACHE_TTL" default:"72h"`
	Timeout           time.Duration `envconfig:"TIMEOUT" default:"60s"`
}

// CacheConfig holds settings for the key/value cache store
type CacheConfig struct {
	LazyPullCooldown time.Duration `envconfig:"LAZY_PULL_COOLDOWN" default:"60s"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8000"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Driver:         getEnv("DB_DRIVER", "sqlite"),
			URI:            getEnv("DATABASE_URI", "fireflies.db"),
			MaxConns:       getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:       getEnvAsInt("DB_MIN_CONNS", 2),
			AutoMigrate:    getEnvAsBool("DB_AUTO_MIGRATE", true),
			ConnectTimeout: getEnvAsDuration("DB_CONNECT_TIMEOUT", "30s"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
	}

	if err := envconfig.Process("FIREFLIES", &config.Fireflies); err != nil {
		return nil, fmt.Errorf("failed to load fireflies config: %w", err)
	}
	if err := envconfig.Process("PROJECT_BRIEF", &config.ProjectBrief); err != nil {
		return nil, fmt.Errorf("failed to load project brief config: %w", err)
	}
	if err := envconfig.Process("OPENAI", &config.OpenAI); err != nil {
		return nil, fmt.Errorf("failed to load openai config: %w", err)
	}
	if err := envconfig.Process("CACHE", &config.Cache); err != nil {
		return nil, fmt.Errorf("failed to load cache config: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", c.Database.Driver)
	}
	if c.Database.URI == "" {
		return fmt.Errorf("DATABASE_URI is required")
	}
	if c.Fireflies.Timeout <= 0 {
		return fmt.Errorf("FIREFLIES_TIMEOUT must be positive")
	}
	if c.ProjectBrief.Timeout <= 0 {
		return fmt.Errorf("PROJECT_BRIEF_TIMEOUT must be positive")
	}
	if c.ProjectBrief.CacheTTL < 0 || c.OpenAI.CacheTTL < 0 {
		return fmt.Errorf("cache TTLs must not be negative")
	}
	return nil
}

// VerifySignature reports whether inbound webhooks must carry a valid signature.
// It defaults to true whenever a webhook secret is configured.
func (c *Config) VerifySignature() bool {
	if c.Fireflies.VerifySignature != nil {
		return *c.Fireflies.VerifySignature
	}
	return c.Fireflies.WebhookSecret != ""
}

// IsDevelopment reports whether development-only routes may be exposed
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
