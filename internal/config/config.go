package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"valiant-hris/internal/pkg/password"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode        string
	Port           string
	Database       DatabaseConfig
	JWT            JWTConfig
	BcryptCost     int
	RedisURL       string
	AllowedOrigins string
	Admin          AdminConfig
	SettleSchedule string
	SeedSampleData bool
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	QueryTimeout time.Duration
}

// JWTConfig holds access token configuration
type JWTConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// AdminConfig is the account seeded when no admin exists
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

const defaultJWTSecret = "default_secret"

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment
func FromEnv() (*Config, error) {
	// trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	database, err := loadDatabaseConfig(appMode)
	if err != nil {
		return nil, err
	}
	jwtConfig, err := loadJWTConfig(appMode)
	if err != nil {
		return nil, err
	}

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(password.DefaultCost)))
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}
	if cost < password.MinCost {
		cost = password.MinCost
	}

	seed, err := strconv.ParseBool(getEnv("SEED_SAMPLE_DATA", strconv.FormatBool(appMode == "dev")))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_SAMPLE_DATA: %w", err)
	}

	config := &Config{
		AppMode:        appMode,
		Port:           getEnv("PORT", "5000"),
		Database:       database,
		JWT:            jwtConfig,
		BcryptCost:     cost,
		RedisURL:       getEnv("REDIS_URL", ""),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
		Admin: AdminConfig{
			Name:     getEnv("ADMIN_NAME", "Administrator"),
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		SettleSchedule: getEnv("PAYROLL_SETTLE_SCHEDULE", "30 0 * * *"),
		SeedSampleData: seed,
	}

	if config.IsProd() && config.JWT.Secret == defaultJWTSecret {
		return nil, fmt.Errorf("PROD_JWT_SECRET must be set in prod mode")
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) (DatabaseConfig, error) {
	prefix := modePrefix(mode)

	timeout, err := time.ParseDuration(getEnv("DB_QUERY_TIMEOUT", "5s"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_QUERY_TIMEOUT: %w", err)
	}

	return DatabaseConfig{
		Host:         getEnv(prefix+"DB_HOST", "localhost"),
		Port:         getEnv(prefix+"DB_PORT", "3306"),
		User:         getEnv(prefix+"DB_USER", "root"),
		Password:     getEnv(prefix+"DB_PASS", ""),
		DBName:       getEnv(prefix+"DB_NAME", "valiant_hris"),
		QueryTimeout: timeout,
	}, nil
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) (JWTConfig, error) {
	expiry, err := ParseExpiry(getEnv("JWT_EXPIRE", "24h"))
	if err != nil {
		return JWTConfig{}, fmt.Errorf("invalid JWT_EXPIRE: %w", err)
	}

	return JWTConfig{
		Secret: getEnv(modePrefix(mode)+"JWT_SECRET", defaultJWTSecret),
		Expiry: expiry,
		Issuer: getEnv("JWT_ISSUER", "valiant-hris"),
	}, nil
}

// ParseExpiry parses a token lifetime: a Go duration ("12h"), a day count ("7d")
// or plain seconds ("3600")
func ParseExpiry(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)

	var d time.Duration
	switch {
	case value == "":
		return 0, fmt.Errorf("empty duration")
	case strings.HasSuffix(value, "d"):
		days, err := strconv.Atoi(strings.TrimSuffix(value, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid day count %q", value)
		}
		d = time.Duration(days) * 24 * time.Hour
	default:
		if secs, err := strconv.Atoi(value); err == nil {
			d = time.Duration(secs) * time.Second
			break
		}
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return 0, err
		}
		d = parsed
	}

	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %q", value)
	}
	return d, nil
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	if c.AllowedOrigins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:3000"
	}
	return c.AllowedOrigins
}
