package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `env:"GO_ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// DBUrl is optional. When empty the public API answers 503 not_configured.
	DBUrl          string        `env:"DATABASE_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`

	PublicAPIKeyHashes []string `env:"PUBLIC_API_KEY_HASHES" envSeparator:","`
	PublicRateLimitRPS float64  `env:"PUBLIC_RATE_LIMIT_RPS" envDefault:"10"`
	PublicRateBurst    int      `env:"PUBLIC_RATE_LIMIT_BURST" envDefault:"20"`
	AssetBaseURL       string   `env:"ASSET_BASE_URL"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	JWTSecret     string `env:"AUTH_JWT_SECRET"`
	ReviewSLADays int    `env:"REVIEW_SLA_DAYS" envDefault:"3"`

	Email EmailConfig
}

// EmailConfig holds mailer settings. Provider "ses" sends through AWS SES, anything else is a no-op.
type EmailConfig struct {
	Provider              string `env:"EMAIL_PROVIDER" envDefault:"noop"`
	FromAddress           string `env:"EMAIL_FROM_ADDRESS"`
	FromName              string `env:"EMAIL_FROM_NAME" envDefault:"EventHub"`
	AWSRegion             string `env:"AWS_REGION"`
	AWSAccessKeyID        string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey    string `env:"AWS_SECRET_ACCESS_KEY"`
	SESInsecureSkipVerify bool   `env:"SES_INSECURE_SKIP_VERIFY" envDefault:"false"`
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.PublicAPIKeyHashes = compact(cfg.PublicAPIKeyHashes)
	cfg.CORSAllowedOrigins = compact(cfg.CORSAllowedOrigins)

	if cfg.ReviewSLADays < 0 {
		return nil, fmt.Errorf("REVIEW_SLA_DAYS must not be negative, got %d", cfg.ReviewSLADays)
	}
	if cfg.PublicRateLimitRPS <= 0 || cfg.PublicRateBurst < 1 {
		return nil, fmt.Errorf("public rate limit must be positive")
	}
	return cfg, nil
}

// StorageConfigured reports whether a database DSN was supplied.
func (c *Config) StorageConfigured() bool {
	return strings.TrimSpace(c.DBUrl) != ""
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
