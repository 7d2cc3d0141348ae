package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Mail     MailConfig
	Queue    QueueConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Env  string // "development" or "production"
	Port string

	// EnforceFutureStart rejects inquiries whose start instant is not in
	// the future. Kept as a toggle: the historical behavior differed
	// between code paths.
	EnforceFutureStart bool
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string
}

// MailConfig holds both email providers plus the template inputs.
type MailConfig struct {
	ResendAPIKey      string
	FromAddress       string
	NotificationEmail string // admin inbox
	ZohoHost          string
	ZohoPort          int
	ZohoEmail         string
	ZohoAppPassword   string
	ContactPhone      string
}

// QueueConfig holds the optional RabbitMQ connection. Empty URL disables
// event publishing.
type QueueConfig struct {
	URL string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		App: AppConfig{
			Env:                getEnv("APP_ENV", "development"),
			Port:               getEnv("PORT", "8080"),
			EnforceFutureStart: getEnvAsBool("ENFORCE_FUTURE_START", true),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Mail: MailConfig{
			ResendAPIKey:      getEnv("RESEND_API_KEY", ""),
			FromAddress:       getEnv("MAIL_FROM", "Console For Everyone <hello@consoleforeveryone.com>"),
			NotificationEmail: getEnv("NOTIFICATION_EMAIL", ""),
			ZohoHost:          getEnv("ZOHO_SMTP_HOST", "smtppro.zoho.in"),
			ZohoPort:          getEnvAsInt("ZOHO_SMTP_PORT", 465),
			ZohoEmail:         getEnv("ZOHO_EMAIL", ""),
			ZohoAppPassword:   getEnv("ZOHO_APP_PASSWORD", ""),
			ContactPhone:      getEnv("CONTACT_PHONE", "+91 9876543210"),
		},
		Queue: QueueConfig{
			URL: getEnv("RABBITMQ_URL", ""),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// IsProduction controls whether error details are echoed to clients.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func validateConfig(cfg *Config) error {
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.Mail.NotificationEmail == "" {
		return fmt.Errorf("NOTIFICATION_EMAIL must be set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
