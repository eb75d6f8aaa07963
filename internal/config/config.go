package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort       = "8080"
	defaultAccessTTL  = "24h"
	defaultRefreshTTL = "168h"
	defaultResetTTL   = "1h"
)

// Config is the full environment surface of the service. Signing secrets have
// no defaults; startup fails when any of them is missing.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	AccessTokenSecret      string
	RefreshTokenSecret     string
	MultiPurposeSecret     string
	AdminAccessTokenSecret string
	RefreshTokenPepper     string

	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	ResetTokenTTL   time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:      strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", "dev"))),
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),

		AccessTokenSecret:      strings.TrimSpace(os.Getenv("ACCESS_TOKEN_SECRET")),
		RefreshTokenSecret:     strings.TrimSpace(os.Getenv("REFRESH_TOKEN_SECRET")),
		MultiPurposeSecret:     strings.TrimSpace(os.Getenv("MULTI_PURPOSE_SECRET")),
		AdminAccessTokenSecret: strings.TrimSpace(os.Getenv("ADMIN_ACCESS_TOKEN_SECRET")),
		RefreshTokenPepper:     strings.TrimSpace(os.Getenv("REFRESH_TOKEN_PEPPER")),

		SMTPHost:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
	}

	var err error
	if cfg.AccessTokenTTL, err = parseDurationEnv("ACCESS_TOKEN_TTL", defaultAccessTTL); err != nil {
		return nil, err
	}
	if cfg.RefreshTokenTTL, err = parseDurationEnv("REFRESH_TOKEN_TTL", defaultRefreshTTL); err != nil {
		return nil, err
	}
	if cfg.ResetTokenTTL, err = parseDurationEnv("RESET_TOKEN_TTL", defaultResetTTL); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	for name, value := range map[string]string{
		"ACCESS_TOKEN_SECRET":       cfg.AccessTokenSecret,
		"REFRESH_TOKEN_SECRET":      cfg.RefreshTokenSecret,
		"MULTI_PURPOSE_SECRET":      cfg.MultiPurposeSecret,
		"ADMIN_ACCESS_TOKEN_SECRET": cfg.AdminAccessTokenSecret,
	} {
		if value == "" {
			return fmt.Errorf("%s must be set", name)
		}
	}
	if cfg.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL must be > 0")
	}
	if cfg.RefreshTokenTTL <= 0 {
		return fmt.Errorf("REFRESH_TOKEN_TTL must be > 0")
	}
	if cfg.ResetTokenTTL <= 0 {
		return fmt.Errorf("RESET_TOKEN_TTL must be > 0")
	}
	return nil
}

// MailConfigured reports whether SMTP delivery can be used instead of the
// dev console mailer.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPassword != ""
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
