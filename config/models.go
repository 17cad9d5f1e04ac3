package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Onboarding OnboardingConfig `mapstructure:"onboarding"`
	Dashboard  DashboardConfig  `mapstructure:"dashboard"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
		return errors.New("postgres credentials are required")
	}
	if c.Postgres.Host == "" {
		return errors.New("postgres.host is required")
	}
	if c.Auth.URL == "" {
		return errors.New("auth.url is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	if !strings.HasPrefix(c.Onboarding.CountryCode, "+") {
		return fmt.Errorf("onboarding.country_code must start with +, got %q", c.Onboarding.CountryCode)
	}
	if c.Dashboard.RefreshInterval <= 0 {
		return errors.New("dashboard.refresh_interval must be positive")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	PublicURL       string        `mapstructure:"public_url"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"db_name"`
	SSLMode        string        `mapstructure:"ssl_mode"`
	MigrationsDir  string        `mapstructure:"migrations_dir"`
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
	AutoMigrate    bool          `mapstructure:"auto_migrate"`
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// AuthConfig points at the hosted auth backend and names the session cookies.
type AuthConfig struct {
	URL            string `mapstructure:"url"`
	AnonKey        string `mapstructure:"anon_key"`
	JWTSecret      string `mapstructure:"jwt_secret"`
	Audience       string `mapstructure:"audience"`
	Provider       string `mapstructure:"provider"`
	AccessCookie   string `mapstructure:"access_cookie"`
	RefreshCookie  string `mapstructure:"refresh_cookie"`
	VerifierCookie string `mapstructure:"verifier_cookie"`
	CookieSecure   bool   `mapstructure:"cookie_secure"`
}

// OnboardingConfig controls business profile creation.
type OnboardingConfig struct {
	CountryCode string `mapstructure:"country_code"`
	Country     string `mapstructure:"country"`
}

// DashboardConfig controls dashboard reads.
type DashboardConfig struct {
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	RecentLeads     int           `mapstructure:"recent_leads"`
}
