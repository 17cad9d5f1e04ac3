package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaultsAndOverrides(t *testing.T) {
	t.Setenv("AUTH_URL", "https://auth.example.com")
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DASHBOARD_REFRESH_INTERVAL", "45s")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "0.0.0.0:9090", cfg.ServerAddr())
	require.Equal(t, 45*time.Second, cfg.Dashboard.RefreshInterval)
	require.Equal(t, "+91", cfg.Onboarding.CountryCode)
	require.Equal(t, "sb-access-token", cfg.Auth.AccessCookie)
	require.Equal(t, "authenticated", cfg.Auth.Audience)
}

func TestNewConfigRequiresAuth(t *testing.T) {
	t.Setenv("AUTH_URL", "")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := NewConfig()
	require.Error(t, err)
}

func TestValidateCountryCode(t *testing.T) {
	cfg := Config{
		Server:     ServerConfig{Port: 8080},
		Postgres:   PostgresConfig{Host: "localhost", User: "u", Password: "p", DBName: "d"},
		Auth:       AuthConfig{URL: "https://auth", JWTSecret: "s"},
		Onboarding: OnboardingConfig{CountryCode: "91"},
		Dashboard:  DashboardConfig{RefreshInterval: time.Second},
	}
	require.Error(t, cfg.Validate())

	cfg.Onboarding.CountryCode = "+91"
	require.NoError(t, cfg.Validate())
}
