package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sampleapp/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, config.EnvDevelopment, cfg.App.Environment)
	assert.Equal(t, "sample-app", cfg.App.Name)
	assert.Equal(t, "http://sample2-app:3000", cfg.External.SampleAppURL)
	assert.Equal(t, 5*time.Second, cfg.External.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Shutdown.Timeout)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.NotEmpty(t, cfg.App.BuildDate)
	assert.False(t, cfg.App.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SAMPLE2_APP_URL", "http://downstream:9000")
	t.Setenv("BUILD_DATE", "2024-01-01")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "http://downstream:9000", cfg.External.SampleAppURL)
	assert.Equal(t, "2024-01-01", cfg.App.BuildDate)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("APP_VERSION=2.3.4\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("APP_VERSION") })

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2.3.4", cfg.App.Version)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestLoad_UnknownEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "qa")

	_, err := config.Load()
	require.ErrorIs(t, err, config.ErrUnknownEnvironment)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr error
	}{
		{"valid", func(c *config.Config) {}, nil},
		{"bad port", func(c *config.Config) { c.Server.Port = 70000 }, config.ErrInvalidPort},
		{"zero external timeout", func(c *config.Config) { c.External.Timeout = 0 }, config.ErrInvalidTimeout},
		{"negative shutdown timeout", func(c *config.Config) { c.Shutdown.Timeout = -time.Second }, config.ErrInvalidTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				Server:   config.ServerConfig{Port: 3000},
				App:      config.AppConfig{Environment: config.EnvStaging},
				External: config.ExternalConfig{Timeout: time.Second},
				Shutdown: config.ShutdownConfig{Timeout: time.Second},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
