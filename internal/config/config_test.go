package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limb-salvage-engine/internal/domain"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	viper.Reset()
	m, err := NewManager()
	require.NoError(t, err)
	return m
}

func TestNewManagerDefaults(t *testing.T) {
	m := newTestManager(t)

	cfg := m.GetConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	assert.Equal(t, 50.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
}

func TestManagerEnvironmentOverride(t *testing.T) {
	t.Setenv("LIMB_SALVAGE_SERVER_PORT", "9090")
	t.Setenv("LIMB_SALVAGE_LOGGING_LEVEL", "debug")

	m := newTestManager(t)
	cfg := m.GetConfig()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestGetServerConfig(t *testing.T) {
	m := newTestManager(t)

	server := m.GetServerConfig()
	require.NotNil(t, server)
	assert.Equal(t, 8080, server.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *domain.Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *domain.Config) {},
		},
		{
			name:    "port zero",
			mutate:  func(cfg *domain.Config) { cfg.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "port out of range",
			mutate:  func(cfg *domain.Config) { cfg.Server.Port = 70000 },
			wantErr: "invalid server port",
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *domain.Config) { cfg.Logging.Level = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "unknown log format",
			mutate:  func(cfg *domain.Config) { cfg.Logging.Format = "xml" },
			wantErr: "invalid log format",
		},
		{
			name:    "non-positive rate limit",
			mutate:  func(cfg *domain.Config) { cfg.RateLimit.RequestsPerSecond = 0 },
			wantErr: "invalid rate limit",
		},
		{
			name:    "non-positive burst",
			mutate:  func(cfg *domain.Config) { cfg.RateLimit.Burst = 0 },
			wantErr: "invalid rate limit burst",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t)
			tt.mutate(m.GetConfig())

			err := m.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateLogLevelCaseInsensitive(t *testing.T) {
	m := newTestManager(t)
	m.GetConfig().Logging.Level = "DEBUG"
	m.GetConfig().Logging.Format = "Text"

	assert.NoError(t, m.Validate())
}
