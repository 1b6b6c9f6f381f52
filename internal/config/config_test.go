package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.SessionTTL)
	assert.Equal(t, 1.0, cfg.Mock.LatencyScale)
	assert.Equal(t, "silent", cfg.Mock.NotFoundPolicy)
	assert.True(t, cfg.Mock.Seed)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MOCK_LATENCY_SCALE", "0.5")
	t.Setenv("MOCK_NOT_FOUND_POLICY", "strict")
	t.Setenv("MOCK_ID_STRATEGY", "sequence")
	t.Setenv("OUTBOX_SYNC_INTERVAL", "5")
	t.Setenv("SESSION_TTL", "2h")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Mock.LatencyScale)
	assert.Equal(t, "strict", cfg.Mock.NotFoundPolicy)
	assert.Equal(t, "sequence", cfg.Mock.IDStrategy)
	assert.Equal(t, 5*time.Second, cfg.Outbox.SyncInterval)
	assert.Equal(t, 2*time.Hour, cfg.JWT.SessionTTL)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("MOCK_NOT_FOUND_POLICY", "loud")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionNeedsSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_DevelopmentFallsBackToDevSecret(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, devJWTSecret, cfg.JWT.Secret)
}
