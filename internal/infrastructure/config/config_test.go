package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "diskmensagem-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "diskmensagem", cfg.Database.DBName)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTokenExpiration)
	assert.Equal(t, 24*time.Hour, cfg.Webhook.IdempotencyTTL)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DM_APP_PORT", "9090")
	t.Setenv("DM_DATABASE_PASSWORD", "secret")
	t.Setenv("DM_REDIS_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoadProductionValidation(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DM_APP_ENV", "production")

	t.Run("rejects default jwt secret", func(t *testing.T) {
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("rejects default seed password", func(t *testing.T) {
		t.Setenv("DM_JWT_SECRET", "a-real-secret")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "admin.seed_password")
	})

	t.Run("passes with real secrets", func(t *testing.T) {
		t.Setenv("DM_JWT_SECRET", "a-real-secret")
		t.Setenv("DM_ADMIN_SEED_PASSWORD", "a-real-password")
		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})
}

func TestDatabaseDSN(t *testing.T) {
	dc := DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", DBName: "dm", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=dm sslmode=disable", dc.DSN())
}

func TestRedisAddr(t *testing.T) {
	rc := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", rc.Addr())
}
