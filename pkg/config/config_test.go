package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MAX_FETCH_DEPTH", "")
	t.Setenv("ACADEMIC_YEAR_START_MONTH", "13")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Projection.DefaultPageSize)
	assert.Equal(t, 2, cfg.Projection.MaxFetchDepth)
	assert.Equal(t, 5, cfg.Membership.AcademicYearStartMonth)
	assert.Equal(t, 10*time.Second, cfg.Membership.JoinLockTTL)
	assert.Equal(t, "postgres", cfg.Database.Driver)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("JOIN_LOCK_TTL", "3s")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.Membership.JoinLockTTL)
	assert.True(t, cfg.Redis.Enabled)
}
