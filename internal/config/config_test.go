package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, "app_session_id", cfg.SessionCookieName)
	assert.Equal(t, 85, cfg.ImageQuality)
	assert.Equal(t, int64(5*1024*1024), cfg.UploadMaxBytes)
	assert.Equal(t, time.Hour, cfg.ContactRateWindow)
	assert.False(t, cfg.IsProduction())
}

func TestParseFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DATABASE_URL", "file.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("OWNER_OPEN_ID", "owner-1")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "owner-1", cfg.OwnerOpenID)
}

func TestParseRejectsUnknownDBType(t *testing.T) {
	t.Setenv("DB_TYPE", "oracle")

	_, err := Parse()
	require.Error(t, err)
}

func TestParseRejectsWellKnownSecret(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		t.Setenv("APP_ENV", env)
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://hope.example")
		t.Setenv("JWT_SECRET", "changeme")

		_, err := Parse()
		require.Error(t, err, env)
	}
}

func TestParseGeneratesSecretOutsideProduction(t *testing.T) {
	first, err := Parse()
	require.NoError(t, err)
	second, err := Parse()
	require.NoError(t, err)

	assert.Len(t, first.JWTSecret, 64)
	assert.NotEqual(t, "changeme", first.JWTSecret)
	assert.NotEqual(t, first.JWTSecret, second.JWTSecret)
}

func TestProductionRequiresSecretAndOrigins(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://hope.example")

	_, err := Parse()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := Parse()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())

	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	_, err = Parse()
	require.Error(t, err)
}

func TestParseRejectsBadQuality(t *testing.T) {
	t.Setenv("IMAGE_QUALITY", "0")

	_, err := Parse()
	require.Error(t, err)
}
