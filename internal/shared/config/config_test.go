package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsInDev(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ENV", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("RATE_LIMIT_BURST", "")
	t.Setenv("AUTH_RATE_LIMIT_RPS", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, devJWTSecret, cfg.JWTSecret)
	require.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	require.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSAllowOrigin)
	require.Equal(t, 20, cfg.RateLimitBurst)
	require.InDelta(t, 0.2, cfg.AuthRateLimitRPS, 1e-9)
}

func TestLoadRequiresSecretInProduction(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ENV", "prod")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "postgres://example")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadReadsEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://db/career")
	t.Setenv("TOKEN_TTL", "48h")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Env)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, 48*time.Hour, cfg.TokenTTL)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigin)
}

func TestLoadReadsDotEnvWithoutOverridingEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9090\nJWT_SECRET=from-file\n"), 0o600))
	t.Setenv("ENV", "dev")
	t.Setenv("JWT_SECRET", "from-env")
	// make sure PORT is restored after godotenv sets it
	t.Setenv("PORT", "")
	require.NoError(t, os.Unsetenv("PORT"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "from-env", cfg.JWTSecret)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
