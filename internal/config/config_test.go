package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("IDEMPOTENCY_TTL", "")
	t.Setenv("SALON_TIMEZONE", "")

	cfg := Load()

	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	require.Equal(t, "UTC", cfg.SalonTimezone)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("IDEMPOTENCY_TTL", "90m")
	t.Setenv("S3_BUCKET", "viki-exports")

	cfg := Load()

	require.Equal(t, ":9090", cfg.Addr())
	require.Equal(t, 90*time.Minute, cfg.IdempotencyTTL)
	require.Equal(t, "viki-exports", cfg.S3Bucket)
}

func TestParseDurationFallsBack(t *testing.T) {
	require.Equal(t, time.Hour, parseDuration("nope", time.Hour))
	require.Equal(t, time.Hour, parseDuration("-5m", time.Hour))
	require.Equal(t, 5*time.Minute, parseDuration("5m", time.Hour))
}
