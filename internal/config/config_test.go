package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "moodlight_db", cfg.DBName)
	assert.Equal(t, 168*time.Hour, cfg.JWTAccessExpiry)
	assert.Equal(t, "Asia/Seoul", cfg.RotationTZ)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "smtp.gmail.com", cfg.EmailHost)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("ADMIN_KEY", "sekrit")
	t.Setenv("ROTATION_TZ", "UTC")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, "sekrit", cfg.AdminKey)
	assert.Equal(t, "UTC", cfg.RotationTZ)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_EXPIRY", "not-a-duration")

	cfg := Load()
	assert.Equal(t, 168*time.Hour, cfg.JWTAccessExpiry)
}

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "mood")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "moodlight")

	cfg := Load()
	assert.Equal(t,
		"host=db user=mood password=pw dbname=moodlight port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN(),
	)
}
