package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnv resetea todas las variables que Load consulta.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "STORAGE_DRIVER", "DATA_DIR", "DATABASE_URL",
		"JWT_SECRET", "JWT_TTL", "ADMIN_USERNAME", "ADMIN_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.Error(t, err)
	require.Equal(t, Config{}, cfg)
}

func TestLoad_ShortJWTSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "short")

	_, err := Load()

	require.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "super-secret-test-key")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, DriverJSON, cfg.StorageDriver)
	require.Equal(t, "./data/items", cfg.DataDir)
	require.Equal(t, time.Hour, cfg.JWTTTL)
	require.Equal(t, "admin", cfg.AdminUsername)
	require.Equal(t, "adminpass", cfg.AdminPassword)
}

func TestLoad_PortNormalization(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "super-secret-test-key")
	t.Setenv("PORT", ":9090")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
}

func TestLoad_UnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "super-secret-test-key")
	t.Setenv("STORAGE_DRIVER", "cassandra")

	_, err := Load()

	require.Error(t, err)
}

func TestLoad_PostgresRequiresDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "super-secret-test-key")
	t.Setenv("STORAGE_DRIVER", DriverPostgres)

	_, err := Load()

	require.Error(t, err)
}

func TestLoad_Postgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "super-secret-test-key")
	t.Setenv("STORAGE_DRIVER", DriverPostgres)
	t.Setenv("DATABASE_URL", "postgres://example")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, DriverPostgres, cfg.StorageDriver)
	require.Equal(t, "postgres://example", cfg.DatabaseURL)
}

func TestLoad_InvalidTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "super-secret-test-key")

	for _, ttl := range []string{"banana", "-1h", "0"} {
		t.Setenv("JWT_TTL", ttl)
		_, err := Load()
		require.Error(t, err, "ttl=%q", ttl)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "super-secret-test-key")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("DATA_DIR", "/var/lib/items")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "hunter22")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, 15*time.Minute, cfg.JWTTTL)
	require.Equal(t, "/var/lib/items", cfg.DataDir)
	require.Equal(t, "root", cfg.AdminUsername)
	require.Equal(t, "hunter22", cfg.AdminPassword)
}
