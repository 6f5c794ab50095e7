package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("PORT", "9090")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, config.DriverMemory, cfg.DBDriver)
	assert.Equal(t, 2, cfg.CurrencyExponent)
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/ledger.db")
	t.Setenv("CURRENCY_EXPONENT", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("JWT_EXPIRY_DURATION", "not-a-duration")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/ledger.db", cfg.SQLitePath)
	assert.Equal(t, 3, cfg.CurrencyExponent)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("postgres without url", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("PGSQL_URL", "")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
	t.Run("no pool connections", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "memory")
		t.Setenv("PGSQL_MAX_CONNS", "0")
		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "PGSQL_MAX_CONNS")
	})
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mongo")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
	t.Run("default secret in production", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "memory")
		t.Setenv("IS_PRODUCTION", "true")
		t.Setenv("JWT_SECRET", "")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}
