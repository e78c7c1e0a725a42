package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Run from a directory without config files so defaults apply
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Development, cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, DriverMemory, cfg.Storage.Driver)

	assert.Equal(t, "2.00", cfg.Marketplace.ReservationFee)
	assert.Equal(t, "1.00", cfg.Marketplace.ApplicationFee)
	assert.Equal(t, 5.0, cfg.Marketplace.SearchRadiusKm)
	assert.Equal(t, "10.00", cfg.Marketplace.InitialBalance)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("PS_STORAGE_DRIVER", DriverPostgres)
	t.Setenv("PS_DB_HOST", "db.internal")
	t.Setenv("PS_DB_USERNAME", "parkspot")
	t.Setenv("PS_DB_NAME", "parkspot_prod")
	t.Setenv("PS_SERVER_PORT", "9090")
	t.Setenv("PS_LOGGER_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "db.internal", cfg.Storage.Database.Host)
	assert.Equal(t, "parkspot", cfg.Storage.Database.Username)
	assert.Equal(t, "parkspot_prod", cfg.Storage.Database.Database)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestGetEnvironment(t *testing.T) {
	t.Run("defaults to development", func(t *testing.T) {
		t.Setenv("PS_ENV", "")
		assert.Equal(t, Development, getEnvironment())
	})

	t.Run("normalizes case", func(t *testing.T) {
		t.Setenv("PS_ENV", "PRODUCTION")
		assert.Equal(t, Production, getEnvironment())
	})
}
