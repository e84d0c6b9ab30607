package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/pkg/config"
)

func TestLoad_DefaultsConSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10, cfg.Inventory.DefaultLowStockThreshold)
	assert.Equal(t, "ORD", cfg.Orders.NumberPrefix)
	assert.True(t, cfg.DB.AutoMigrate)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("INVENTORY_DEFAULT_LOW_STOCK_THRESHOLD", "25")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 25, cfg.Inventory.DefaultLowStockThreshold)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_SinSecretFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "farmacia", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/farmacia?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
