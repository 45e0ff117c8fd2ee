package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, config.StoragePostgres, cfg.DB.Driver)
	assert.Equal(t, 30, cfg.JWT.Expiration)
	assert.Equal(t, 30*time.Minute, cfg.JWT.TTL())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.Orders.StrictProducts, "por defecto los ids inexistentes se descartan")
	assert.True(t, cfg.DB.AutoMigrate)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("JWT_EXPIRATION_MINUTES", "5")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("ORDERS_STRICT_PRODUCTS", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.JWT.TTL())
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.StorageMemory, cfg.DB.Driver)
	assert.True(t, cfg.Orders.StrictProducts)
}

func TestLoad_SinSecretFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "comercio", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/comercio?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
