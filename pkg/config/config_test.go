package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wholesale-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, "usd", cfg.Payment.Currency)
	assert.Equal(t, "products", cfg.Search.Index)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PortTienePrioridad(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestValidate_SinSecretoJWT(t *testing.T) {
	cfg := &config.Config{DB: config.DBConfig{Driver: config.DriverMongo}}
	assert.Error(t, cfg.Validate())
}

func TestValidate_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "x"},
		DB:  config.DBConfig{Driver: "sqlite"},
	}
	assert.Error(t, cfg.Validate())
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{
		Host: "db", Port: 5432, User: "app", Password: "p@ss/word",
		DBName: "wholesale", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/wholesale?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
