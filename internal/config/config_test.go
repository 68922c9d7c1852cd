package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "LOG_LEVEL", "STORAGE_BACKEND", "DATA_DIR", "CATEGORY_RULES_FILE", "CURRENCY_SYMBOL"} {
		t.Setenv(key, "")
	}

	env, err := ProcessEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "9446", env.Port)
	assert.Equal(t, "info", env.LogLevel)
	assert.Equal(t, BackendCSV, env.StorageBackend)
	assert.Equal(t, "data", env.DataDir)
	assert.Equal(t, "₹", env.CurrencySymbol)
	assert.Empty(t, env.CategoryRulesFile)
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_BACKEND", "Postgres")
	t.Setenv("POSTGRES_ADDRESS", "db")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("CURRENCY_SYMBOL", "$")

	env, err := ProcessEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "8080", env.Port)
	assert.Equal(t, BackendPostgres, env.StorageBackend)
	assert.Equal(t, "$", env.CurrencySymbol)
	assert.Equal(t, "postgres://postgres:secret@db:5433/postgres?sslmode=disable", env.PostgresURL())
}

func TestProcessEnvironmentVariables_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "abc")
	t.Setenv("STORAGE_BACKEND", "sqlite")

	_, err := ProcessEnvironmentVariables()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port 'abc'")
	assert.Contains(t, err.Error(), "invalid storage backend 'sqlite'")
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Port: "9446", LogLevel: "debug", StorageBackend: BackendCSV, DataDir: "data"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(c *Config)
		want   string
	}{
		{"port out of range", func(c *Config) { c.Port = "70000" }, "must be between 1 and 65535"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level 'loud'"},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, "data dir cannot be empty"},
		{"postgres without address", func(c *Config) { c.StorageBackend = BackendPostgres }, "postgres address and database are required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
