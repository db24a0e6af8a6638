package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_ReadsPrefixedVariables(t *testing.T) {
	t.Setenv("STORAGE_DB_DRIVER", "pgx")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/fitness")
	t.Setenv("APP_DEFAULT_CALORIE_GOAL", "3000")
	t.Setenv("APP_BCRYPT_COST", "11")
	t.Setenv("LOGS_FILE_PATH", "/var/log/fit.log")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost:5432/fitness", cfg.Storage.DB.DSN)
	assert.Equal(t, 3000, cfg.App.DefaultCalorieGoal)
	assert.Equal(t, 11, cfg.App.BcryptCost)
	assert.Equal(t, "/var/log/fit.log", cfg.Logs.FilePath)
}

func TestParseEnv_BadValueFails(t *testing.T) {
	t.Setenv("APP_DEFAULT_CALORIE_GOAL", "not-a-number")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
