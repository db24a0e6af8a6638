package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsFrom_AllFlags(t *testing.T) {
	cfg, err := parseFlagsFrom([]string{
		"-driver", "pgx",
		"-d", "postgres://localhost:5432/fitness",
		"-goal", "2500",
		"-bcrypt-cost", "12",
		"-log-file", "/tmp/fit.log",
		"-config", "/tmp/cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost:5432/fitness", cfg.Storage.DB.DSN)
	assert.Equal(t, 2500, cfg.App.DefaultCalorieGoal)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "/tmp/fit.log", cfg.Logs.FilePath)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
}

func TestParseFlagsFrom_NoFlags(t *testing.T) {
	cfg, err := parseFlagsFrom(nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Storage.DB.Driver)
	assert.Equal(t, 0, cfg.App.DefaultCalorieGoal)
}

func TestParseFlagsFrom_UnknownFlag(t *testing.T) {
	_, err := parseFlagsFrom([]string{"-nope"})
	require.Error(t, err)
}
