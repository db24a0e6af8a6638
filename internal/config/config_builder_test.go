package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "fitness.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2000, cfg.App.DefaultCalorieGoal)
	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, "fitness-tracker.log", cfg.Logs.FilePath)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "from-env.db"}},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env.db", cfg.Storage.DB.DSN, "env value must not be overwritten by defaults")
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver, "gaps are filled from defaults")
}

func TestBuild_ValidationRejectsBadDriver(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{Driver: "oracle"}},
	})
	b.withDefaults()

	_, err := b.build()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_ValidationRejectsBadBcryptCost(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{BcryptCost: 99},
	})
	b.withDefaults()

	_, err := b.build()
	require.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_JSONMergedWhenPathGiven(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	var jsonCfg StructuredJSONConfig
	jsonCfg.Storage.DB.Driver = DriverPostgres
	jsonCfg.Storage.DB.DSN = "postgres://localhost:5432/fitness"
	payload, err := json.Marshal(jsonCfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost:5432/fitness", cfg.Storage.DB.DSN)
}
