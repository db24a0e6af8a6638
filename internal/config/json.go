package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags for the
// optional configuration file.
type StructuredJSONConfig struct {
	App struct {
		DefaultCalorieGoal int `json:"default_calorie_goal"`
		BcryptCost         int `json:"bcrypt_cost"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Logs struct {
		FilePath string `json:"file_path"`
	} `json:"logs,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DefaultCalorieGoal: jsonCfg.App.DefaultCalorieGoal,
			BcryptCost:         jsonCfg.App.BcryptCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Logs: Logs{
			FilePath: jsonCfg.Logs.FilePath,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
