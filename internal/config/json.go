package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey       string `json:"token_sign_key"`
		TokenAlgorithm     string `json:"token_algorithm"`
		TokenExpireMinutes int    `json:"token_expire_minutes"`
		PasswordHashCost   int    `json:"password_hash_cost"`
		LogLevel           string `json:"log_level"`
		Version            string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Places struct {
		APIKey         string   `json:"api_key"`
		BaseURL        string   `json:"base_url"`
		Latitude       float64  `json:"latitude"`
		Longitude      float64  `json:"longitude"`
		Language       string   `json:"language"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"places,omitempty"`

	Workers struct {
		DenylistCleanupInterval Duration `json:"denylist_cleanup_interval"`
	} `json:"workers,omitempty"`
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
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenAlgorithm:     jsonCfg.App.TokenAlgorithm,
			TokenExpireMinutes: jsonCfg.App.TokenExpireMinutes,
			PasswordHashCost:   jsonCfg.App.PasswordHashCost,
			LogLevel:           jsonCfg.App.LogLevel,
			Version:            jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Places: Places{
			APIKey:         jsonCfg.Places.APIKey,
			BaseURL:        jsonCfg.Places.BaseURL,
			Latitude:       jsonCfg.Places.Latitude,
			Longitude:      jsonCfg.Places.Longitude,
			Language:       jsonCfg.Places.Language,
			RequestTimeout: time.Duration(jsonCfg.Places.RequestTimeout),
		},
		Workers: Workers{
			DenylistCleanupInterval: time.Duration(jsonCfg.Workers.DenylistCleanupInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
