// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
		PasswordHasher string   `json:"password_hasher"`
		BcryptCost     int      `json:"bcrypt_cost"`
		Version        string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN             string `json:"dsn"`
			Name            string `json:"name"`
			ConnectAttempts uint64 `json:"connect_attempts"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
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
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.App.TokenDuration),
			PasswordHasher: jsonCfg.App.PasswordHasher,
			BcryptCost:     jsonCfg.App.BcryptCost,
			Version:        jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:             jsonCfg.Storage.DB.DSN,
				Name:            jsonCfg.Storage.DB.Name,
				ConnectAttempts: jsonCfg.Storage.DB.ConnectAttempts,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
