package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Vault struct {
		Password        string `json:"password"`
		FingerprintSeed string `json:"fingerprint_seed"`
		Recovery        string `json:"recovery"`
	} `json:"vault,omitempty"`

	Storage struct {
		Backend string `json:"backend"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		File struct {
			Path string `json:"path"`
		} `json:"file,omitempty"`

		Redis struct {
			Addr        string   `json:"addr"`
			Password    string   `json:"password"`
			DB          int      `json:"db"`
			DialTimeout Duration `json:"dial_timeout"`
			HashKey     string   `json:"hash_key"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
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
		Vault: Vault{
			Password:        jsonCfg.Vault.Password,
			FingerprintSeed: jsonCfg.Vault.FingerprintSeed,
			Recovery:        jsonCfg.Vault.Recovery,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			File: File{
				Path: jsonCfg.Storage.File.Path,
			},
			Redis: RedisConfig{
				Addr:        jsonCfg.Storage.Redis.Addr,
				Password:    jsonCfg.Storage.Redis.Password,
				DB:          jsonCfg.Storage.Redis.DB,
				DialTimeout: time.Duration(jsonCfg.Storage.Redis.DialTimeout),
				HashKey:     jsonCfg.Storage.Redis.HashKey,
			},
		},
		Log: Log{
			File: jsonCfg.Log.File,
		},
		JSONFilePath: "",
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
