package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Remote struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Storage struct {
		DB struct {
			Path string `json:"path"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		Interval       Duration `json:"interval"`
		Background     bool     `json:"background"`
		MaxAttempts    int      `json:"max_attempts"`
		RetryBaseDelay Duration `json:"retry_base_delay"`
	} `json:"sync,omitempty"`

	Server struct {
		Address string `json:"address"`
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
		Remote: Remote{
			BaseURL:        jsonCfg.Remote.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				Path: jsonCfg.Storage.DB.Path,
			},
		},
		Sync: Sync{
			Interval:       time.Duration(jsonCfg.Sync.Interval),
			Background:     jsonCfg.Sync.Background,
			MaxAttempts:    jsonCfg.Sync.MaxAttempts,
			RetryBaseDelay: time.Duration(jsonCfg.Sync.RetryBaseDelay),
		},
		Server: Server{
			Address: jsonCfg.Server.Address,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
