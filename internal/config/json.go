package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON names and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		StartURL  string `json:"start_url"`
		Incognito bool   `json:"incognito"`
	} `json:"app,omitempty"`

	Adapter struct {
		APIAddress     string   `json:"api_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Session struct {
			DSN string `json:"dsn"`
		} `json:"session,omitempty"`

		Handoff struct {
			TTL Duration `json:"ttl"`
		} `json:"handoff,omitempty"`
	} `json:"storage,omitempty"`

	Auth struct {
		OAuthPath       string `json:"oauth_path"`
		CallbackAddress string `json:"callback_address"`
		NoBrowser       bool   `json:"no_browser"`
	} `json:"auth,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
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
		App: App{
			StartURL:  jsonCfg.App.StartURL,
			Incognito: jsonCfg.App.Incognito,
		},
		Adapter: Adapter{
			APIAddress:     jsonCfg.Adapter.APIAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			Session: Session{DSN: jsonCfg.Storage.Session.DSN},
			Handoff: Handoff{TTL: time.Duration(jsonCfg.Storage.Handoff.TTL)},
		},
		Auth: Auth{
			OAuthPath:       jsonCfg.Auth.OAuthPath,
			CallbackAddress: jsonCfg.Auth.CallbackAddress,
			NoBrowser:       jsonCfg.Auth.NoBrowser,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
