package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonCredential struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// StructuredJSONConfig is the on-disk layout of the optional JSON config
// file.
type StructuredJSONConfig struct {
	App struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	API struct {
		Key string `json:"key"`
	} `json:"api,omitempty"`

	Services struct {
		Mail jsonCredential `json:"mail"`
		User struct {
			jsonCredential
			Sections []string `json:"sections"`
		} `json:"user"`
	} `json:"services,omitempty"`
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
			Name:    jsonCfg.App.Name,
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		API: API{
			Key: jsonCfg.API.Key,
		},
		Services: Services{
			Mail: ServiceCredential{
				URL: jsonCfg.Services.Mail.URL,
				Key: jsonCfg.Services.Mail.Key,
			},
			User: UserService{
				ServiceCredential: ServiceCredential{
					URL: jsonCfg.Services.User.URL,
					Key: jsonCfg.Services.User.Key,
				},
				Sections: jsonCfg.Services.User.Sections,
			},
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
