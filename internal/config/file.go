package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// StructuredFileConfig is the on-disk layout shared by JSON and TOML
// configuration files.
type StructuredFileConfig struct {
	App struct {
		TokenSignKey      string   `json:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer" toml:"token_issuer"`
		TokenDuration     Duration `json:"token_duration" toml:"token_duration"`
		AdminPasswordHash string   `json:"admin_password_hash" toml:"admin_password_hash"`
		Version           string   `json:"version" toml:"version"`
	} `json:"app,omitempty" toml:"app"`

	Remote struct {
		Host     string   `json:"host" toml:"host"`
		Port     int      `json:"port" toml:"port"`
		Password string   `json:"password" toml:"password"`
		Enabled  bool     `json:"enabled" toml:"enabled"`
		Timeout  Duration `json:"timeout" toml:"timeout"`
	} `json:"remote,omitempty" toml:"remote"`

	Sync struct {
		ScheduleEnabled bool     `json:"schedule_enabled" toml:"schedule_enabled"`
		Hour            *int     `json:"hour" toml:"hour"`
		Minute          *int     `json:"minute" toml:"minute"`
		RemoveExtras    bool     `json:"remove_extras" toml:"remove_extras"`
		Cooldown        *Duration `json:"cooldown" toml:"cooldown"`
	} `json:"sync,omitempty" toml:"sync"`

	Storage struct {
		WhitelistPath string `json:"whitelist_path" toml:"whitelist_path"`
		Backup        struct {
			Enabled *bool  `json:"enabled" toml:"enabled"`
			Dir     string `json:"dir" toml:"dir"`
			MaxKeep *int   `json:"max_keep" toml:"max_keep"`
		} `json:"backup,omitempty" toml:"backup"`
		Audit struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"audit,omitempty" toml:"audit"`
	} `json:"storage,omitempty" toml:"storage"`

	Import struct {
		MaxBytes         int64 `json:"max_bytes" toml:"max_bytes"`
		PropagateNewOnly bool  `json:"propagate_new_only" toml:"propagate_new_only"`
	} `json:"import,omitempty" toml:"import"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"server,omitempty" toml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
		TokenFile      string   `json:"token_file" toml:"token_file"`
	} `json:"adapter,omitempty" toml:"adapter"`
}

// parseFile reads a configuration file, choosing TOML for ".toml" paths and
// JSON otherwise.
func parseFile(path string) (*StructuredConfig, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return parseTOML(path)
	}
	return parseJSON(path)
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fileCfg StructuredFileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fileCfg.toStructured(), nil
}

func parseTOML(tomlFilePath string) (*StructuredConfig, error) {
	var fileCfg StructuredFileConfig
	if _, err := toml.DecodeFile(tomlFilePath, &fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:      f.App.TokenSignKey,
			TokenIssuer:       f.App.TokenIssuer,
			TokenDuration:     time.Duration(f.App.TokenDuration),
			AdminPasswordHash: f.App.AdminPasswordHash,
			Version:           f.App.Version,
		},
		Remote: Remote{
			Host:     f.Remote.Host,
			Port:     f.Remote.Port,
			Password: f.Remote.Password,
			Enabled:  f.Remote.Enabled,
			Timeout:  time.Duration(f.Remote.Timeout),
		},
		Sync: Sync{
			ScheduleEnabled: f.Sync.ScheduleEnabled,
			Hour:            f.Sync.Hour,
			Minute:          f.Sync.Minute,
			RemoveExtras:    f.Sync.RemoveExtras,
			Cooldown:        (*time.Duration)(f.Sync.Cooldown),
		},
		Storage: Storage{
			WhitelistPath: f.Storage.WhitelistPath,
			Backup: Backup{
				Enabled: f.Storage.Backup.Enabled,
				Dir:     f.Storage.Backup.Dir,
				MaxKeep: f.Storage.Backup.MaxKeep,
			},
			Audit: Audit{DSN: f.Storage.Audit.DSN},
		},
		Import: Import{
			MaxBytes:         f.Import.MaxBytes,
			PropagateNewOnly: f.Import.PropagateNewOnly,
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
			TokenFile:      f.Adapter.TokenFile,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and TOML files.
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
		return d.UnmarshalText([]byte(value))
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalText implements encoding.TextUnmarshaler, which TOML uses for
// string values.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
