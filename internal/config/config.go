package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"domoticz-hue-bridge/internal/domain/registry"
)

// Config represents the application configuration
type Config struct {
	Domoticz DomoticzConfig         `yaml:"domoticz"`
	Bridge   BridgeConfig           `yaml:"bridge"`
	Log      LogConfig              `yaml:"log"`
	Devices  []registry.DeviceEntry `yaml:"devices"`
	Scenes   []registry.SceneEntry  `yaml:"scenes"`
}

// DomoticzConfig contains hub connection settings
type DomoticzConfig struct {
	URL      string   `yaml:"url"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	Timeout  Duration `yaml:"timeout"` // HTTP timeout for hub requests
}

// BridgeConfig contains the emulated bridge's network settings
type BridgeConfig struct {
	IP   string `yaml:"ip"`   // autodetected when empty
	Port int    `yaml:"port"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level   string `yaml:"level"`
	UseJSON bool   `yaml:"json"`
	Colors  bool   `yaml:"colors"`
}

// Duration is a wrapper around time.Duration for YAML unmarshalling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Defaults
	if cfg.Domoticz.URL == "" {
		cfg.Domoticz.URL = "http://localhost:8080"
	}
	if cfg.Domoticz.Timeout == 0 {
		cfg.Domoticz.Timeout = Duration(5 * time.Second)
	}
	if cfg.Bridge.Port == 0 {
		cfg.Bridge.Port = 80
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return &cfg, nil
}
