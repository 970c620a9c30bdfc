package chat

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	BaseURL        string `yaml:"base_url"`
	PollIntervalMS int    `yaml:"poll_interval_ms"`
	StateDir       string `yaml:"state_dir"`
	Sound          bool   `yaml:"sound"`
	LogFile        string `yaml:"log_file"`

	// serve mode
	ListenAddr string `yaml:"listen_addr"`
	DBPath     string `yaml:"db_path"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:        "http://localhost:8080",
		PollIntervalMS: 1000,
		StateDir:       DefaultStateDir(),
		Sound:          true,
		ListenAddr:     ":8080",
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return fillDefaults(cfg), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fillDefaults(cfg), nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return fillDefaults(cfg), nil
}

func fillDefaults(cfg Config) Config {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.PollIntervalMS <= 0 {
		cfg.PollIntervalMS = 1000
	}
	if cfg.StateDir == "" {
		cfg.StateDir = DefaultStateDir()
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.StateDir, "livechat.log")
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.StateDir, "livechat.db")
	}
	return cfg
}

// PollInterval is the conversation refresh cadence.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "livechat", "config.yml")
}

func DefaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "livechat")
	}
	return filepath.Join(base, "livechat")
}
