package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/moodbuddy/moodbuddy/internal/constants"
)

// Config holds the client configuration: where the backend lives and how the
// local cache behaves.
type Config struct {
	APIBaseURL     string        `mapstructure:"api_base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	CacheBackend   string        `mapstructure:"cache_backend"` // "json" or "sqlite"
	SampleWindow   int           `mapstructure:"sample_window"` // seconds of EEG collection
	ConfigDir      string        `mapstructure:"-"`
}

// Load reads configuration from <dir>/config.yaml, overridden by MOODBUDDY_*
// environment variables. A missing config file is not an error; defaults
// apply.
func Load(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("MOODBUDDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api_base_url", "http://localhost:8000")
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("cache_backend", "json")
	v.SetDefault("sample_window", constants.DefaultSampleWindow)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.ConfigDir = dir

	if cfg.SampleWindow <= 0 {
		return Config{}, fmt.Errorf("sample_window must be positive, got %d", cfg.SampleWindow)
	}

	return cfg, nil
}

// ExpandDir resolves a leading ~ in a config directory path.
func ExpandDir(dir string) (string, error) {
	if strings.HasPrefix(dir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return dir, nil
}
