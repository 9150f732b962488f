// Package config loads application settings from an optional YAML file and
// the environment. Every field has a working default so the binaries run
// with no configuration at all.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Server struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type Dataset struct {
	// Path points at a local CSV file. Takes precedence over URL when both
	// are set.
	Path string `mapstructure:"path"`
	URL  string `mapstructure:"url"`
}

type Config struct {
	Server  Server  `mapstructure:"server"`
	Dataset Dataset `mapstructure:"dataset"`
}

func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads the config file at path when path is non-empty, then overlays
// SALES_* environment variables (SALES_SERVER_PORT, SALES_DATASET_PATH, ...).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("dataset.path", "data/sample_sales_data.csv")
	v.SetDefault("dataset.url", "")

	v.SetEnvPrefix("SALES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
