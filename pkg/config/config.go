// Package config handles application configuration management using Viper
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/yorrLorenz/eggprice"
	"github.com/yorrLorenz/eggprice/pkg/core"
	"github.com/yorrLorenz/eggprice/pkg/logger"
	"github.com/yorrLorenz/eggprice/pkg/storage"
)

// Constants for configuration
const (
	EnvPrefix         = "EGGPRICE"
	DefaultConfigPath = "./eggprice.yaml"
	DefaultPort       = 8080
	dateLayout        = time.DateOnly
)

// Config holds the application configuration
type Config struct {
	BaseDate  string        `mapstructure:"base_date"`
	MaxPoints int           `mapstructure:"max_points"`
	Prices    []float64     `mapstructure:"prices"`
	Selector  string        `mapstructure:"selector"`
	History   HistoryConfig `mapstructure:"history"`
	Server    ServerConfig  `mapstructure:"server"`
	Log       LogConfig     `mapstructure:"log"`
}

// HistoryConfig selects where past queries are kept
type HistoryConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// ServerConfig holds web form settings
type ServerConfig struct {
	Port  int  `mapstructure:"port"`
	Debug bool `mapstructure:"debug"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Backend    string `mapstructure:"backend"`
	Level      string `mapstructure:"level"`
	TimeLayout string `mapstructure:"time_layout"`
	Colored    bool   `mapstructure:"colored"`
	JSON       bool   `mapstructure:"json"`
}

func setDefaults(v *viper.Viper) {
	settings := eggprice.DefaultSettings()

	v.SetDefault("base_date", settings.BaseDate.Format(dateLayout))
	v.SetDefault("max_points", settings.MaxPoints)
	v.SetDefault("prices", settings.Prices)
	v.SetDefault("selector", settings.Selector)
	v.SetDefault("history.driver", storage.DriverBuntDB)
	v.SetDefault("history.path", "./eggprice.db")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.debug", false)
	v.SetDefault("log.backend", "zerolog")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.time_layout", "2006-01-02 15:04:05")
	v.SetDefault("log.colored", true)
	v.SetDefault("log.json", false)
}

// Load reads the configuration file at path, if it exists, and applies
// EGGPRICE_* environment overrides on top of the defaults.
// EGGPRICE_HISTORY_DRIVER overrides history.driver, and so on.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read configuration %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return cfg, nil
}

// WriteDefault saves the default configuration at path, creating its directory if needed
func WriteDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create configuration directory: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	for _, key := range v.AllKeys() {
		v.Set(key, v.Get(key))
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("could not save default configuration: %w", err)
	}
	return nil
}

// Settings converts the configuration into engine settings
func (c *Config) Settings() (core.Settings, error) {
	base, err := time.Parse(dateLayout, c.BaseDate)
	if err != nil {
		return core.Settings{}, fmt.Errorf("invalid base_date %q: %w", c.BaseDate, err)
	}

	return core.Settings{
		BaseDate:  base,
		MaxPoints: c.MaxPoints,
		Prices:    c.Prices,
		Selector:  c.Selector,
	}, nil
}

// Logger converts the log section into a logger configuration
func (c *Config) Logger() logger.Config {
	return logger.Config{
		Backend:    c.Log.Backend,
		Level:      c.Log.Level,
		TimeLayout: c.Log.TimeLayout,
		Colored:    c.Log.Colored,
		JSON:       c.Log.JSON,
	}
}
