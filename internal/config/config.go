// Package config loads ls-rocketry settings and user-defined fuels, engines
// and vehicles from defaults, an optional YAML file and LS_ROCKETRY_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key looked up in the environment.
const EnvPrefix = "LS_ROCKETRY"

// DefaultFileName is the config file searched for in the home directory
// when no explicit path is given.
const DefaultFileName = ".ls-rocketry"

// Config holds application settings.
type Config struct {
	LogLevel      string  `mapstructure:"log_level"`
	PayloadMargin float64 `mapstructure:"payload_margin"`
	SafetyMargin  float64 `mapstructure:"safety_margin"`
	Workers       int     `mapstructure:"workers"`

	Fuels    []FuelDef    `mapstructure:"fuels"`
	Engines  []EngineDef  `mapstructure:"engines"`
	Vehicles []VehicleDef `mapstructure:"vehicles"`

	// File is the config file that was read, empty if none.
	File string `mapstructure:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:      "info",
		PayloadMargin: 1.015,
		SafetyMargin:  1.05,
		Workers:       4,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("payload_margin", d.PayloadMargin)
	v.SetDefault("safety_margin", d.SafetyMargin)
	v.SetDefault("workers", d.Workers)
}

// Load reads configuration. If path is empty, $HOME/.ls-rocketry.yaml is
// used when present; a missing default file is not an error. An explicit
// path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(DefaultFileName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the numeric settings. Definitions are checked when they
// are resolved by NewCatalog.
func (c Config) Validate() error {
	if c.PayloadMargin < 0 {
		return fmt.Errorf("payload_margin must not be negative, got %v", c.PayloadMargin)
	}
	if c.SafetyMargin < 0 {
		return fmt.Errorf("safety_margin must not be negative, got %v", c.SafetyMargin)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
