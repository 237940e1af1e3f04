// Package config loads and saves user preferences for the timer: default
// durations, the ambient sound texture and its volume. Settings live in a
// TOML file under the user config dir and every value has a sensible
// default, so a missing file is a valid (fresh) configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings holds the user's persisted preferences.
type Settings struct {
	DefaultDuration int    `mapstructure:"default_duration"` // minutes
	BreakDuration   int    `mapstructure:"break_duration"`   // minutes
	AutoBreak       bool   `mapstructure:"auto_break"`
	Sound           string `mapstructure:"sound"` // texture name, "none" disables
	Volume          int    `mapstructure:"volume"`
}

// Dir returns the application config directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(base, "focusloop"), nil
}

// Load reads settings from dir/config.toml, falling back to defaults for
// anything unset. A missing file yields the defaults.
func Load(dir string) (*Settings, error) {
	v := newViper(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &s, nil
}

// Save writes the settings to dir/config.toml, creating the directory if
// needed.
func Save(dir string, s *Settings) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	v := newViper(dir)
	v.Set("default_duration", s.DefaultDuration)
	v.Set("break_duration", s.BreakDuration)
	v.Set("auto_break", s.AutoBreak)
	v.Set("sound", s.Sound)
	v.Set("volume", s.Volume)

	if err := v.WriteConfigAs(filepath.Join(dir, "config.toml")); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	v.SetDefault("default_duration", 25)
	v.SetDefault("break_duration", 5)
	v.SetDefault("auto_break", true)
	v.SetDefault("sound", "none")
	v.SetDefault("volume", 50)

	return v
}
