package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	StartPath     string `mapstructure:"start_path"`
	ConfirmDelete bool   `mapstructure:"confirm_delete"`
	TimeFormat    string `mapstructure:"time_format"`
}

// Load reads configuration from file and env. Env var overrides use
// prefix FILESCOUT_. The config file lives at
// ~/.config/filescout/config.toml unless FILESCOUT_CONFIG points
// elsewhere.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("start_path", defaultStartPath())
	v.SetDefault("confirm_delete", true)
	v.SetDefault("time_format", "2006-01-02 15:04:05")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FILESCOUT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "filescout"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FILESCOUT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func defaultStartPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return string(filepath.Separator)
	}
	return home
}
