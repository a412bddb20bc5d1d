package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/sumi/internal/model"
)

// cliConfig holds the viewer's configuration.
type cliConfig struct {
	LogPath        string `mapstructure:"log-path"`
	GroupPath      string `mapstructure:"group-path"`
	RecentCommands int    `mapstructure:"recent-commands"`
	TopCommands    int    `mapstructure:"top-commands"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SUMI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("log-path", model.DefaultLogPath)
	v.SetDefault("group-path", model.DefaultGroupPath)
	v.SetDefault("recent-commands", model.DefaultRecentCommands)
	v.SetDefault("top-commands", model.DefaultTopCommands)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "sumi", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
