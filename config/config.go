// Package config loads run defaults from the environment, an optional .env
// file and an optional img2pdf.yaml.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "IMG2PDF"

type LoggingConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type Config struct {
	// PageSize applies when -p/--page-size is absent. Empty means per-image sizing.
	PageSize string
	Color    bool
	Logging  LoggingConfig

	// Source is the config file that was read, empty when none was found.
	Source string
}

// Load reads .env from the working directory (if any), then the config file
// and IMG2PDF_* variables. A config file that exists but cannot be parsed is
// returned as an error together with the defaults.
func Load(configFile string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("page_size", "")
	v.SetDefault("color", true)
	v.SetDefault("log.level", "disabled")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("img2pdf")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "img2pdf"))
		}
	}

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			readErr = err
		}
	}

	cfg := Config{
		PageSize: v.GetString("page_size"),
		Color:    v.GetBool("color"),
		Logging: LoggingConfig{
			Level:      v.GetString("log.level"),
			File:       v.GetString("log.file"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAgeDays: v.GetInt("log.max_age_days"),
		},
	}
	if readErr == nil {
		cfg.Source = v.ConfigFileUsed()
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		cfg.Color = false
	}
	return cfg, readErr
}
