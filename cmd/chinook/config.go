package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PayRam/go-chinook/api"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	DBPath          string        `mapstructure:"db_path"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	PublicDir       string        `mapstructure:"public_dir"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func init() {
	// Bind command-line flags
	pflag.String("config", "", "Path to the configuration file")
	pflag.String("db-path", "db/chinook.db", "Path to the Chinook sqlite database")
	pflag.String("host", "0.0.0.0", "Interface the HTTP server listens on")
	pflag.Int("port", api.DefaultPort, "Port the HTTP server listens on")
	pflag.String("public-dir", "public", "Directory of static files served at /, empty to disable")
	pflag.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	pflag.String("log-format", "text", "Log format: text or json")
	pflag.Duration("shutdown-timeout", 30*time.Second, "Time allowed for in-flight requests on shutdown")

	f := pflag.CommandLine
	normalizeFunc := f.GetNormalizeFunc()
	f.SetNormalizeFunc(func(fs *pflag.FlagSet, name string) pflag.NormalizedName {
		result := normalizeFunc(fs, name)
		name = strings.ReplaceAll(string(result), "-", "_")
		return pflag.NormalizedName(name)
	})
}

// LoadConfig merges defaults, flags, CHINOOK_* environment variables and an optional YAML file.
func LoadConfig(args []string) (*Config, error) {
	v := viper.New()

	v.SetDefault("db_path", "db/chinook.db")
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", api.DefaultPort)
	v.SetDefault("public_dir", "public")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("shutdown_timeout", 30*time.Second)

	if err := pflag.CommandLine.Parse(args); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		return nil, fmt.Errorf("unable to bind flags: %w", err)
	}

	v.SetEnvPrefix("chinook")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// PORT is honoured for hosting platforms that inject it.
	if err := v.BindEnv("port", "CHINOOK_PORT", "PORT"); err != nil {
		return nil, err
	}

	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("chinook")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/chinook")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if v.GetString("config") != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &cfg, nil
}

// NewLogger builds the root logger from the log_level and log_format settings.
func (cfg *Config) NewLogger() (*logrus.Entry, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)

	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}

	return logrus.NewEntry(logger), nil
}
