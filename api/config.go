package api

import (
	"net"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultHost            = "localhost"
	DefaultPort            = 3001
	defaultShutdownTimeout = time.Second * 30
)

type Option func(Config) Config

func WithHost(host string) Option {
	return func(cfg Config) Config {
		if host != "" {
			cfg.host = host
		}

		return cfg
	}
}

// WithPort sets the listening port. Zero keeps the default, a negative port picks a free one.
func WithPort(port int) Option {
	return func(cfg Config) Config {
		if port != 0 {
			cfg.port = port
		}

		return cfg
	}
}

// WithPublicDir serves the static files of dir at the root path.
func WithPublicDir(dir string) Option {
	return func(cfg Config) Config {
		cfg.publicDir = dir
		return cfg
	}
}

func WithShutdownTimeout(timeout time.Duration) Option {
	return func(cfg Config) Config {
		if timeout > 0 {
			cfg.shutdownTimeout = timeout
		}

		return cfg
	}
}

func WithLogger(logger *logrus.Entry) Option {
	return func(cfg Config) Config {
		if logger != nil {
			cfg.logger = logger
		}

		return cfg
	}
}

type Config struct {
	logger          *logrus.Entry
	host            string
	publicDir       string
	port            int
	shutdownTimeout time.Duration
}

func NewConfig(opts ...Option) *Config {
	cfg := &Config{
		host:            DefaultHost,
		port:            DefaultPort,
		shutdownTimeout: defaultShutdownTimeout,
		logger:          logrus.NewEntry(logrus.StandardLogger()),
	}

	return cfg.WithOptions(opts...)
}

func (cfg *Config) WithOptions(opts ...Option) *Config {
	for _, opt := range opts {
		*cfg = opt(*cfg)
	}

	return cfg
}

func (cfg *Config) Addr() string {
	port := cfg.port
	if port < 0 {
		port = 0
	}
	return net.JoinHostPort(cfg.host, strconv.Itoa(port))
}
