package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	go_chinook "github.com/PayRam/go-chinook"
	"github.com/PayRam/go-chinook/api"
	"github.com/PayRam/go-chinook/filter"
	"github.com/PayRam/go-chinook/internal/db"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chinook: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	logger.WithField("db_path", cfg.DBPath).Debug("Configuration loaded")

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}

	catalog, err := go_chinook.NewCatalogService(conn, filter.DefaultSchema, logger)
	if err != nil {
		return err
	}

	server := api.NewServer(catalog,
		api.WithLogger(logger),
		api.WithHost(cfg.Host),
		api.WithPort(cfg.Port),
		api.WithPublicDir(cfg.PublicDir),
		api.WithShutdownTimeout(cfg.ShutdownTimeout),
	)

	ln, err := server.Listen()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, ln)
}
