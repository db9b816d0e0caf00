package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"aicloudmania.dev/internal/app"
	"aicloudmania.dev/internal/config"
	xglog "aicloudmania.dev/internal/log"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (YAML)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s (commit: %s)\n", version, commit)
		os.Exit(0)
	}

	// Safe defaults until the config is loaded
	xglog.Configure(xglog.Config{Level: "info", Service: app.ServiceName, Version: version})
	logger := xglog.WithComponent("server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("event", "config.load_failed").
			Str("config_path", *configPath).
			Msg("failed to load configuration")
	}

	xglog.Configure(xglog.Config{Level: cfg.LogLevel, Service: app.ServiceName, Version: version})
	logger = xglog.WithComponent("server")

	a, err := app.New(ctx, cfg, version)
	if err != nil {
		logger.Fatal().Err(err).Str("event", "startup.failed").Msg("failed to initialize application")
	}

	if err := a.Run(ctx); err != nil {
		logger.Error().Err(err).Str("event", "server.failed").Msg("server stopped with error")
		stop()
		os.Exit(1)
	}
	logger.Info().Str("event", "server.stopped").Msg("server stopped")
}
