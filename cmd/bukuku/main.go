package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bukuku/internal/cli"
	"bukuku/internal/config"
	"bukuku/internal/logging"
)

func main() {
	cfg := config.Load()
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg, log)
	app.Run(ctx)
}
