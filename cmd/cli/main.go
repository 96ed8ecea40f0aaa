package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/cli"
	"github.com/dmitrijs2005/taskkeeper/internal/config"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})
	logger := logging.NewSlogLogger(slog.New(h))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
