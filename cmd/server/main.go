package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/davidtimmons/pragmatic-architecture/internal/marketplace/bootstrap"
	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/logging"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	if err := godotenv.Load(); err != nil {
		defaultLogger.Info("no .env file found, using environment as-is")
	}

	cfg := bootstrap.LoadConfig()
	app := bootstrap.NewMarketplaceApp(cfg, defaultLogger)

	if err := app.Run(mainCtx); err != nil {
		defaultLogger.Error("application stopped with error", "error", err.Error())
	}

	app.Shutdown()
}
