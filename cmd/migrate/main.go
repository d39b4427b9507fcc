package main

import (
	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/davidtimmons/pragmatic-architecture/internal/marketplace/bootstrap"
	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/database"
	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/logging"
	"github.com/davidtimmons/pragmatic-architecture/migrations"
)

func main() {
	defaultLogger := logging.StdoutLogger

	if err := godotenv.Load(); err != nil {
		defaultLogger.Info("no .env file found, using environment as-is")
	}

	cfg := bootstrap.LoadConfig()

	if err := database.MigrateDatabase(cfg.DbSettings.GetUrl(), migrations.FS, "."); err != nil {
		defaultLogger.Error("migration failed", "error", err.Error())
		return
	}

	defaultLogger.Info("migrations applied", "database", cfg.DbSettings.DBName)
}
