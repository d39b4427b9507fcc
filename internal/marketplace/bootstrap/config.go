package bootstrap

import (
	"time"

	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/database"
	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/env"
)

type MarketplaceConfig struct {
	HttpPort     string
	DbSettings   database.PostgresSettings
	QueryTimeout time.Duration
}

// LoadConfig starts from local-development defaults and overlays whatever the
// environment provides. APP_ENV=test swaps in the test database name so a
// suite never touches the primary store.
func LoadConfig() MarketplaceConfig {
	appEnvironment := "development"
	httpPort := ":8080"
	queryTimeout := database.DefaultQueryTimeout

	dbSettings := database.PostgresSettings{
		User:       "admin",
		Password:   "password",
		Host:       "localhost",
		Port:       "5432",
		DBName:     "marketplace_db",
		SSlEnabled: false,
	}
	testDbName := "marketplace_test_db"

	env.TrySetFromEnv(env.EnvAppEnvironment, &appEnvironment)
	env.TrySetFromEnv(env.EnvHttpPort, &httpPort)
	env.TrySetFromEnv(env.EnvDatabaseHost, &dbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &dbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &dbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &dbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &dbSettings.DBName)
	env.TrySetFromEnv(env.EnvTestDatabaseName, &testDbName)
	env.TrySetDurationFromEnv(env.EnvQueryTimeout, &queryTimeout)

	if appEnvironment == "test" {
		dbSettings.DBName = testDbName
	}

	return MarketplaceConfig{
		HttpPort:     httpPort,
		DbSettings:   dbSettings,
		QueryTimeout: queryTimeout,
	}
}
