package env

const (
	EnvAppEnvironment = "APP_ENV"
	EnvHttpPort       = "HTTP_PORT"

	EnvDatabaseHost     = "DB_HOST"
	EnvDatabasePort     = "DB_PORT"
	EnvDatabaseUser     = "DB_USER"
	EnvDatabasePassword = "DB_PASSWORD"
	EnvDatabaseName     = "DB_NAME"
	EnvTestDatabaseName = "TEST_DB_NAME"

	EnvQueryTimeout = "DB_QUERY_TIMEOUT"
)
