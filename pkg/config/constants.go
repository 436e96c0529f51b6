package config

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "LUNAVILLE"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "LUNAVILLE_APP_ENV"
	EnvPort     = "LUNAVILLE_APP_PORT"
	EnvDBDSN    = "LUNAVILLE_DB_DSN"
	EnvDBHost   = "LUNAVILLE_DB_HOST"
	EnvDBUser   = "LUNAVILLE_DB_USER"
	EnvDBName   = "LUNAVILLE_DB_NAME"
	EnvRedisURL = "LUNAVILLE_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
