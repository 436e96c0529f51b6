package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Cart         CartConfig
	Catalog      CatalogConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LUNAVILLE_APP_ENV" required:"true"`
	Port         string `envconfig:"LUNAVILLE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"LUNAVILLE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LUNAVILLE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"LUNAVILLE_DB_DSN"`
	Driver string `envconfig:"LUNAVILLE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LUNAVILLE_DB_HOST"`
	LegacyPort     int    `envconfig:"LUNAVILLE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LUNAVILLE_DB_USER"`
	LegacyPassword string `envconfig:"LUNAVILLE_DB_PASSWORD"`
	LegacyName     string `envconfig:"LUNAVILLE_DB_NAME"`
	LegacySSLMode  string `envconfig:"LUNAVILLE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LUNAVILLE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LUNAVILLE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LUNAVILLE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LUNAVILLE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LUNAVILLE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"LUNAVILLE_REDIS_ADDR"`
	Password     string        `envconfig:"LUNAVILLE_REDIS_PASSWORD"`
	DB           int           `envconfig:"LUNAVILLE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LUNAVILLE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LUNAVILLE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LUNAVILLE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LUNAVILLE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LUNAVILLE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CartConfig controls how long persisted carts survive between sessions.
type CartConfig struct {
	TTL time.Duration `envconfig:"LUNAVILLE_CART_TTL" default:"720h"`
}

type CatalogConfig struct {
	DefaultPageSize int `envconfig:"LUNAVILLE_CATALOG_PAGE_SIZE" default:"24"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"LUNAVILLE_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"LUNAVILLE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"LUNAVILLE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
