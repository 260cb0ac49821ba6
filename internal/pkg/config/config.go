package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string `env:"JWT_SECRET"`
	// CookieExpiresDays is the session lifetime in days. It drives both
	// the token TTL and the cookie Expires attribute.
	CookieExpiresDays int `env:"COOKIE_EXPIRES_DAYS, default=7"`

	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL, default=1m"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=commerce_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SessionTTL converts the configured day count into a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.CookieExpiresDays) * 24 * time.Hour
}

// IsProduction reports whether the process runs with production settings
// (controls the Secure flag on the session cookie).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
