package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Paging   PagingConfig
	Throttle ThrottleConfig
	Admin    AdminConfig
}

type MongoConfig struct {
	URI            string        `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database       string        `env:"MONGO_DB,  default=catalog_system"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB             int           `env:"REDIS_DB,   default=0"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT, default=5s"`
}

// PagingConfig holds the product listing defaults applied when the request
// omits size or page.
type PagingConfig struct {
	DefaultSize int `env:"PAGE_SIZE, default=4"`
	DefaultPage int `env:"PAGE_NUMBER, default=1"`
}

// ThrottleConfig tunes the Redis-backed login rate limiter.
type ThrottleConfig struct {
	MaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=5"`
	Window      time.Duration `env:"LOGIN_WINDOW,       default=1m"`
}

// AdminConfig optionally bootstraps an admin account at startup. Skipped
// when either field is empty.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
