package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port         string        `env:"PORT,           default=4000"`
	Env          string        `env:"ENV,            default=development"`
	LogLevel     string        `env:"LOG_LEVEL,      default=info"`
	JWTSecret    string        `env:"JWT_SECRET"`
	TokenTTL     time.Duration `env:"TOKEN_TTL,      default=8h"`
	CookieMaxAge int           `env:"COOKIE_MAX_AGE, default=3600"`
	CORSOrigin   string        `env:"CORS_ORIGIN,    default=http://localhost:3000"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Piston  PistonConfig
	Whisper WhisperConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=playground"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type PistonConfig struct {
	URL     string        `env:"PISTON_URL,     default=http://localhost:2000"`
	Timeout time.Duration `env:"PISTON_TIMEOUT, default=20s"`
}

type WhisperConfig struct {
	URL     string        `env:"WHISPER_URL,     default=http://localhost:5000"`
	Timeout time.Duration `env:"WHISPER_TIMEOUT, default=2m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
