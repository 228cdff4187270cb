package config

import (
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"inventoryservice/pkg/infrastructure/redis"
)

type Config struct {
	Host            string        `split_words:"true" default:""`
	Port            string        `split_words:"true" default:"3000"`
	DatabaseDSN     string        `envconfig:"database_dsn" default:"root:root@tcp(localhost:3306)/inventory?parseTime=true"`
	SessionSecret   string        `split_words:"true" default:"secret"`
	SessionTTL      time.Duration `envconfig:"session_ttl" default:"24h"`
	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`
	Redis           redis.Config
}

// Load reads configuration from the environment, prefixed INVENTORY_. A .env
// file is applied first when present. A bare PORT variable overrides the
// configured listen port.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("inventory", &c); err != nil {
		return nil, errors.Wrap(err, "process environment")
	}

	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}
	return &c, nil
}

func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
