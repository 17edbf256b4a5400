package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string        `env:"ORDER_SERVICE_ADDR" envDefault:":8082"`
	DatabaseURL   string        `env:"COCKROACH_POSTGRESQL_URL" envDefault:"postgresql://root@localhost:26257/orders?sslmode=disable"`
	MigrationsDir string        `env:"MIGRATIONS_DIR" envDefault:"./internal/db/migrations"`
	OrderStatuses []string      `env:"ORDER_STATUSES" envSeparator:"," envDefault:"CREATED,PACKED,SHIPPED,DELIVERED,CANCELLED"`
	SeedOrders    int           `env:"SEED_ORDERS" envDefault:"0"`
	ShutdownWait  time.Duration `env:"SHUTDOWN_WAIT" envDefault:"10s"`
}

func Load() (Config, error) {
	_ = godotenv.Load() // load .env if it exists

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
