package main

import (
	"log/slog"
	"time"

	"github.com/fastprodman/cashinreward/internal/config"
)

type apiConfig struct {
	Port            uint16        `env:"APP_PORT" envDefault:"8080"`
	LogLevel        slog.Level    `env:"APP_LOG_LEVEL" envDefault:"INFO"`
	LogFormat       string        `env:"APP_LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	CatalogPath      string  `env:"CATALOG_PATH" envDefault:""`
	SubmitDelayScale float64 `env:"SUBMIT_DELAY_SCALE" envDefault:"1"`

	JWT  jwtConfig
	CORS corsConfig

	Postgres config.PostgresConfig
}

type jwtConfig struct {
	Secret string        `env:"JWT_SECRET"`
	Issuer string        `env:"JWT_ISSUER" envDefault:"cashinreward"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

type corsConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}
