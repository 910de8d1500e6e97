package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     App
	Log     Log
	HTTP    HTTP
	Probe   Probe
	Metrics Metrics
	Fact    Fact
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"numclass" validate:"required"`
	Version string `env:"APP_VERSION" envDefault:"dev" validate:"required"`
	DocsURL string `env:"DOCS_URL" envDefault:"https://github.com/onomeakpobaro/flask_number_classification_api" validate:"required,url"` //nolint:lll
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=text json"`
}

type HTTP struct {
	ListenAddress     string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080" validate:"required"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	LogFieldMaxLen    int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096" validate:"gt=0"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081" validate:"required"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090" validate:"required"`
}

type Fact struct {
	BaseURL              string        `env:"FACT_BASE_URL" envDefault:"http://numbersapi.com" validate:"required,url"`
	Timeout              time.Duration `env:"FACT_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	CacheTTL             time.Duration `env:"FACT_CACHE_TTL" envDefault:"1h" validate:"gte=0"`
	CacheCleanupInterval time.Duration `env:"FACT_CACHE_CLEANUP_INTERVAL" envDefault:"10m" validate:"gt=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

// Load reads .env if present, then the process environment, and validates the
// result.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("validate.Struct: %w", err)
	}

	return config, nil
}
