// Package config loads walletfeed settings from the environment. Every key is
// read with the WALLETFEED_ prefix, for example WALLETFEED_CACHE_TTL.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gabapcia/walletfeed/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment key.
const Prefix = "WALLETFEED"

// defaultEnvFile is loaded when present and no explicit file is given.
const defaultEnvFile = ".env"

// Config holds every setting of the process.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	AlchemyAPIKey   string        `envconfig:"ALCHEMY_API_KEY" validate:"required_without=TransfersFixture"`
	IndexerTimeout  time.Duration `envconfig:"INDEXER_TIMEOUT" default:"10s" validate:"gt=0"`
	IndexerRetryMax int           `envconfig:"INDEXER_RETRY_MAX" default:"0" validate:"gte=0"`

	// TransfersFixture serves transfers from a local file instead of the indexer.
	TransfersFixture string `envconfig:"TRANSFERS_FIXTURE"`

	PriceBaseURL string        `envconfig:"PRICE_BASE_URL" default:"https://api.coingecko.com/api/v3" validate:"required,url"`
	PriceAPIKey  string        `envconfig:"PRICE_API_KEY"`
	PriceTimeout time.Duration `envconfig:"PRICE_TIMEOUT" default:"5s" validate:"gt=0"`

	CacheTTL       time.Duration `envconfig:"CACHE_TTL" default:"5m" validate:"gt=0"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s" validate:"gt=0"`

	// RedisAddr enables the Redis preference store. Empty keeps preferences in memory.
	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080" validate:"required"`

	WalletProviderURL  string        `envconfig:"WALLET_PROVIDER_URL" default:"http://127.0.0.1:1248" validate:"required,url"`
	WalletPollInterval time.Duration `envconfig:"WALLET_POLL_INTERVAL" default:"2s" validate:"gt=0"`

	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"walletfeed" validate:"required"`
}

// Load reads envFile into the environment when given, or .env when it
// exists, then processes the WALLETFEED_ keys and validates the result.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadEnvFile(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", defaultEnvFile, err)
	}

	return nil
}
