package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/walletfeed/internal/config"
	"github.com/gabapcia/walletfeed/internal/handlers/api"
	"github.com/gabapcia/walletfeed/internal/handlers/cli"
	"github.com/gabapcia/walletfeed/internal/infra/indexer/alchemy"
	"github.com/gabapcia/walletfeed/internal/infra/price/coingecko"
	"github.com/gabapcia/walletfeed/internal/infra/storage/memory"
	"github.com/gabapcia/walletfeed/internal/infra/storage/redis"
	"github.com/gabapcia/walletfeed/internal/infra/walletprovider/rpc"
	"github.com/gabapcia/walletfeed/internal/pkg/logger"
	"github.com/gabapcia/walletfeed/internal/pkg/metrics"
	"github.com/gabapcia/walletfeed/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/walletfeed/internal/pkg/transport/http"
	"github.com/gabapcia/walletfeed/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletfeed/internal/txhistory"
	"github.com/gabapcia/walletfeed/internal/wallet"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return err
		}
		defer func() { _ = shutdown(context.WithoutCancel(ctx)) }()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	source, err := newTransferSource(cfg)
	if err != nil {
		return err
	}

	prices := coingecko.NewClient(cfg.PriceBaseURL,
		coingecko.WithAPIKey(cfg.PriceAPIKey),
		coingecko.WithHTTPOptions(
			transporthttp.WithTimeout(cfg.PriceTimeout),
			transporthttp.WithRetryMax(0),
		),
	)

	history := txhistory.New(source,
		txhistory.WithPriceSource(prices),
		txhistory.WithCache(memory.NewTransactionCache(memory.WithTTL(cfg.CacheTTL))),
		txhistory.WithRequestTimeout(cfg.RequestTimeout),
	)

	preferences, closePreferences, err := newPreferenceStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closePreferences()

	provider := rpc.NewClient(
		jsonrpc.NewClient(cfg.WalletProviderURL, transporthttp.WithRetryMax(0)),
		rpc.WithPollInterval(cfg.WalletPollInterval),
	)
	session := wallet.New(provider, preferences)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	handler := api.New(history, metrics.New(registry), registry)

	return cli.Run(ctx, history, session, handler, cfg.HTTPAddr)
}

// newTransferSource prefers the fixture file when one is configured.
func newTransferSource(cfg config.Config) (txhistory.TransferSource, error) {
	if cfg.TransfersFixture != "" {
		return alchemy.NewFixture(cfg.TransfersFixture)
	}

	return alchemy.NewClient(cfg.AlchemyAPIKey,
		transporthttp.WithTimeout(cfg.IndexerTimeout),
		transporthttp.WithRetryMax(cfg.IndexerRetryMax),
	), nil
}

// newPreferenceStorage uses Redis when an address is configured and keeps
// the preference in memory otherwise.
func newPreferenceStorage(ctx context.Context, cfg config.Config) (wallet.PreferenceStorage, func(), error) {
	if cfg.RedisAddr == "" {
		return memory.NewPreferenceStore(), func() {}, nil
	}

	client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	return client, func() { _ = client.Close() }, nil
}
