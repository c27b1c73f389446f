package txhistory

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/walletfeed/internal/network"
	"github.com/gabapcia/walletfeed/internal/pkg/logger"
)

// Price is the USD price of a network's native asset. Known is false when
// the lookup failed.
type Price struct {
	USD   float64
	Known bool
}

// PriceSource quotes assets in USD by their price-API identifier.
type PriceSource interface {
	// USDPrice returns the current USD price of assetID.
	USDPrice(ctx context.Context, assetID string) (float64, error)
}

// priceLookup resolves native asset prices without ever failing the caller.
type priceLookup struct {
	source PriceSource
}

// NativePriceUSD returns the USD price of the native asset of n. Any failure
// yields an unknown price and is logged at debug level.
func (p *priceLookup) NativePriceUSD(ctx context.Context, n network.Network) Price {
	if p.source == nil {
		return Price{}
	}

	cfg, err := network.Lookup(n)
	if err != nil {
		logger.Debug(ctx, "native price lookup skipped", "network", n, "error", errors.Join(ErrPriceUnavailable, err))
		return Price{}
	}

	usd, err := p.source.USDPrice(ctx, cfg.PriceAssetID)
	if err != nil {
		logger.Debug(ctx, "native price lookup failed",
			"network", n,
			"price.asset", cfg.PriceAssetID,
			"error", fmt.Errorf("%w: %w", ErrPriceUnavailable, err),
		)
		return Price{}
	}

	return Price{USD: usd, Known: true}
}
