// Package network describes the fixed set of EVM networks walletfeed serves
// and the lookups between network ids, chain ids and per-network settings.
package network

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnsupported is returned for any network id or chain id outside the
// configured set.
var ErrUnsupported = errors.New("unsupported network")

// Network is the stable identifier of a supported network.
type Network string

const (
	Ethereum Network = "ethereum"
	Polygon  Network = "polygon"
	Arbitrum Network = "arbitrum"
)

// Default is the network used when no preference exists.
const Default = Ethereum

func (n Network) String() string {
	return string(n)
}

// Config holds the static settings of one network.
type Config struct {
	ID             Network `json:"id"`
	ChainID        int64   `json:"chain_id"`
	NativeSymbol   string  `json:"native_symbol"`
	IndexerBaseURL string  `json:"-"`
	PriceAssetID   string  `json:"price_asset_id"`
}

// configs is ordered the way networks are listed to users.
var configs = []Config{
	{
		ID:             Ethereum,
		ChainID:        1,
		NativeSymbol:   "ETH",
		IndexerBaseURL: "https://eth-mainnet.g.alchemy.com/v2/",
		PriceAssetID:   "ethereum",
	},
	{
		ID:             Polygon,
		ChainID:        137,
		NativeSymbol:   "MATIC",
		IndexerBaseURL: "https://polygon-mainnet.g.alchemy.com/v2/",
		PriceAssetID:   "matic-network",
	},
	{
		ID:             Arbitrum,
		ChainID:        42161,
		NativeSymbol:   "ETH",
		IndexerBaseURL: "https://arb-mainnet.g.alchemy.com/v2/",
		PriceAssetID:   "arbitrum",
	},
}

// All returns the supported networks in display order.
func All() []Config {
	return slices.Clone(configs)
}

// Lookup returns the settings of n.
func Lookup(n Network) (Config, error) {
	for _, cfg := range configs {
		if cfg.ID == n {
			return cfg, nil
		}
	}

	return Config{}, fmt.Errorf("%w: %q", ErrUnsupported, string(n))
}

// Parse resolves a user supplied network name, ignoring case and surrounding
// whitespace.
func Parse(name string) (Network, error) {
	n := Network(strings.ToLower(strings.TrimSpace(name)))
	if _, err := Lookup(n); err != nil {
		return "", err
	}

	return n, nil
}

// FromChainID maps an EVM chain id to its network.
func FromChainID(chainID int64) (Network, error) {
	for _, cfg := range configs {
		if cfg.ChainID == chainID {
			return cfg.ID, nil
		}
	}

	return "", fmt.Errorf("%w: chain id %d", ErrUnsupported, chainID)
}

// IsSupported reports whether n is one of the configured networks.
func IsSupported(n Network) bool {
	_, err := Lookup(n)
	return err == nil
}
