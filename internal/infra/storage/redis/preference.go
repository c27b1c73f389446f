package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/walletfeed/internal/network"
	"github.com/gabapcia/walletfeed/internal/wallet"

	"github.com/redis/go-redis/v9"
)

// Compile-time assertion that client implements the wallet.PreferenceStorage interface.
var _ wallet.PreferenceStorage = (*client)(nil)

// preferenceNetworkKey is the key holding the preferred network:
//
//	"walletfeed:preference:network"
func preferenceNetworkKey() string {
	return fmt.Sprintf("%s:preference:network", keyPrefix)
}

// SaveNetwork stores n as the preferred network, without expiration.
func (c *client) SaveNetwork(ctx context.Context, n network.Network) error {
	return c.conn.Set(ctx, preferenceNetworkKey(), n.String(), 0).Err()
}

// LoadNetwork returns the preferred network or wallet.ErrNoPreference when
// none was saved.
func (c *client) LoadNetwork(ctx context.Context) (network.Network, error) {
	val, err := c.conn.Get(ctx, preferenceNetworkKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = wallet.ErrNoPreference
		}

		return "", err
	}

	return network.Network(val), nil
}
