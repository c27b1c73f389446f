// Package rpc implements the wallet.Provider interface over the JSON-RPC
// endpoint of a local wallet such as Frame. Account and chain changes are
// detected by polling.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/gabapcia/walletfeed/internal/pkg/logger"
	"github.com/gabapcia/walletfeed/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletfeed/internal/pkg/types"
	"github.com/gabapcia/walletfeed/internal/pkg/x/chflow"
	"github.com/gabapcia/walletfeed/internal/wallet"
)

const (
	// codeUserRejected is the EIP-1193 code for a request the user declined.
	codeUserRejected = 4001

	// codeChainNotAdded is the EIP-3326 code for a chain unknown to the wallet.
	codeChainNotAdded = 4902

	defaultPollInterval = 2 * time.Second
)

type client struct {
	conn         jsonrpc.Client
	pollInterval time.Duration
}

// Compile-time assertion that client implements the wallet.Provider interface.
var _ wallet.Provider = (*client)(nil)

// Option configures a client.
type Option func(*client)

// WithPollInterval sets how often Subscribe checks for account and chain
// changes. Default: 2 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(c *client) {
		c.pollInterval = d
	}
}

// NewClient returns a wallet provider that talks to conn.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	c := &client{
		conn:         conn,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// toWalletError maps the provider error codes the wallet domain knows about.
func toWalletError(err error) error {
	var rpcErr *jsonrpc.Error
	if !errors.As(err, &rpcErr) {
		return err
	}

	switch rpcErr.Code {
	case codeUserRejected:
		return fmt.Errorf("%w: %w", wallet.ErrUserRejected, err)
	case codeChainNotAdded:
		return fmt.Errorf("%w: %w", wallet.ErrChainNotAdded, err)
	default:
		return err
	}
}

func (c *client) accounts(ctx context.Context, method string) ([]string, error) {
	data, err := c.conn.Fetch(ctx, method)
	if err != nil {
		return nil, toWalletError(err)
	}

	var accounts []string
	return accounts, json.Unmarshal(data, &accounts)
}

// RequestAccounts implements the wallet.Provider interface.
func (c *client) RequestAccounts(ctx context.Context) ([]string, error) {
	return c.accounts(ctx, "eth_requestAccounts")
}

// ChainID implements the wallet.Provider interface.
func (c *client) ChainID(ctx context.Context) (int64, error) {
	data, err := c.conn.Fetch(ctx, "eth_chainId")
	if err != nil {
		return 0, toWalletError(err)
	}

	var chainID types.Hex
	if err := json.Unmarshal(data, &chainID); err != nil {
		return 0, err
	}

	return chainID.Int(), nil
}

// SwitchChain implements the wallet.Provider interface.
func (c *client) SwitchChain(ctx context.Context, chainID int64) error {
	_, err := c.conn.Fetch(ctx, "wallet_switchEthereumChain", map[string]types.Hex{
		"chainId": types.HexFromInt(chainID),
	})
	return toWalletError(err)
}

// snapshot is the provider state observed by one poll.
type snapshot struct {
	accounts []string
	chainID  int64
}

func (c *client) snapshot(ctx context.Context) (snapshot, error) {
	accounts, err := c.accounts(ctx, "eth_accounts")
	if err != nil {
		return snapshot{}, err
	}

	chainID, err := c.ChainID(ctx)
	if err != nil {
		return snapshot{}, err
	}

	return snapshot{accounts: accounts, chainID: chainID}, nil
}

// Subscribe implements the wallet.Provider interface. The state at call time
// is the baseline: only later differences are emitted. Poll failures are
// logged and skipped. The returned channel is closed when ctx is done.
func (c *client) Subscribe(ctx context.Context) (<-chan wallet.ProviderEvent, error) {
	last, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return chflow.Poll(ctx, c.pollInterval, 1, func(ctx context.Context) (wallet.ProviderEvent, bool) {
		current, err := c.snapshot(ctx)
		if err != nil {
			logger.Warn(ctx, "wallet provider poll failed", "error", err)
			return wallet.ProviderEvent{}, false
		}

		event := wallet.ProviderEvent{
			Accounts:        current.accounts,
			AccountsChanged: !slices.Equal(last.accounts, current.accounts),
			ChainID:         current.chainID,
			ChainChanged:    last.chainID != current.chainID,
		}
		last = current

		return event, event.AccountsChanged || event.ChainChanged
	}), nil
}
