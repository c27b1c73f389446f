package wallet

import (
	"context"
	"errors"
	"strings"

	"github.com/gabapcia/walletfeed/internal/network"
)

var (
	// ErrNoAccounts is returned when the provider exposes no account, which
	// usually means the wallet is locked.
	ErrNoAccounts = errors.New("no accounts available")

	// ErrUserRejected is returned when the user declines a provider request.
	ErrUserRejected = errors.New("user rejected the request")

	// ErrChainNotAdded is returned when the wallet does not know the chain it
	// was asked to switch to.
	ErrChainNotAdded = errors.New("chain not added to wallet")

	// ErrNoPreference is returned by PreferenceStorage when no network was saved.
	ErrNoPreference = errors.New("no network preference stored")

	// ErrUnsupportedNetwork is returned when the wallet is on a chain outside
	// the configured set.
	ErrUnsupportedNetwork = network.ErrUnsupported
)

// Provider is a wallet able to expose accounts and switch chains.
type Provider interface {
	// RequestAccounts asks the wallet for access and returns the exposed
	// accounts, the active one first.
	RequestAccounts(ctx context.Context) ([]string, error)

	// ChainID returns the chain the wallet is currently on.
	ChainID(ctx context.Context) (int64, error)

	// SwitchChain asks the wallet to move to chainID.
	SwitchChain(ctx context.Context, chainID int64) error

	// Subscribe streams account and chain changes until ctx is done.
	Subscribe(ctx context.Context) (<-chan ProviderEvent, error)
}

// ProviderEvent reports what changed in the wallet since the previous event.
type ProviderEvent struct {
	Accounts        []string
	AccountsChanged bool
	ChainID         int64
	ChainChanged    bool
}

// PreferenceStorage persists the network the user last selected.
type PreferenceStorage interface {
	// SaveNetwork stores n as the preferred network.
	SaveNetwork(ctx context.Context, n network.Network) error

	// LoadNetwork returns the stored network or ErrNoPreference.
	LoadNetwork(ctx context.Context) (network.Network, error)
}

// Session is the current wallet connection as seen by the user.
type Session struct {
	Connected bool            `json:"connected"`
	Address   string          `json:"address,omitempty"`
	ChainID   int64           `json:"chain_id"`
	Network   network.Network `json:"network"`
	Error     string          `json:"error,omitempty"`
}

// Describe returns the message shown to users for a wallet error.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUserRejected):
		return "User rejected the connection request"
	case errors.Is(err, ErrNoAccounts):
		return "No accounts found. Please unlock your wallet."
	case errors.Is(err, ErrChainNotAdded):
		return "Chain not added to wallet. Please add it manually."
	case errors.Is(err, ErrUnsupportedNetwork):
		return "Unsupported chain connected"
	case strings.Contains(strings.ToLower(err.Error()), "rate limit"):
		return "Rate limit exceeded. Please try again in a moment."
	default:
		return err.Error()
	}
}

// ShortAddress abbreviates an address to its first six and last four
// characters.
func ShortAddress(a string) string {
	if len(a) <= 10 {
		return a
	}

	return a[:6] + "…" + a[len(a)-4:]
}
