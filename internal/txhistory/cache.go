package txhistory

import "github.com/gabapcia/walletfeed/internal/network"

// Cache memoizes normalized transaction lists per (address, network).
//
// Implementations own their entries: Get and Put must copy lists so callers
// can never mutate a cached value.
type Cache interface {
	// Get returns the cached list for the exact (address, network) pair if
	// it is still fresh.
	Get(address string, n network.Network) ([]Transaction, bool)

	// Put stores txs under (address, network), replacing any previous entry.
	Put(address string, n network.Network, txs []Transaction)

	// Clear drops every entry.
	Clear()
}

// nopCache never stores anything. It is the default when no cache is
// configured.
type nopCache struct{}

var _ Cache = nopCache{}

func (nopCache) Get(string, network.Network) ([]Transaction, bool) { return nil, false }
func (nopCache) Put(string, network.Network, []Transaction)       {}
func (nopCache) Clear()                                           {}
