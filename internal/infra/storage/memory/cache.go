// Package memory provides in-process implementations of the walletfeed
// storage interfaces.
package memory

import (
	"sync"
	"time"

	"github.com/gabapcia/walletfeed/internal/network"
	"github.com/gabapcia/walletfeed/internal/txhistory"
)

// DefaultTTL is how long a cached history stays fresh.
const DefaultTTL = 5 * time.Minute

type cacheKey struct {
	address string
	network network.Network
}

type cacheEntry struct {
	transactions []txhistory.Transaction
	capturedAt   time.Time
}

// TransactionCache is a TTL cache of transaction histories keyed by the exact
// (address, network) pair. Expired entries are ignored on read and replaced
// on the next Put; nothing is evicted in the background.
type TransactionCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[cacheKey]cacheEntry
}

// Compile-time assertion that TransactionCache implements the txhistory.Cache interface.
var _ txhistory.Cache = (*TransactionCache)(nil)

// CacheOption configures a TransactionCache.
type CacheOption func(*TransactionCache)

// WithTTL sets the freshness window. Default: 5 minutes.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *TransactionCache) {
		c.ttl = ttl
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) CacheOption {
	return func(c *TransactionCache) {
		c.now = now
	}
}

// NewTransactionCache creates an empty cache.
func NewTransactionCache(opts ...CacheOption) *TransactionCache {
	c := &TransactionCache{
		ttl:     DefaultTTL,
		now:     time.Now,
		entries: make(map[cacheKey]cacheEntry),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get implements txhistory.Cache. The returned list is a copy.
func (c *TransactionCache) Get(address string, n network.Network) ([]txhistory.Transaction, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[cacheKey{address: address, network: n}]
	if !ok || c.now().Sub(entry.capturedAt) >= c.ttl {
		return nil, false
	}

	return txhistory.CloneTransactions(entry.transactions), true
}

// Put implements txhistory.Cache. The list is copied before it is stored.
func (c *TransactionCache) Put(address string, n network.Network, txs []txhistory.Transaction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey{address: address, network: n}] = cacheEntry{
		transactions: txhistory.CloneTransactions(txs),
		capturedAt:   c.now(),
	}
}

// Clear implements txhistory.Cache.
func (c *TransactionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
}

// Len returns the number of stored entries, fresh or not.
func (c *TransactionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
