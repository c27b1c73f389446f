package memory

import (
	"context"
	"sync"

	"github.com/gabapcia/walletfeed/internal/network"
	"github.com/gabapcia/walletfeed/internal/wallet"
)

// PreferenceStore keeps the preferred network for the life of the process.
type PreferenceStore struct {
	mu      sync.RWMutex
	network network.Network
}

// Compile-time assertion that PreferenceStore implements the wallet.PreferenceStorage interface.
var _ wallet.PreferenceStorage = (*PreferenceStore)(nil)

// NewPreferenceStore creates a store with no saved network.
func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{}
}

// SaveNetwork implements wallet.PreferenceStorage.
func (s *PreferenceStore) SaveNetwork(_ context.Context, n network.Network) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.network = n
	return nil
}

// LoadNetwork implements wallet.PreferenceStorage.
func (s *PreferenceStore) LoadNetwork(_ context.Context) (network.Network, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.network == "" {
		return "", wallet.ErrNoPreference
	}

	return s.network, nil
}
