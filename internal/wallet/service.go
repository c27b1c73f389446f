// Package wallet keeps the session of a connected wallet: which account is
// active, which network it is on and which network the user prefers.
package wallet

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/walletfeed/internal/network"
	"github.com/gabapcia/walletfeed/internal/pkg/logger"
	"github.com/gabapcia/walletfeed/internal/pkg/x/chflow"
)

// Service manages a single wallet session.
type Service interface {
	// Restore loads the preferred network from storage. It falls back to
	// the default network when nothing was saved.
	Restore(ctx context.Context) (Session, error)

	// Session returns a snapshot of the current session.
	Session() Session

	// Connect requests accounts from the provider and binds the session to
	// the first one and to the provider's current chain.
	Connect(ctx context.Context) (Session, error)

	// SelectNetwork switches to n, asking the provider to change chains when
	// a wallet is connected, and saves it as the preference.
	SelectNetwork(ctx context.Context, n network.Network) (Session, error)

	// Disconnect forgets the account but keeps the selected network.
	Disconnect() Session

	// Watch applies provider events to the session until ctx is done,
	// calling onChange after each applied event.
	Watch(ctx context.Context, onChange func(Session)) error
}

type service struct {
	provider    Provider
	preferences PreferenceStorage

	mu      sync.Mutex
	session Session
}

var _ Service = (*service)(nil)

// New builds a wallet service on top of a provider and a preference store.
func New(provider Provider, preferences PreferenceStorage) *service {
	return &service{
		provider:    provider,
		preferences: preferences,
		session:     Session{Network: network.Default, ChainID: mustChainID(network.Default)},
	}
}

func mustChainID(n network.Network) int64 {
	cfg, err := network.Lookup(n)
	if err != nil {
		panic(err)
	}
	return cfg.ChainID
}

func (s *service) Restore(ctx context.Context) (Session, error) {
	n, err := s.preferences.LoadNetwork(ctx)
	switch {
	case errors.Is(err, ErrNoPreference):
		n = network.Default
	case err != nil:
		return s.Session(), err
	case !network.IsSupported(n):
		logger.Warn(ctx, "ignoring unsupported stored network", "network", n)
		n = network.Default
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Network = n
	s.session.ChainID = mustChainID(n)
	return s.session, nil
}

func (s *service) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session
}

// fail records err on the session and returns it unchanged.
func (s *service) fail(err error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Error = Describe(err)
	return s.session, err
}

func (s *service) Connect(ctx context.Context) (Session, error) {
	accounts, err := s.provider.RequestAccounts(ctx)
	if err != nil {
		return s.fail(err)
	}

	if len(accounts) == 0 {
		return s.fail(ErrNoAccounts)
	}

	chainID, err := s.provider.ChainID(ctx)
	if err != nil {
		return s.fail(err)
	}

	n, err := network.FromChainID(chainID)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.session = Session{
		Connected: true,
		Address:   accounts[0],
		ChainID:   chainID,
		Network:   n,
	}
	session := s.session
	s.mu.Unlock()

	s.savePreference(ctx, n)

	logger.Info(ctx, "wallet connected",
		"wallet.address", session.Address,
		"network", session.Network,
	)

	return session, nil
}

func (s *service) SelectNetwork(ctx context.Context, n network.Network) (Session, error) {
	cfg, err := network.Lookup(n)
	if err != nil {
		return s.fail(err)
	}

	if s.Session().Connected {
		if err := s.provider.SwitchChain(ctx, cfg.ChainID); err != nil {
			return s.fail(err)
		}
	}

	s.mu.Lock()
	s.session.Network = n
	s.session.ChainID = cfg.ChainID
	s.session.Error = ""
	session := s.session
	s.mu.Unlock()

	s.savePreference(ctx, n)
	return session, nil
}

func (s *service) Disconnect() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Connected = false
	s.session.Address = ""
	s.session.Error = ""
	return s.session
}

func (s *service) Watch(ctx context.Context, onChange func(Session)) error {
	events, err := s.provider.Subscribe(ctx)
	if err != nil {
		return err
	}

	for {
		event, ok := chflow.Receive(ctx, events)
		if !ok {
			return ctx.Err()
		}

		session := s.apply(ctx, event)
		if onChange != nil {
			onChange(session)
		}
	}
}

// apply folds one provider event into the session.
func (s *service) apply(ctx context.Context, event ProviderEvent) Session {
	if event.AccountsChanged && len(event.Accounts) == 0 {
		logger.Info(ctx, "wallet disconnected by provider")
		return s.Disconnect()
	}

	s.mu.Lock()

	var save bool
	if event.AccountsChanged {
		s.session.Connected = true
		s.session.Address = event.Accounts[0]
		s.session.Error = ""
	}

	if event.ChainChanged {
		n, err := network.FromChainID(event.ChainID)
		if err != nil {
			s.session.Error = Describe(err)
		} else {
			s.session.Network = n
			s.session.ChainID = event.ChainID
			s.session.Error = ""
			save = true
		}
	}

	session := s.session
	s.mu.Unlock()

	if save {
		s.savePreference(ctx, session.Network)
	}

	return session
}

// savePreference persists n. A storage failure is logged and does not fail
// the session change.
func (s *service) savePreference(ctx context.Context, n network.Network) {
	if err := s.preferences.SaveNetwork(ctx, n); err != nil {
		logger.Warn(ctx, "failed to save network preference", "network", n, "error", err)
	}
}
