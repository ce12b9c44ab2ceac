// Package walletsession tracks the active wallet account and exposes the
// signing capability bound to it. The account is owned by an external wallet
// Provider and may change at any time; every change is pushed synchronously to
// the registered listeners in the order the provider emitted it.
package walletsession

import (
	"context"
	"fmt"
	"sync"

	"github.com/gabapcia/escrowctl/internal/escrow"
	"github.com/gabapcia/escrowctl/internal/pkg/x/listeners"

	"github.com/ethereum/go-ethereum/common"
)

// ErrAccessDenied is returned by Connect when the wallet refused to expose an account.
var ErrAccessDenied = fmt.Errorf("%w: wallet access denied", escrow.ErrUnauthorized)

// State is the connection state of a session.
type State int

const (
	StateDisconnected State = iota
	StateConnected
)

func (s State) String() string {
	if s == StateConnected {
		return "connected"
	}

	return "disconnected"
}

// AccountChange describes one transition of the active account. Current is
// the zero address when Connected is false.
type AccountChange struct {
	Previous  common.Address
	Current   common.Address
	Connected bool
}

// Listener receives account changes.
type Listener func(ctx context.Context, change AccountChange)

// Service is the wallet session of one client.
type Service interface {
	// Connect asks the provider for account access once. When access is
	// denied, or no account is exposed, the session stays disconnected and
	// ErrAccessDenied is returned. Connecting an already connected session
	// returns the current account without asking again.
	Connect(ctx context.Context) (common.Address, error)

	// Close stops following provider notifications and disconnects the
	// session. Listeners are kept.
	Close()

	State() State

	// CurrentAccount returns the active account and whether one exists.
	CurrentAccount() (common.Address, bool)

	// Signer returns the signing capability of the active account, or
	// escrow.ErrNoSigner when there is none.
	Signer(ctx context.Context) (escrow.Signer, error)

	// OnAccountChanged registers l and returns a function removing it.
	OnAccountChanged(l Listener) (unsubscribe func())
}

type service struct {
	provider Provider

	// notifyMu serializes transitions so listeners observe them in emission order.
	notifyMu sync.Mutex

	mu          sync.RWMutex
	state       State
	account     common.Address
	unsubscribe func()

	listeners listeners.List[AccountChange]
}

var _ Service = (*service)(nil)

// New creates a disconnected session on top of provider.
func New(provider Provider) *service {
	return &service{
		provider: provider,
	}
}

func (s *service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *service) CurrentAccount() (common.Address, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.account, s.state == StateConnected
}

func (s *service) OnAccountChanged(l Listener) func() {
	return s.listeners.Add(l)
}

func (s *service) Close() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.state = StateDisconnected
	s.account = common.Address{}
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}
