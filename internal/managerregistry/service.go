// Package managerregistry selects, provisions and hands out the manager
// contract the session works against. Exactly one manager handle is active at
// a time; every successful resolution replaces it with a new generation and
// invalidates the previous one.
package managerregistry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/escrowctl/internal/escrow"
	"github.com/gabapcia/escrowctl/internal/pkg/x/listeners"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrNoKnownManager is returned by an AddressBook that never stored an address.
	ErrNoKnownManager = errors.New("no known manager address")

	// ErrNoDefaultManager is returned by UseDefault when no well-known address is configured.
	ErrNoDefaultManager = fmt.Errorf("%w: no default manager configured", escrow.ErrInvalidInput)
)

// Listener receives every new active handle.
type Listener func(ctx context.Context, handle *escrow.Handle)

// Service defines the manager selection entrypoint.
type Service interface {
	// Start follows wallet account changes. Each change re-attaches the active
	// manager for the new account, or runs Resolve when none is active.
	//
	// Returns ErrServiceAlreadyStarted if Start is called more than once.
	Start(ctx context.Context) error

	// Close stops following the wallet and invalidates the active handle.
	Close()

	// Resolve attaches to the last manager remembered by the address book.
	// It returns a nil handle and no error when no address is known, in which
	// case the caller should Deploy, Attach or UseDefault.
	Resolve(ctx context.Context) (*escrow.Handle, error)

	// Deploy provisions a new manager with the session signer and waits until
	// it is mined. Failures match escrow.ErrDeployment.
	Deploy(ctx context.Context) (*escrow.Handle, error)

	// Attach validates address and checks it with a read-only call before
	// making it active. Failed checks match escrow.ErrAttach.
	Attach(ctx context.Context, address string) (*escrow.Handle, error)

	// UseDefault attaches to the configured well-known manager.
	UseDefault(ctx context.Context) (*escrow.Handle, error)

	// Current returns the active handle, or nil.
	Current() *escrow.Handle

	// OnHandleChanged registers l and returns a function removing it. Listeners
	// run synchronously, after the previous handle was invalidated.
	OnHandleChanged(l Listener) (unsubscribe func())
}

type closeFunc func()

type config struct {
	defaultAddress *common.Address
}

// Option configures the service.
type Option func(*config)

// WithDefaultAddress sets the well-known manager used by UseDefault.
func WithDefaultAddress(address common.Address) Option {
	return func(c *config) {
		c.defaultAddress = &address
	}
}

type service struct {
	cfg config

	ledger      Ledger
	addressBook AddressBook
	wallet      Wallet

	lifecycleMu sync.Mutex
	isStarted   bool
	closeFunc   closeFunc

	// opMu lets one resolution path run at a time.
	opMu sync.Mutex

	stateMu    sync.RWMutex
	current    *escrow.Handle
	generation uint64

	listeners listeners.List[*escrow.Handle]
}

var _ Service = (*service)(nil)

// New creates the registry.
func New(ledger Ledger, addressBook AddressBook, wallet Wallet, opts ...Option) *service {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		cfg:         cfg,
		ledger:      ledger,
		addressBook: addressBook,
		wallet:      wallet,
	}
}

func (s *service) Start(ctx context.Context) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	unsubscribe := s.wallet.OnAccountChanged(s.handleAccountChange)

	s.closeFunc = func() {
		unsubscribe()
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false

	s.stateMu.Lock()
	current := s.current
	s.current = nil
	s.stateMu.Unlock()

	if current != nil {
		current.Invalidate()
	}
}

func (s *service) Current() *escrow.Handle {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	return s.current
}

func (s *service) OnHandleChanged(l Listener) func() {
	return s.listeners.Add(l)
}
