// Package escrowcoord owns the client's view of the escrows held by the active
// manager contract. It loads them, creates new ones and drives approvals until
// the contract confirms them through an Approved event.
//
// Operations run one at a time. An approval releases the operation lock once
// its transaction is accepted and waits for confirmation outside of it, so a
// pending approval never blocks loading or creating.
package escrowcoord

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/escrowctl/internal/escrow"
	"github.com/gabapcia/escrowctl/internal/managerregistry"
	"github.com/gabapcia/escrowctl/internal/pkg/logger"
	"github.com/gabapcia/escrowctl/internal/pkg/resilience/retry"
	"github.com/gabapcia/escrowctl/internal/pkg/types"
	"github.com/gabapcia/escrowctl/internal/walletsession"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrAccountChangePending rejects a mutation requested after the wallet
	// switched accounts but before the switch reached the coordinator.
	ErrAccountChangePending = fmt.Errorf("%w: account change still being applied", escrow.ErrAccountMismatch)
)

// DefaultConfirmationTimeout bounds how long an approval waits for its Approved event.
const DefaultConfirmationTimeout = 10 * time.Minute

// ApprovalState describes where an escrow stands in the approval flow.
type ApprovalState int

const (
	ApprovalNone ApprovalState = iota
	ApprovalPending
	ApprovalStalled
	ApprovalConfirmed
)

func (s ApprovalState) String() string {
	switch s {
	case ApprovalPending:
		return "pending"
	case ApprovalStalled:
		return "still pending"
	case ApprovalConfirmed:
		return "approved"
	default:
		return "none"
	}
}

// Registry is the part of the manager registry the coordinator depends on.
type Registry interface {
	Current() *escrow.Handle
	OnHandleChanged(l managerregistry.Listener) (unsubscribe func())
}

// Wallet is the part of the wallet session the coordinator depends on.
type Wallet interface {
	CurrentAccount() (common.Address, bool)
	Signer(ctx context.Context) (escrow.Signer, error)
	OnAccountChanged(l walletsession.Listener) (unsubscribe func())
}

// Service coordinates escrow operations against the active manager.
type Service interface {
	// Start follows manager replacements: each new handle drops the current
	// collection, tears down its pending approvals and reloads.
	//
	// It also follows account changes. Until a change published by the wallet
	// has been delivered to the coordinator, Create and Approve fail with
	// ErrAccountChangePending. Start the registry first so its re-attachment
	// runs before the coordinator accepts the new account.
	//
	// Returns ErrServiceAlreadyStarted if Start is called more than once.
	Start(ctx context.Context) error

	// Close stops following the registry and abandons pending approvals.
	Close()

	// Load replaces the collection with the manager's escrows. On failure the
	// collection is left empty and the error matches escrow.ErrLoad.
	Load(ctx context.Context) error

	// Create submits a new escrow funded by the active account, waits until it
	// is mined and inserts it at the head of the collection.
	Create(ctx context.Context, params escrow.Params) (escrow.Record, error)

	// Approve submits the approval of escrow id and waits for its Approved
	// event. Only the arbiter may approve; approving an approved escrow is a
	// no-op; approving an escrow already in flight joins that wait.
	Approve(ctx context.Context, id string) error

	// Escrows returns a copy of the collection, newest first.
	Escrows() []escrow.Record

	ApprovalState(id string) ApprovalState

	// Manager returns the address of the manager the collection belongs to.
	Manager() (common.Address, bool)
}

type closeFunc func()

type config struct {
	confirmationTimeout time.Duration
	retry               retry.Retry
}

// Option configures the service.
type Option func(*config)

// WithConfirmationTimeout overrides DefaultConfirmationTimeout.
func WithConfirmationTimeout(d time.Duration) Option {
	return func(c *config) {
		c.confirmationTimeout = d
	}
}

// WithRetry sets the policy used for ledger reads during Load.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

type service struct {
	cfg     config
	metrics *metrics

	registry Registry
	wallet   Wallet

	lifecycleMu sync.Mutex
	isStarted   bool
	closeFunc   closeFunc

	opMu sync.Mutex

	mu      sync.RWMutex
	handle  *escrow.Handle // handle the collection belongs to
	records []escrow.Record
	pending map[string]*pendingApproval
	stalled types.Set[string]

	// account the coordinator last settled on, tracked while started
	following bool
	applied   common.Address
	appliedOK bool
}

var _ Service = (*service)(nil)

// New creates the coordinator.
func New(registry Registry, wallet Wallet, opts ...Option) *service {
	cfg := config{
		confirmationTimeout: DefaultConfirmationTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.retry == nil {
		cfg.retry = retry.New(retry.WithRetryIf(retry.NotCanceled))
	}

	return &service{
		cfg:      cfg,
		metrics:  newMetrics(),
		registry: registry,
		wallet:   wallet,
		pending:  make(map[string]*pendingApproval),
		stalled:  types.NewSet[string](),
	}
}

func (s *service) Start(ctx context.Context) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	s.mu.Lock()
	s.applied, s.appliedOK = s.wallet.CurrentAccount()
	s.following = true
	s.mu.Unlock()

	unsubscribeHandle := s.registry.OnHandleChanged(s.handleManagerChanged)
	unsubscribeAccount := s.wallet.OnAccountChanged(s.handleAccountChanged)

	s.closeFunc = func() {
		unsubscribeAccount()
		unsubscribeHandle()
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

	s.mu.Lock()
	defer s.mu.Unlock()

	s.following = false
	s.resetLocked(nil)
}

func (s *service) handleAccountChanged(ctx context.Context, change walletsession.AccountChange) {
	s.mu.Lock()
	s.applied, s.appliedOK = change.Current, change.Connected
	s.mu.Unlock()

	logger.Debug(ctx, "account change applied", "account.address", change.Current.Hex(), "account.connected", change.Connected)
}

// accountSettled reports whether account is the one the coordinator last
// settled on. Nothing is tracked before Start, so every account passes.
func (s *service) accountSettled(account common.Address) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return !s.following || (s.appliedOK && s.applied == account)
}

func (s *service) Escrows() []escrow.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]escrow.Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}

	return out
}

func (s *service) ApprovalState(id string) ApprovalState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.pending[id] != nil:
		return ApprovalPending
	case s.stalled.Has(id):
		return ApprovalStalled
	}

	if r, ok := s.findLocked(id); ok && r.IsApproved {
		return ApprovalConfirmed
	}

	return ApprovalNone
}

func (s *service) Manager() (common.Address, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.handle == nil {
		return common.Address{}, false
	}

	return s.handle.Address(), true
}

func (s *service) findLocked(id string) (escrow.Record, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}

	return escrow.Record{}, false
}

// resetLocked binds the collection to handle, dropping records and every
// approval tracked for the previous handle. Callers hold mu.
func (s *service) resetLocked(handle *escrow.Handle) {
	for id, p := range s.pending {
		p.abandon(escrow.ErrHandleReplaced)
		delete(s.pending, id)
	}

	s.handle = handle
	s.records = nil
	s.stalled = types.NewSet[string]()
}
