package escrow

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Handle is the registry's reference to the active manager contract. Each
// replacement gets a higher generation and invalidates the previous handle;
// work bound to an invalid handle is canceled with ErrHandleReplaced.
type Handle struct {
	manager    Manager
	generation uint64

	ctx    context.Context
	cancel context.CancelFunc
}

// NewHandle wraps manager as generation.
func NewHandle(manager Manager, generation uint64) *Handle {
	ctx, cancel := context.WithCancel(context.Background())

	return &Handle{
		manager:    manager,
		generation: generation,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *Handle) Manager() Manager {
	return h.manager
}

func (h *Handle) Address() common.Address {
	return h.manager.Address()
}

func (h *Handle) Generation() uint64 {
	return h.generation
}

// Done is closed once the handle is invalidated.
func (h *Handle) Done() <-chan struct{} {
	return h.ctx.Done()
}

// Valid reports whether the handle is still the active one.
func (h *Handle) Valid() bool {
	return h.ctx.Err() == nil
}

// Invalidate marks the handle as replaced. It is idempotent.
func (h *Handle) Invalidate() {
	h.cancel()
}

// Bind derives a context from parent that is also canceled, with cause
// ErrHandleReplaced, when the handle is invalidated.
func (h *Handle) Bind(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	stop := context.AfterFunc(h.ctx, func() {
		cancel(ErrHandleReplaced)
	})

	return ctx, func() {
		stop()
		cancel(context.Canceled)
	}
}
