package escrowcoord

import (
	"context"
	"errors"

	"github.com/gabapcia/escrowctl/internal/escrow"
	"github.com/gabapcia/escrowctl/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/event"
	"github.com/google/uuid"
)

// pendingApproval is one submitted approval waiting for its Approved event.
// Its watch context ends with ErrConfirmationTimeout when the timeout fires
// and with ErrHandleReplaced when the handle is replaced or the collection is
// reset.
type pendingApproval struct {
	attempt uuid.UUID
	handle  *escrow.Handle

	ctx     context.Context
	cancel  context.CancelFunc
	abandon context.CancelCauseFunc

	sub  event.Subscription
	sink chan escrow.ApprovedEvent

	done chan struct{}
	err  error
}

func (p *pendingApproval) wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *service) Approve(ctx context.Context, id string) error {
	p, err := s.submitApproval(ctx, id)
	if err != nil || p == nil {
		return err
	}

	return p.wait(ctx)
}

// submitApproval runs under opMu. It returns a nil attempt when there is
// nothing to wait for.
func (s *service) submitApproval(ctx context.Context, id string) (*pendingApproval, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	handle := s.registry.Current()
	if handle == nil {
		return nil, escrow.ErrNoManager
	}

	s.mu.RLock()
	record, found := s.findLocked(id)
	if s.handle != handle {
		found = false
	}
	inFlight := s.pending[id]
	s.mu.RUnlock()

	if !found {
		return nil, escrow.ErrEscrowNotFound
	}

	account, ok := s.wallet.CurrentAccount()
	if !ok {
		return nil, escrow.ErrNoSigner
	}

	if !s.accountSettled(account) {
		return nil, ErrAccountChangePending
	}

	if !record.IsArbiter(account) {
		return nil, &escrow.NotArbiterError{EscrowID: id, Account: account, Arbiter: record.Arbiter}
	}

	if record.IsApproved {
		return nil, nil
	}

	if inFlight != nil {
		logger.Info(ctx, "joining approval in flight", "escrow.id", id, "approval.attempt", inFlight.attempt.String())
		return inFlight, nil
	}

	signer, err := s.wallet.Signer(ctx)
	if err != nil {
		return nil, err
	}

	if signer.Account() != account {
		return nil, escrow.ErrAccountMismatch
	}

	p, err := s.watchApproval(handle, id)
	if err != nil {
		logger.Error(ctx, "failed to watch approvals", "escrow.id", id, "error", err)
		return nil, &escrow.TxError{Op: "approve escrow", Class: escrow.ErrSubmissionRejected, Cause: err}
	}

	bound, cancel := handle.Bind(ctx)
	defer cancel()

	txHash, err := handle.Manager().ApproveEscrow(bound, signer, id)
	if err != nil {
		s.mu.Lock()
		if s.pending[id] == p {
			delete(s.pending, id)
		}
		s.mu.Unlock()

		p.sub.Unsubscribe()
		p.cancel()

		logger.Error(ctx, "approval rejected", "escrow.id", id, "error", err)
		return nil, &escrow.TxError{Op: "approve escrow", Class: escrow.ErrSubmissionRejected, Cause: err}
	}

	s.metrics.submitted.Add(ctx, 1)
	logger.Info(ctx, "approval submitted",
		"escrow.id", id,
		"approval.attempt", p.attempt.String(),
		"tx.hash", txHash.Hex(),
	)

	go s.awaitConfirmation(context.WithoutCancel(ctx), id, p)
	return p, nil
}

// watchApproval subscribes to Approved events for id and registers the
// attempt as pending. Nothing is submitted yet.
func (s *service) watchApproval(handle *escrow.Handle, id string) (*pendingApproval, error) {
	bound, cancelBound := handle.Bind(context.Background())
	abandonCtx, abandon := context.WithCancelCause(bound)
	watchCtx, cancelTimeout := context.WithTimeoutCause(abandonCtx, s.cfg.confirmationTimeout, escrow.ErrConfirmationTimeout)

	cancel := func() {
		cancelTimeout()
		abandon(context.Canceled)
		cancelBound()
	}

	sink := make(chan escrow.ApprovedEvent, 1)
	sub, err := handle.Manager().WatchApproved(watchCtx, id, sink)
	if err != nil {
		cancel()
		return nil, err
	}

	p := &pendingApproval{
		attempt: uuid.Must(uuid.NewV7()),
		handle:  handle,
		ctx:     watchCtx,
		cancel:  cancel,
		abandon: abandon,
		sub:     sub,
		sink:    sink,
		done:    make(chan struct{}),
	}

	s.mu.Lock()
	s.pending[id] = p
	s.stalled.Delete(id)
	s.mu.Unlock()

	return p, nil
}

// awaitConfirmation runs until the attempt resolves.
func (s *service) awaitConfirmation(ctx context.Context, id string, p *pendingApproval) {
	defer p.cancel()
	defer p.sub.Unsubscribe()

	subErr := p.sub.Err()
	for {
		select {
		case ev := <-p.sink:
			if ev.ID != id {
				continue
			}

			s.finishApproval(ctx, id, p, nil)
			return

		case err, ok := <-subErr:
			if !ok || err == nil {
				subErr = nil
				continue
			}

			s.finishApproval(ctx, id, p, err)
			return

		case <-p.ctx.Done():
			s.finishApproval(ctx, id, p, context.Cause(p.ctx))
			return
		}
	}
}

// finishApproval records the outcome of p and releases its waiters. Outcomes
// of attempts issued against another handle leave the collection untouched.
func (s *service) finishApproval(ctx context.Context, id string, p *pendingApproval, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending[id] == p {
		delete(s.pending, id)
	}

	current := s.handle == p.handle && p.handle.Valid()

	switch {
	case err == nil:
		if current {
			for i := range s.records {
				if s.records[i].ID == id {
					s.records[i].IsApproved = true
				}
			}
		}

		s.metrics.confirmed.Add(ctx, 1)
		logger.Info(ctx, "approval confirmed", "escrow.id", id, "approval.attempt", p.attempt.String())

	case errors.Is(err, escrow.ErrHandleReplaced), errors.Is(err, context.Canceled):
		err = escrow.ErrHandleReplaced
		logger.Info(ctx, "approval abandoned with its manager", "escrow.id", id, "approval.attempt", p.attempt.String())

	case errors.Is(err, escrow.ErrConfirmationTimeout):
		if current {
			s.stalled.Add(id)
		}

		err = &escrow.TxError{Op: "approve escrow", Class: escrow.ErrConfirmationTimeout}
		s.metrics.stalled.Add(ctx, 1)
		logger.Warn(ctx, "approval still pending after timeout", "escrow.id", id, "approval.attempt", p.attempt.String())

	default:
		if current {
			s.stalled.Add(id)
		}

		err = &escrow.TxError{Op: "approve escrow", Class: escrow.ErrTransaction, Cause: err}
		s.metrics.stalled.Add(ctx, 1)
		logger.Error(ctx, "approval confirmation lost", "escrow.id", id, "error", err)
	}

	p.err = err
	close(p.done)
}
