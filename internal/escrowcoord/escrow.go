package escrowcoord

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/escrowctl/internal/escrow"
	"github.com/gabapcia/escrowctl/internal/pkg/logger"
)

func (s *service) Load(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	return s.load(ctx)
}

func (s *service) load(ctx context.Context) error {
	handle := s.registry.Current()
	if handle == nil {
		s.mu.Lock()
		s.resetLocked(nil)
		s.mu.Unlock()

		return escrow.ErrNoManager
	}

	bound, cancel := handle.Bind(ctx)
	defer cancel()

	var records []escrow.Record
	err := s.cfg.retry.Execute(bound, func() error {
		var err error
		records, err = handle.Manager().ListEscrows(bound)
		return err
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if !handle.Valid() {
		logger.Info(ctx, "discarding escrow load for replaced manager", "manager.address", handle.Address().Hex())
		return escrow.ErrHandleReplaced
	}

	if s.handle != handle {
		s.resetLocked(handle)
	}

	if err != nil {
		s.records = nil
		s.metrics.loadFails.Add(ctx, 1)
		logger.Error(ctx, "failed to load escrows", "manager.address", handle.Address().Hex(), "error", err)

		return &escrow.LedgerError{Manager: handle.Address(), Class: escrow.ErrLoad, Cause: err}
	}

	s.records = make([]escrow.Record, len(records))
	for i, r := range records {
		s.records[i] = r.Clone()
	}

	logger.Info(ctx, "escrows loaded", "manager.address", handle.Address().Hex(), "escrow.count", len(records))
	return nil
}

func (s *service) Create(ctx context.Context, params escrow.Params) (escrow.Record, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	handle := s.registry.Current()
	if handle == nil {
		return escrow.Record{}, escrow.ErrNoManager
	}

	account, ok := s.wallet.CurrentAccount()
	if !ok {
		return escrow.Record{}, escrow.ErrNoSigner
	}

	if !s.accountSettled(account) {
		return escrow.Record{}, ErrAccountChangePending
	}

	signer, err := s.wallet.Signer(ctx)
	if err != nil {
		return escrow.Record{}, err
	}

	if signer.Account() != account {
		return escrow.Record{}, escrow.ErrAccountMismatch
	}

	bound, cancel := handle.Bind(ctx)
	defer cancel()

	id, err := handle.Manager().CreateEscrow(bound, signer, params)
	if err != nil {
		logger.Error(ctx, "escrow creation failed", "manager.address", handle.Address().Hex(), "error", err)
		return escrow.Record{}, &escrow.TxError{Op: "create escrow", Class: escrow.ErrCreation, Cause: err}
	}

	record := escrow.Record{
		ID:          id,
		Depositor:   account,
		Arbiter:     params.Arbiter,
		Beneficiary: params.Beneficiary,
		Value:       new(big.Int).Set(params.Amount),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !handle.Valid() {
		logger.Warn(ctx, "escrow created on a replaced manager", "manager.address", handle.Address().Hex(), "escrow.id", id)
		return escrow.Record{}, fmt.Errorf("escrow %s: %w", id, escrow.ErrHandleReplaced)
	}

	if s.handle != handle {
		s.resetLocked(handle)
	}

	s.records = append([]escrow.Record{record}, s.records...)
	s.metrics.created.Add(ctx, 1)

	logger.Info(ctx, "escrow created",
		"manager.address", handle.Address().Hex(),
		"escrow.id", id,
		"escrow.value", record.ValueInEther(),
	)

	return record.Clone(), nil
}

// handleManagerChanged runs synchronously for every new manager handle.
func (s *service) handleManagerChanged(ctx context.Context, handle *escrow.Handle) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	s.resetLocked(handle)
	s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		logger.Error(ctx, "failed to reload escrows for new manager", "manager.address", handle.Address().Hex(), "error", err)
	}
}
