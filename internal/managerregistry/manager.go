package managerregistry

import (
	"context"
	"errors"

	"github.com/gabapcia/escrowctl/internal/escrow"
	"github.com/gabapcia/escrowctl/internal/escrowinput"
	"github.com/gabapcia/escrowctl/internal/pkg/logger"
	"github.com/gabapcia/escrowctl/internal/walletsession"

	"github.com/ethereum/go-ethereum/common"
)

func (s *service) Resolve(ctx context.Context) (*escrow.Handle, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	return s.resolve(ctx)
}

func (s *service) resolve(ctx context.Context) (*escrow.Handle, error) {
	address, err := s.addressBook.LastManager(ctx)
	if errors.Is(err, ErrNoKnownManager) {
		logger.Info(ctx, "no known manager, waiting for deploy or attach")
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return s.attach(ctx, address)
}

func (s *service) Deploy(ctx context.Context) (*escrow.Handle, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	signer, err := s.wallet.Signer(ctx)
	if err != nil {
		return nil, err
	}

	manager, err := s.ledger.Deploy(ctx, signer)
	if err != nil {
		logger.Error(ctx, "manager deployment failed", "error", err)
		return nil, &escrow.TxError{Op: "deploy manager", Class: escrow.ErrDeployment, Cause: err}
	}

	logger.Info(ctx, "manager deployed", "manager.address", manager.Address().Hex())

	return s.replace(ctx, manager), nil
}

func (s *service) Attach(ctx context.Context, address string) (*escrow.Handle, error) {
	addr, err := escrowinput.ParseAddress("manager", address)
	if err != nil {
		return nil, err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	return s.attach(ctx, addr)
}

func (s *service) UseDefault(ctx context.Context) (*escrow.Handle, error) {
	if s.cfg.defaultAddress == nil {
		return nil, ErrNoDefaultManager
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	return s.attach(ctx, *s.cfg.defaultAddress)
}

func (s *service) attach(ctx context.Context, address common.Address) (*escrow.Handle, error) {
	manager, err := s.ledger.Attach(ctx, address)
	if err != nil {
		logger.Error(ctx, "manager attach failed", "manager.address", address.Hex(), "error", err)
		return nil, &escrow.LedgerError{Manager: address, Class: escrow.ErrAttach, Cause: err}
	}

	return s.replace(ctx, manager), nil
}

// replace makes manager the active handle. Callers hold opMu, so listeners see
// handles in generation order.
func (s *service) replace(ctx context.Context, manager escrow.Manager) *escrow.Handle {
	s.stateMu.Lock()
	s.generation++
	previous := s.current
	handle := escrow.NewHandle(manager, s.generation)
	s.current = handle
	s.stateMu.Unlock()

	if previous != nil {
		previous.Invalidate()
	}

	if err := s.addressBook.RememberManager(ctx, manager.Address()); err != nil {
		logger.Warn(ctx, "failed to remember manager address", "manager.address", manager.Address().Hex(), "error", err)
	}

	logger.Info(ctx, "manager handle replaced",
		"manager.address", manager.Address().Hex(),
		"manager.generation", handle.Generation(),
	)

	s.listeners.Notify(ctx, handle)
	return handle
}

// handleAccountChange rebinds the manager for the new account. A disconnect
// keeps the handle; mutating operations fail on the missing signer instead.
func (s *service) handleAccountChange(ctx context.Context, change walletsession.AccountChange) {
	if !change.Connected {
		logger.Info(ctx, "wallet disconnected, keeping manager handle", "account.previous", change.Previous.Hex())
		return
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	var err error
	if current := s.Current(); current != nil {
		_, err = s.attach(ctx, current.Address())
	} else {
		_, err = s.resolve(ctx)
	}

	if err != nil {
		logger.Error(ctx, "failed to rebind manager after account change",
			"account.address", change.Current.Hex(),
			"error", err,
		)
	}
}
