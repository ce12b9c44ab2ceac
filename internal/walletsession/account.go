package walletsession

import (
	"context"
	"fmt"

	"github.com/gabapcia/escrowctl/internal/escrow"
	"github.com/gabapcia/escrowctl/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
)

func (s *service) Connect(ctx context.Context) (common.Address, error) {
	if account, ok := s.CurrentAccount(); ok {
		return account, nil
	}

	s.mu.Lock()
	if s.unsubscribe == nil {
		s.unsubscribe = s.provider.SubscribeAccountsChanged(s.handleAccountsChanged)
	}
	s.mu.Unlock()

	accounts, err := s.provider.RequestAccounts(ctx)
	if err != nil || len(accounts) == 0 {
		s.Close()

		logger.Warn(ctx, "wallet access denied", "error", err)
		if err != nil {
			return common.Address{}, fmt.Errorf("%w: %w", ErrAccessDenied, err)
		}

		return common.Address{}, ErrAccessDenied
	}

	s.handleAccountsChanged(ctx, accounts)

	account, ok := s.CurrentAccount()
	if !ok {
		return common.Address{}, ErrAccessDenied
	}

	return account, nil
}

// handleAccountsChanged applies one provider notification. Repeating the
// current account is not a change and notifies nobody.
func (s *service) handleAccountsChanged(ctx context.Context, accounts []common.Address) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if s.unsubscribe == nil {
		s.mu.Unlock()
		return
	}

	change := AccountChange{Previous: s.account}
	if len(accounts) > 0 {
		change.Current, change.Connected = accounts[0], true
	}

	wasConnected := s.state == StateConnected
	if wasConnected == change.Connected && s.account == change.Current {
		s.mu.Unlock()
		return
	}

	s.account = change.Current
	s.state = StateDisconnected
	if change.Connected {
		s.state = StateConnected
	}
	s.mu.Unlock()

	logger.Info(ctx, "wallet account changed",
		"account.previous", change.Previous.Hex(),
		"account.address", change.Current.Hex(),
		"account.connected", change.Connected,
	)

	s.listeners.Notify(ctx, change)
}

func (s *service) Signer(ctx context.Context) (escrow.Signer, error) {
	account, ok := s.CurrentAccount()
	if !ok {
		return nil, escrow.ErrNoSigner
	}

	signer, err := s.provider.Signer(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", escrow.ErrNoSigner, err)
	}

	return signer, nil
}
