package walletsession

import (
	"context"

	"github.com/gabapcia/escrowctl/internal/escrow"

	"github.com/ethereum/go-ethereum/common"
)

// AccountsHandler receives the provider's account list, active account first.
// An empty list means the wallet no longer exposes any account.
type AccountsHandler func(ctx context.Context, accounts []common.Address)

// Provider is the external wallet.
type Provider interface {
	// RequestAccounts asks the user for access and returns the exposed accounts.
	RequestAccounts(ctx context.Context) ([]common.Address, error)

	// Signer returns the signing capability for account.
	Signer(ctx context.Context, account common.Address) (escrow.Signer, error)

	// SubscribeAccountsChanged delivers every later account change to handler,
	// one at a time and in order, until unsubscribe is called.
	SubscribeAccountsChanged(handler AccountsHandler) (unsubscribe func())
}
