package managerregistry

import (
	"context"

	"github.com/gabapcia/escrowctl/internal/escrow"
	"github.com/gabapcia/escrowctl/internal/walletsession"

	"github.com/ethereum/go-ethereum/common"
)

// Ledger deploys and binds manager contracts.
type Ledger interface {
	// Deploy submits the creation transaction signed by signer and returns the
	// manager once it is mined.
	Deploy(ctx context.Context, signer escrow.Signer) (escrow.Manager, error)

	// Attach binds address and checks it answers a read-only manager call.
	Attach(ctx context.Context, address common.Address) (escrow.Manager, error)
}

// AddressBook remembers the last active manager between sessions.
type AddressBook interface {
	RememberManager(ctx context.Context, address common.Address) error

	// LastManager returns ErrNoKnownManager when nothing was remembered.
	LastManager(ctx context.Context) (common.Address, error)
}

// Wallet is the part of the wallet session the registry depends on.
type Wallet interface {
	Signer(ctx context.Context) (escrow.Signer, error)
	OnAccountChanged(l walletsession.Listener) (unsubscribe func())
}
