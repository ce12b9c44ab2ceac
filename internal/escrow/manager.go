package escrow

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
)

// Manager is the callable surface of a deployed manager contract.
type Manager interface {
	// Address is where the contract lives.
	Address() common.Address

	// ListEscrows returns every escrow known to the contract, in the order the
	// contract reports its ids.
	ListEscrows(ctx context.Context) ([]Record, error)

	// CreateEscrow submits a creation transaction carrying params.Amount,
	// waits until it is mined and returns the id from the contract's Created log.
	CreateEscrow(ctx context.Context, signer Signer, params Params) (string, error)

	// ApproveEscrow submits an approval transaction and returns as soon as the
	// node accepted it. Confirmation arrives through WatchApproved.
	ApproveEscrow(ctx context.Context, signer Signer, id string) (common.Hash, error)

	// WatchApproved streams Approved events for id into sink until the
	// subscription is unsubscribed or ctx ends.
	WatchApproved(ctx context.Context, id string, sink chan<- ApprovedEvent) (event.Subscription, error)
}

// Signer is the wallet capability to authorize transactions for one account.
type Signer interface {
	Account() common.Address

	// TransactOpts returns fresh options bound to ctx. Callers may mutate them.
	TransactOpts(ctx context.Context) *bind.TransactOpts
}
