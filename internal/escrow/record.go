// Package escrow holds the domain model shared by the registry, the
// coordinator and the ledger adapters: escrow records, the manager contract
// surface, the signer capability, the manager handle and the error taxonomy.
package escrow

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Record is the client-side view of one escrow held by a manager contract.
//
// ID is the decimal form of the uint256 id assigned by the contract; the
// client never generates it.
type Record struct {
	ID          string
	Depositor   common.Address
	Arbiter     common.Address
	Beneficiary common.Address
	Value       *big.Int // wei
	IsApproved  bool
}

// Clone returns a deep copy so callers can never reach the owner's Value.
func (r Record) Clone() Record {
	if r.Value != nil {
		r.Value = new(big.Int).Set(r.Value)
	}

	return r
}

// ValueInEther formats Value the way the escrow list displays it ("1" for one ether).
func (r Record) ValueInEther() string {
	return FormatUnits(r.Value, UnitEther)
}

// IsArbiter compares account with the arbiter ignoring hex case.
func (r Record) IsArbiter(account common.Address) bool {
	return strings.EqualFold(account.Hex(), r.Arbiter.Hex())
}

// Params are validated creation parameters.
type Params struct {
	Arbiter     common.Address
	Beneficiary common.Address
	Amount      *big.Int // wei
}

// ApprovedEvent is the confirmation emitted by the manager contract once an
// approval transaction is mined.
type ApprovedEvent struct {
	ID          string
	TxHash      common.Hash
	BlockNumber uint64
}
