package escrow

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Class sentinels. Every error produced by the services matches exactly one
// of them through errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("not authorized")
	ErrTransaction  = errors.New("transaction failed")
	ErrLedger       = errors.New("ledger unavailable")
)

var (
	ErrNoSigner        = fmt.Errorf("%w: no wallet signer available", ErrUnauthorized)
	ErrAccountMismatch = fmt.Errorf("%w: signer does not belong to the active account", ErrUnauthorized)

	ErrDeployment         = fmt.Errorf("%w: manager deployment", ErrTransaction)
	ErrCreation           = fmt.Errorf("%w: escrow creation", ErrTransaction)
	ErrSubmissionRejected = fmt.Errorf("%w: submission rejected", ErrTransaction)

	// ErrConfirmationTimeout means an approval was submitted but its Approved
	// event did not arrive in time. The escrow stays pending.
	ErrConfirmationTimeout = fmt.Errorf("%w: confirmation not observed in time", ErrTransaction)

	ErrLoad   = fmt.Errorf("%w: escrow load", ErrLedger)
	ErrAttach = fmt.Errorf("%w: manager attach", ErrLedger)

	ErrNoManager      = fmt.Errorf("%w: no manager contract selected", ErrInvalidInput)
	ErrEscrowNotFound = fmt.Errorf("%w: escrow not found", ErrInvalidInput)

	// ErrHandleReplaced cancels work tied to a manager handle that was swapped out.
	ErrHandleReplaced = fmt.Errorf("%w: manager handle replaced", ErrTransaction)
)

// Kind groups errors by what the user can do about them.
type Kind int

const (
	KindUnknown Kind = iota
	KindInput
	KindAuthorization
	KindTransaction
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "invalid input"
	case KindAuthorization:
		return "not authorized"
	case KindTransaction:
		return "network or transaction failure"
	default:
		return "unknown"
	}
}

// Classify maps err to its Kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidInput):
		return KindInput
	case errors.Is(err, ErrUnauthorized):
		return KindAuthorization
	case errors.Is(err, ErrTransaction), errors.Is(err, ErrLedger):
		return KindTransaction
	default:
		return KindUnknown
	}
}

// NotArbiterError rejects an approval attempted by someone other than the arbiter.
type NotArbiterError struct {
	EscrowID string
	Account  common.Address
	Arbiter  common.Address
}

func (e *NotArbiterError) Error() string {
	return fmt.Sprintf("account %s is not the arbiter of escrow %s", e.Account.Hex(), e.EscrowID)
}

func (e *NotArbiterError) Unwrap() error {
	return ErrUnauthorized
}

// TxError reports a failed ledger transaction. Class is ErrTransaction or one
// of the sentinels wrapping it.
type TxError struct {
	Op    string
	Class error
	Cause error
}

func (e *TxError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Class)
	}

	return fmt.Sprintf("%s: %v: %v", e.Op, e.Class, e.Cause)
}

func (e *TxError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Class}
	}

	return []error{e.Class, e.Cause}
}

// LedgerError reports a failed read against the ledger. Class is ErrLoad or ErrAttach.
type LedgerError struct {
	Manager common.Address
	Class   error
	Cause   error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("%v at %s: %v", e.Class, e.Manager.Hex(), e.Cause)
}

func (e *LedgerError) Unwrap() []error {
	return []error{e.Class, e.Cause}
}
