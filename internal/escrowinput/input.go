// Package escrowinput turns raw user input into validated escrow creation
// parameters. It has no side effects.
package escrowinput

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/escrowctl/internal/escrow"
	"github.com/gabapcia/escrowctl/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
)

// AddressRule is the validator tag accepting ledger account addresses.
const AddressRule = "ledger_address"

var (
	ErrInvalidAmount  = fmt.Errorf("%w: amount", escrow.ErrInvalidInput)
	ErrInvalidAddress = fmt.Errorf("%w: address", escrow.ErrInvalidInput)
)

func init() {
	if err := validator.RegisterRule(AddressRule, IsAddress); err != nil {
		panic(err)
	}
}

// Input is the raw form a user fills in to create an escrow.
type Input struct {
	Amount      string
	Unit        string // defaults to ether
	Arbiter     string
	Beneficiary string
}

// AmountError rejects an amount that cannot be expressed in wei.
type AmountError struct {
	Amount string
	Unit   string
	Cause  error
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("invalid amount %q %s: %v", e.Amount, e.Unit, e.Cause)
}

func (e *AmountError) Unwrap() []error {
	return []error{ErrInvalidAmount, e.Cause}
}

// AddressError rejects a malformed address. Field names the offending input.
type AddressError struct {
	Field string
	Value string
	Cause error
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("invalid %s address %q", e.Field, e.Value)
}

func (e *AddressError) Unwrap() []error {
	return []error{ErrInvalidAddress, e.Cause}
}

// IsAddress accepts 20-byte hex with an optional 0x prefix. Mixed-case input
// must carry a valid EIP-55 checksum.
func IsAddress(s string) bool {
	if !common.IsHexAddress(s) {
		return false
	}

	digits := s
	if len(digits) == 2*common.AddressLength+2 {
		digits = digits[2:]
	}

	if digits == strings.ToLower(digits) || digits == strings.ToUpper(digits) {
		return true
	}

	return common.HexToAddress(s).Hex()[2:] == digits
}

// ParseAddress validates raw and converts it. field is reported in the error.
func ParseAddress(field, raw string) (common.Address, error) {
	raw = strings.TrimSpace(raw)
	if err := validator.Var(raw, "required,"+AddressRule); err != nil {
		return common.Address{}, &AddressError{Field: field, Value: raw, Cause: err}
	}

	return common.HexToAddress(raw), nil
}

// Validate checks amount, arbiter and beneficiary in that order and returns
// the first failure.
func Validate(in Input) (escrow.Params, error) {
	unit := escrow.Unit(in.Unit)
	if in.Unit == "" {
		unit = escrow.UnitEther
	}

	amount, err := escrow.ParseUnits(in.Amount, unit)
	if err != nil {
		return escrow.Params{}, &AmountError{Amount: in.Amount, Unit: string(unit), Cause: err}
	}

	arbiter, err := ParseAddress("arbiter", in.Arbiter)
	if err != nil {
		return escrow.Params{}, err
	}

	beneficiary, err := ParseAddress("beneficiary", in.Beneficiary)
	if err != nil {
		return escrow.Params{}, err
	}

	return escrow.Params{
		Arbiter:     arbiter,
		Beneficiary: beneficiary,
		Amount:      amount,
	}, nil
}

// IsAmountError reports whether err came from amount conversion.
func IsAmountError(err error) bool {
	var target *AmountError
	return errors.As(err, &target)
}
