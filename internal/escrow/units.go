package escrow

import (
	"errors"
	"math/big"
	"regexp"
	"strings"

	"github.com/holiman/uint256"
)

// Unit names a denomination of the ledger's native currency.
type Unit string

const (
	UnitWei    Unit = "wei"
	UnitKwei   Unit = "kwei"
	UnitMwei   Unit = "mwei"
	UnitGwei   Unit = "gwei"
	UnitSzabo  Unit = "szabo"
	UnitFinney Unit = "finney"
	UnitEther  Unit = "ether"
)

var unitDecimals = map[Unit]int{
	UnitWei:    0,
	UnitKwei:   3,
	UnitMwei:   6,
	UnitGwei:   9,
	UnitSzabo:  12,
	UnitFinney: 15,
	UnitEther:  18,
}

var (
	ErrUnknownUnit       = errors.New("unknown unit")
	ErrMalformedAmount   = errors.New("amount is not a decimal number")
	ErrNegativeAmount    = errors.New("amount is negative")
	ErrTooManyDecimals   = errors.New("amount has more fractional digits than the unit allows")
	ErrAmountOutOfBounds = errors.New("amount does not fit in 256 bits")
)

var amountPattern = regexp.MustCompile(`^(\d*)(?:\.(\d*))?$`)

// Decimals returns how many base-unit digits unit spans.
func (u Unit) Decimals() (int, bool) {
	d, ok := unitDecimals[Unit(strings.ToLower(string(u)))]
	return d, ok
}

// ParseUnits converts a human readable amount such as "1.5" ether into wei.
func ParseUnits(raw string, unit Unit) (*big.Int, error) {
	decimals, ok := unit.Decimals()
	if !ok {
		return nil, ErrUnknownUnit
	}

	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "-") {
		return nil, ErrNegativeAmount
	}

	m := amountPattern.FindStringSubmatch(raw)
	if m == nil || (m[1] == "" && m[2] == "") {
		return nil, ErrMalformedAmount
	}

	whole, frac := m[1], strings.TrimRight(m[2], "0")
	if len(frac) > decimals {
		return nil, ErrTooManyDecimals
	}

	digits := whole + frac + strings.Repeat("0", decimals-len(frac))
	value, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, ErrMalformedAmount
	}

	if _, overflow := uint256.FromBig(value); overflow {
		return nil, ErrAmountOutOfBounds
	}

	return value, nil
}

// FormatUnits is the inverse of ParseUnits. Trailing fractional zeros are
// dropped, so one ether formats as "1". Unknown units format as wei.
func FormatUnits(value *big.Int, unit Unit) string {
	if value == nil {
		return "0"
	}

	decimals, _ := unit.Decimals()

	sign := ""
	digits := value.String()
	if value.Sign() < 0 {
		sign, digits = "-", digits[1:]
	}

	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	cut := len(digits) - decimals
	whole, frac := digits[:cut], strings.TrimRight(digits[cut:], "0")
	if frac == "" {
		return sign + whole
	}

	return sign + whole + "." + frac
}
