package amount

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// Decimals is the number of decimal places an Amount carries.
	Decimals = 3
	// Scale is the repr value of one whole credit.
	Scale = 1000
	// Symbol is the Fractal Global Credits currency sign, U+03FE.
	Symbol = 'Ͼ'
)

var (
	ErrInvalidFormat  = errors.New("invalid amount format")
	ErrOutOfRange     = errors.New("amount out of range")
	ErrOverflow       = errors.New("amount overflow")
	ErrUnderflow      = errors.New("amount underflow")
	ErrDivisionByZero = errors.New("amount division by zero")
)

// ParseError describes why a textual amount was rejected.
// Err is either ErrInvalidFormat or ErrOutOfRange.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("the amount %q is not a valid Fractal Global amount, %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Amount is a Fractal Global Credits amount.
//
// The internal representation is an unsigned 64 bit integer read as a fixed point number
// of factor 1/1000, so repr 1000 is one credit. Amounts are never negative.
// Amount is an immutable value, every operation returns a new Amount.
type Amount struct {
	value uint64
}

// FromRepr creates an amount from its internal representation.
func FromRepr(value uint64) Amount {
	return Amount{value: value}
}

// New creates an amount of units whole credits and fraction thousandths of a credit.
func New(units, fraction uint64) (Amount, error) {
	if units > math.MaxUint64/Scale {
		return Amount{}, fmt.Errorf("%w: %d units", ErrOutOfRange, units)
	}
	v := units * Scale
	if fraction > math.MaxUint64-v {
		return Amount{}, fmt.Errorf("%w: %d units and %d thousandths", ErrOutOfRange, units, fraction)
	}
	return Amount{value: v + fraction}, nil
}

// Zero returns the zero amount.
func Zero() Amount {
	return Amount{}
}

// Min returns the smallest representable amount.
func Min() Amount {
	return Amount{value: 0}
}

// Max returns the largest representable amount.
func Max() Amount {
	return Amount{value: math.MaxUint64}
}

// Repr returns the internal representation.
// It shouldn't be used except when serializing and deserializing.
func (a Amount) Repr() uint64 {
	return a.value
}

// Units returns the whole credits.
func (a Amount) Units() uint64 {
	return a.value / Scale
}

// Fraction returns the thousandths of a credit above Units.
func (a Amount) Fraction() uint64 {
	return a.value % Scale
}

// IsZero reports whether a is zero.
func (a Amount) IsZero() bool {
	return a.value == 0
}

// Cmp returns -1, 0 or +1 comparing a to b.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	default:
		return 0
	}
}

// Less reports whether a is smaller than b.
func (a Amount) Less(b Amount) bool {
	return a.value < b.value
}

// Add returns a + b or ErrOverflow.
func (a Amount) Add(b Amount) (Amount, error) {
	if b.value > math.MaxUint64-a.value {
		return Amount{}, fmt.Errorf("%w: %s + %s", ErrOverflow, a, b)
	}
	return Amount{value: a.value + b.value}, nil
}

// Sub returns a - b or ErrUnderflow when b is greater than a.
func (a Amount) Sub(b Amount) (Amount, error) {
	if b.value > a.value {
		return Amount{}, fmt.Errorf("%w: %s - %s", ErrUnderflow, a, b)
	}
	return Amount{value: a.value - b.value}, nil
}

// Mul returns a multiplied by n or ErrOverflow.
func (a Amount) Mul(n uint64) (Amount, error) {
	hi, lo := bits.Mul64(a.value, n)
	if hi != 0 {
		return Amount{}, fmt.Errorf("%w: %s * %d", ErrOverflow, a, n)
	}
	return Amount{value: lo}, nil
}

// Div returns a divided by n, truncated to the last decimal place.
func (a Amount) Div(n uint64) (Amount, error) {
	if n == 0 {
		return Amount{}, ErrDivisionByZero
	}
	return Amount{value: a.value / n}, nil
}

// Rem returns the remainder of a modulo n whole credits.
func (a Amount) Rem(n uint64) (Amount, error) {
	if n == 0 {
		return Amount{}, ErrDivisionByZero
	}
	hi, mod := bits.Mul64(n, Scale)
	if hi != 0 {
		return a, nil
	}
	return Amount{value: a.value % mod}, nil
}

// Sum adds all the amounts or returns ErrOverflow.
func Sum(amounts ...Amount) (Amount, error) {
	var total Amount
	for _, m := range amounts {
		var err error
		total, err = total.Add(m)
		if err != nil {
			return Amount{}, err
		}
	}
	return total, nil
}

// Float64 returns the amount as a float.
// Large amounts lose precision, use it for display only.
func (a Amount) Float64() float64 {
	return float64(a.Units()) + float64(a.Fraction())/Scale
}

// Decimal returns the exact decimal value of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(a.value), -Decimals)
}

// FromDecimal converts d rounding half up to the last decimal place.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("%w: negative amount %s", ErrOutOfRange, d)
	}
	repr := d.Shift(Decimals).Round(0).BigInt()
	if !repr.IsUint64() {
		return Amount{}, fmt.Errorf("%w: %s is above the maximum amount %s", ErrOutOfRange, d, Max())
	}
	return Amount{value: repr.Uint64()}, nil
}

// Parse parses the textual amount.
//
// Up to one period separates units from decimals. The units may be omitted, as in ".5",
// the decimals may not, as in "5.". Decimals beyond the third are rounded half up.
func Parse(s string) (Amount, error) {
	if s == "" {
		return Amount{}, &ParseError{Input: s, Reason: "it is empty", Err: ErrInvalidFormat}
	}

	unitsStr, decimalsStr, hasPeriod := strings.Cut(s, ".")
	if hasPeriod && strings.Contains(decimalsStr, ".") {
		return Amount{}, &ParseError{
			Input:  s,
			Reason: "an amount can only have one period to separate units and decimals",
			Err:    ErrInvalidFormat,
		}
	}

	var units uint64
	if unitsStr != "" || !hasPeriod {
		var err error
		units, err = parseUnits(s, unitsStr)
		if err != nil {
			return Amount{}, err
		}
	}
	if !hasPeriod {
		return Amount{value: units * Scale}, nil
	}

	if decimalsStr == "" {
		return Amount{}, &ParseError{Input: s, Reason: "no decimals were found after the decimal separator", Err: ErrInvalidFormat}
	}
	if !isDigits(decimalsStr) {
		return Amount{}, &ParseError{Input: s, Reason: "the decimal part is not a valid number", Err: ErrInvalidFormat}
	}

	fraction := roundDecimals(decimalsStr)
	v := units * Scale
	if fraction > math.MaxUint64-v {
		return Amount{}, &ParseError{Input: s, Reason: fmt.Sprintf("it is too big, the maximum amount is %s", Max()), Err: ErrOutOfRange}
	}
	return Amount{value: v + fraction}, nil
}

// MustParse is like Parse but panics when s is not a valid amount.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func parseUnits(input, s string) (uint64, error) {
	if !isDigits(s) {
		return 0, &ParseError{Input: input, Reason: "the units part is not a valid number", Err: ErrInvalidFormat}
	}
	units, err := strconv.ParseUint(s, 10, 64)
	if err != nil || units > math.MaxUint64/Scale {
		return 0, &ParseError{Input: input, Reason: fmt.Sprintf("it is too big, the maximum amount is %s", Max()), Err: ErrOutOfRange}
	}
	return units, nil
}

// roundDecimals reads the first Decimals digits, rounding half up on the next one.
// The result may equal Scale when rounding carries into the units.
func roundDecimals(s string) uint64 {
	var fraction uint64
	for i := 0; i < Decimals; i++ {
		fraction *= 10
		if i < len(s) {
			fraction += uint64(s[i] - '0')
		}
	}
	if len(s) > Decimals && s[Decimals] >= '5' {
		fraction++
	}
	return fraction
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
