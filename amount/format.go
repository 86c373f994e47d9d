package amount

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DisplayConfig holds the way amounts are presented to humans.
type DisplayConfig struct {
	Precision  int  `yaml:"precision"`   // decimal places to print, a negative value prints the canonical form
	ShowSymbol bool `yaml:"show_symbol"` // prefix the currency symbol
}

// FormatAmount formats a according to the configuration.
func (c DisplayConfig) FormatAmount(a Amount) string {
	s := a.Text(c.Precision)
	if c.ShowSymbol {
		return withSymbol(s)
	}
	return s
}

// String returns the canonical textual amount: the units followed by the decimals
// with trailing zeros removed. Whole amounts have no decimal separator.
func (a Amount) String() string {
	units := strconv.FormatUint(a.Units(), 10)
	fraction := a.Fraction()
	if fraction == 0 {
		return units
	}
	return units + "." + strings.TrimRight(fmt.Sprintf("%03d", fraction), "0")
}

// Text formats the amount with prec decimal places.
// Precisions below Decimals round half up, above it pad with zeros and a negative
// precision gives String.
func (a Amount) Text(prec int) string {
	if prec < 0 {
		return a.String()
	}
	units, fraction := a.Units(), a.Fraction()
	if prec >= Decimals {
		return fmt.Sprintf("%d.%03d%s", units, fraction, strings.Repeat("0", prec-Decimals))
	}

	div := pow10(Decimals - prec)
	q, r := fraction/div, fraction%div
	if r*2 >= div {
		q++
	}
	if q == pow10(prec) {
		units++
		q = 0
	}
	if prec == 0 {
		return strconv.FormatUint(units, 10)
	}
	return fmt.Sprintf("%d.%0*d", units, prec, q)
}

// Format implements fmt.Formatter.
//
//	%v %s %f  canonical form, or Text(precision) when a precision is given
//	%+v       same, prefixed with the currency symbol
//	%#v       Go syntax
//	%d        internal representation
//	%q        quoted canonical form
//
// A width pads on the left with spaces, with zeros under the 0 flag, on the right under the - flag.
func (a Amount) Format(f fmt.State, verb rune) {
	var s string
	switch verb {
	case 'v', 's', 'f':
		if verb == 'v' && f.Flag('#') {
			s = fmt.Sprintf("amount.FromRepr(%d)", a.value)
			break
		}
		prec, ok := f.Precision()
		if !ok {
			prec = -1
		}
		s = a.Text(prec)
		if verb == 'v' && f.Flag('+') {
			s = withSymbol(s)
		}
	case 'd':
		s = strconv.FormatUint(a.value, 10)
	case 'q':
		s = strconv.Quote(a.String())
	default:
		fmt.Fprintf(f, "%%!%c(amount.Amount=%s)", verb, a.String())
		return
	}
	f.Write([]byte(pad(f, s)))
}

func pad(f fmt.State, s string) string {
	w, ok := f.Width()
	if !ok {
		return s
	}
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	switch {
	case f.Flag('-'):
		return s + strings.Repeat(" ", n)
	case f.Flag('0'):
		return strings.Repeat("0", n) + s
	default:
		return strings.Repeat(" ", n) + s
	}
}

func withSymbol(s string) string {
	return string(Symbol) + " " + s
}

func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
