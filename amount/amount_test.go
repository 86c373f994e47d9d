package amount

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testcases := []struct {
		input string
		repr  uint64
		text  string
	}{
		{input: "175.646", repr: 175_646, text: "175.646"},
		{input: "175.64", repr: 175_640, text: "175.64"},
		{input: "175.6", repr: 175_600, text: "175.6"},
		{input: "175.000", repr: 175_000, text: "175"},
		{input: "175.00", repr: 175_000, text: "175"},
		{input: "175.0", repr: 175_000, text: "175"},
		{input: "175", repr: 175_000, text: "175"},
		{input: "0", repr: 0, text: "0"},
		{input: "0.00012", repr: 0, text: "0"},
		{input: "175.6469", repr: 175_647, text: "175.647"},
		{input: "175.6465", repr: 175_647, text: "175.647"},
		{input: "175.6464", repr: 175_646, text: "175.646"},
		{input: ".6465", repr: 647, text: "0.647"},
		{input: "0.9995", repr: 1_000, text: "1"},
		{input: "007.5", repr: 7_500, text: "7.5"},
		{input: "1.00000000000000000000000001", repr: 1_000, text: "1"},
		{input: "18446744073709551.615", repr: math.MaxUint64, text: "18446744073709551.615"},
	}

	for _, c := range testcases {
		t.Run(c.input, func(t *testing.T) {
			a, err := Parse(c.input)
			require.Nil(t, err)
			assert.Equal(t, FromRepr(c.repr), a)
			assert.Equal(t, c.text, a.String())
		})
	}
}

func TestParseInvalidFormat(t *testing.T) {
	testcases := []string{
		"",
		".",
		"175.",
		"175.837.9239",
		".098320.2930",
		"-1",
		"+1",
		" 1",
		"1 ",
		"1,5",
		"1e3",
		"abc",
		"1.2a",
		"1..2",
	}

	for _, c := range testcases {
		t.Run(fmt.Sprintf("%q", c), func(t *testing.T) {
			_, err := Parse(c)
			assert.ErrorIs(t, err, ErrInvalidFormat)
			var parseErr *ParseError
			if assert.True(t, errors.As(err, &parseErr)) {
				assert.Equal(t, c, parseErr.Input)
			}
		})
	}
}

func TestParseOutOfRange(t *testing.T) {
	testcases := []string{
		"18446744073709552",
		"18446744073709551.616",
		"18446744073709551.6155",
		"99999999999999999999999",
		"18446744073709552.0",
	}

	for _, c := range testcases {
		t.Run(c, func(t *testing.T) {
			_, err := Parse(c)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, FromRepr(1_500), MustParse("1.5"))
	assert.Panics(t, func() { MustParse("1.") })
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, FromRepr(0), Min())
	assert.Equal(t, FromRepr(math.MaxUint64), Max())
	assert.Equal(t, Min(), Zero())
	assert.Equal(t, fmt.Sprintf("%d.%d", uint64(math.MaxUint64)/1_000, uint64(math.MaxUint64)%1_000), Max().String())
	assert.Equal(t, "0", Min().String())

	parsed, err := Parse(Max().String())
	assert.Nil(t, err)
	assert.Equal(t, Max(), parsed)
}

func TestNew(t *testing.T) {
	a, err := New(10, 5)
	assert.Nil(t, err)
	assert.Equal(t, FromRepr(10_005), a)
	assert.Equal(t, uint64(10), a.Units())
	assert.Equal(t, uint64(5), a.Fraction())

	_, err = New(math.MaxUint64/Scale+1, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = New(math.MaxUint64/Scale, 999)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestRoundTripRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a := FromRepr(rnd.Uint64())
		parsed, err := Parse(a.String())
		require.Nil(t, err, a.String())
		assert.Equal(t, a, parsed)
	}
}

func TestOrdering(t *testing.T) {
	small, big := FromRepr(1), FromRepr(2)
	assert.Equal(t, -1, small.Cmp(big))
	assert.Equal(t, 1, big.Cmp(small))
	assert.Equal(t, 0, small.Cmp(FromRepr(1)))
	assert.True(t, small.Less(big))
	assert.False(t, big.Less(small))
	assert.False(t, small.Less(small))
	assert.True(t, Zero().IsZero())
	assert.False(t, small.IsZero())
}

func TestDecimal(t *testing.T) {
	testcases := []struct {
		repr uint64
		text string
	}{
		{repr: 0, text: "0"},
		{repr: 1_654, text: "1.654"},
		{repr: 70_000, text: "70"},
		{repr: math.MaxUint64, text: "18446744073709551.615"},
	}
	for _, c := range testcases {
		d := FromRepr(c.repr).Decimal()
		assert.Equal(t, c.text, d.String())

		back, err := FromDecimal(d)
		assert.Nil(t, err)
		assert.Equal(t, FromRepr(c.repr), back)
	}
}

func TestFromDecimal(t *testing.T) {
	a, err := FromDecimal(decimal.RequireFromString("175.6465"))
	assert.Nil(t, err)
	assert.Equal(t, FromRepr(175_647), a)

	a, err = FromDecimal(decimal.RequireFromString("175.6464"))
	assert.Nil(t, err)
	assert.Equal(t, FromRepr(175_646), a)

	_, err = FromDecimal(decimal.RequireFromString("-0.001"))
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = FromDecimal(decimal.RequireFromString("18446744073709551.616"))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFloat64(t *testing.T) {
	assert.InDelta(t, 1.654, FromRepr(1_654).Float64(), 1e-9)
	assert.Equal(t, 0.0, Zero().Float64())
}
