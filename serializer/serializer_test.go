package serializer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase58RoundTrip(t *testing.T) {
	testcases := [][]byte{
		{0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0x11, 0x2A, 0x44, 0xCD, 0xFF, 0xE0, 0xAD, 0x07},
		{0xFF, 0xFE, 0xFD},
	}
	for _, c := range testcases {
		enc := Base58Encode(c)
		dec, err := Base58Decode(enc)
		assert.Nil(t, err)
		assert.Equal(t, c, dec)
	}
}

func TestBase58LeadingZeros(t *testing.T) {
	assert.Equal(t, "111111111", Base58Encode(make([]byte, 9)))
}

func TestBase58DecodeInvalidChar(t *testing.T) {
	testcases := []struct {
		input  string
		offset int
		char   rune
		index  int
	}{
		{input: "11110", offset: 0, char: '0', index: 4},
		{input: "1O11", offset: 2, char: 'O', index: 3},
		{input: "abcI", offset: 0, char: 'I', index: 3},
		{input: "ab-l", offset: 10, char: '-', index: 12},
	}

	for _, c := range testcases {
		_, err := Base58DecodeAt(c.input, c.offset)
		assert.ErrorIs(t, err, ErrInvalidBase58)
		var charErr *InvalidCharError
		if assert.True(t, errors.As(err, &charErr)) {
			assert.Equal(t, c.char, charErr.Char)
			assert.Equal(t, c.index, charErr.Index)
		}
	}
}

func TestBase58DecodeEmpty(t *testing.T) {
	_, err := Base58Decode("")
	assert.ErrorIs(t, err, ErrInvalidBase58)
}
