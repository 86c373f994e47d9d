package serializer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// Alphabet is the bitcoin base-58 alphabet used by every encoded value.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var ErrInvalidBase58 = errors.New("invalid base-58 string")

// InvalidCharError reports the first character that does not belong to the Alphabet.
// Index is the byte offset in the decoded string shifted by the offset passed to Base58DecodeAt.
type InvalidCharError struct {
	Char  rune
	Index int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid base-58 character %q at index %d", e.Char, e.Index)
}

func (e *InvalidCharError) Unwrap() error {
	return ErrInvalidBase58
}

// Base58Encode encodes byte slice to base58 string.
func Base58Encode(input []byte) string {
	return base58.Encode(input)
}

// Base58Decode decodes base58 string to byte slice.
func Base58Decode(input string) ([]byte, error) {
	return Base58DecodeAt(input, 0)
}

// Base58DecodeAt decodes input that starts at byte offset in a larger string,
// so that reported character positions point into the larger string.
func Base58DecodeAt(input string, offset int) ([]byte, error) {
	if input == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidBase58)
	}
	if i := strings.IndexFunc(input, func(r rune) bool { return !strings.ContainsRune(Alphabet, r) }); i >= 0 {
		return nil, &InvalidCharError{Char: []rune(input[i:])[0], Index: i + offset}
	}
	decoded, err := base58.Decode(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBase58, err)
	}
	return decoded, nil
}
