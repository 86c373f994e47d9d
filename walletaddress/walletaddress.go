package walletaddress

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/fractalglobal/utils/serializer"
)

const (
	// Len is the length in bytes of the raw wallet address, version byte included.
	// A raw address has no checksum, so it shall never be used as an input or output format,
	// only as an internal or storage representation.
	Len = 7
	// Prefix starts every textual wallet address.
	Prefix = "fr"

	version        = byte(0x00)
	checksumLength = 2
	encodedLength  = Len + checksumLength
)

var (
	ErrInvalidFormat  = errors.New("invalid wallet address format")
	ErrInvalidVersion = fmt.Errorf("%w: first byte is not 0x00", ErrInvalidFormat)
)

// ParseError describes why a textual wallet address was rejected.
type ParseError struct {
	Input  string
	Reason string
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("the wallet address %q is not a valid Fractal Global wallet address, %s", e.Input, e.Reason)
}

// Unwrap exposes ErrInvalidFormat and the decoding cause, if any.
func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrInvalidFormat}
	}
	return []error{ErrInvalidFormat, e.Cause}
}

// WalletAddress is a Fractal Global wallet address.
//
// The textual form is Prefix followed by the base-58 encoding of the seven raw bytes
// and a two byte checksum. The zero value is a valid address, "fr111111111".
type WalletAddress struct {
	address [Len]byte
}

// FromData creates a wallet address from raw bytes.
// The data carries no checksum, so it shall come from a trusted source.
func FromData(data [Len]byte) (WalletAddress, error) {
	if data[0] != version {
		return WalletAddress{}, ErrInvalidVersion
	}
	return WalletAddress{address: data}, nil
}

// MustFromData is like FromData but panics when data is not a valid address.
func MustFromData(data [Len]byte) WalletAddress {
	a, err := FromData(data)
	if err != nil {
		panic(err)
	}
	return a
}

// FromBytes creates a wallet address from a raw byte slice of length Len.
func FromBytes(raw []byte) (WalletAddress, error) {
	if len(raw) != Len {
		return WalletAddress{}, fmt.Errorf("%w: raw address has %d bytes, expected %d", ErrInvalidFormat, len(raw), Len)
	}
	var data [Len]byte
	copy(data[:], raw)
	return FromData(data)
}

// Parse parses the textual wallet address, verifying prefix, version and checksum.
func Parse(s string) (WalletAddress, error) {
	if len(s) <= len(Prefix) {
		return WalletAddress{}, &ParseError{Input: s, Reason: "the address is too short"}
	}
	if !strings.HasPrefix(s, Prefix) {
		return WalletAddress{}, &ParseError{Input: s, Reason: fmt.Sprintf("the address does not start with %q", Prefix)}
	}

	raw, err := serializer.Base58DecodeAt(s[len(Prefix):], len(Prefix))
	if err != nil {
		return WalletAddress{}, &ParseError{
			Input:  s,
			Reason: fmt.Sprintf("the address is not a valid base-58 encoded string: %s", err),
			Cause:  err,
		}
	}
	if len(raw) != encodedLength {
		return WalletAddress{}, &ParseError{
			Input:  s,
			Reason: fmt.Sprintf("the address encodes %d bytes, expected %d", len(raw), encodedLength),
		}
	}
	if raw[0] != version {
		return WalletAddress{}, &ParseError{Input: s, Reason: "the first byte of the address is not 0x00"}
	}

	var a WalletAddress
	copy(a.address[:], raw[:Len])
	if !bytes.Equal(raw[Len:], a.checksum()) {
		return WalletAddress{}, &ParseError{Input: s, Reason: "checksum fail"}
	}
	return a, nil
}

// MustParse is like Parse but panics when s is not a valid address.
func MustParse(s string) WalletAddress {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Derive derives the wallet address from the ed25519 public key.
// The six identifying bytes are the head of the BLAKE2b-256 digest of the key.
func Derive(pub ed25519.PublicKey) (WalletAddress, error) {
	if len(pub) != ed25519.PublicKeySize {
		return WalletAddress{}, fmt.Errorf("public key has %d bytes, expected %d", len(pub), ed25519.PublicKeySize)
	}
	digest := blake2b.Sum256(pub)
	var a WalletAddress
	a.address[0] = version
	copy(a.address[1:], digest[:Len-1])
	return a, nil
}

// Random creates a well formed wallet address from bytes read from r.
func Random(r io.Reader) (WalletAddress, error) {
	var a WalletAddress
	if _, err := io.ReadFull(r, a.address[1:]); err != nil {
		return WalletAddress{}, err
	}
	return a, nil
}

// Raw returns a copy of the raw address bytes, without checksum.
// It is meant for storage where space or fast search matters.
func (a WalletAddress) Raw() []byte {
	raw := make([]byte, Len)
	copy(raw, a.address[:])
	return raw
}

// Data returns the raw address as an array.
func (a WalletAddress) Data() [Len]byte {
	return a.address
}

// String returns the canonical textual wallet address.
func (a WalletAddress) String() string {
	full := make([]byte, 0, encodedLength)
	full = append(full, a.address[:]...)
	full = append(full, a.checksum()...)
	return Prefix + serializer.Base58Encode(full)
}

// Compare returns -1, 0 or +1 comparing raw address bytes.
func (a WalletAddress) Compare(b WalletAddress) int {
	return bytes.Compare(a.address[:], b.address[:])
}

// Less reports whether a sorts before b.
func (a WalletAddress) Less(b WalletAddress) bool {
	return a.Compare(b) < 0
}

// IsZero reports whether a is the all zero address.
func (a WalletAddress) IsZero() bool {
	return a == WalletAddress{}
}

func (a WalletAddress) checksum() []byte {
	return checksum(a.address[:])
}

func checksum(payload []byte) []byte {
	cs := make([]byte, checksumLength)
	for _, b := range payload {
		cs[0] ^= b
		cs[1] ^= cs[0]
	}
	return cs
}
