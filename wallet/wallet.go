package wallet

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"os"

	"github.com/fractalglobal/utils/walletaddress"
)

const (
	privateBlockType = "PRIVATE KEY"
	publicBlockType  = "PUBLIC KEY"
	publicExtension  = ".pub"
)

// Wallet holds public and private key of the wallet owner.
type Wallet struct {
	Private ed25519.PrivateKey
	Public  ed25519.PublicKey
}

// New tries to create a new Wallet or returns error otherwise.
func New() (Wallet, error) {
	public, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Wallet{}, err
	}
	return Wallet{Private: private, Public: public}, nil
}

// Address derives the wallet address from the public key.
func (w Wallet) Address() (walletaddress.WalletAddress, error) {
	return walletaddress.Derive(w.Public)
}

// SaveToPem saves wallet private and public key to the PEM format file.
// Saved files are like in the example:
// - PRIVATE: "your/path/name"
// - PUBLIC: "your/path/name.pub"
func (w Wallet) SaveToPem(filepath string) error {
	prv, err := x509.MarshalPKCS8PrivateKey(w.Private)
	if err != nil {
		return err
	}
	pub, err := x509.MarshalPKIXPublicKey(w.Public)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath, pem.EncodeToMemory(&pem.Block{Type: privateBlockType, Bytes: prv}), 0600); err != nil {
		return err
	}
	return os.WriteFile(filepath+publicExtension, pem.EncodeToMemory(&pem.Block{Type: publicBlockType, Bytes: pub}), 0644)
}

// ReadFromPem creates Wallet from PEM format files.
// Provide the path to a file without specifying the extension: "your/path/name".
func ReadFromPem(filepath string) (Wallet, error) {
	rawPub, err := os.ReadFile(filepath + publicExtension)
	if err != nil {
		return Wallet{}, err
	}
	rawPrv, err := os.ReadFile(filepath)
	if err != nil {
		return Wallet{}, err
	}

	blockPub, _ := pem.Decode(rawPub)
	if blockPub == nil || blockPub.Type != publicBlockType {
		return Wallet{}, errors.New("cannot decode public key from PEM format")
	}
	pub, err := x509.ParsePKIXPublicKey(blockPub.Bytes)
	if err != nil {
		return Wallet{}, err
	}
	blockPrv, _ := pem.Decode(rawPrv)
	if blockPrv == nil || blockPrv.Type != privateBlockType {
		return Wallet{}, errors.New("cannot decode private key from PEM format")
	}
	prv, err := x509.ParsePKCS8PrivateKey(blockPrv.Bytes)
	if err != nil {
		return Wallet{}, err
	}

	var w Wallet
	var ok bool
	w.Public, ok = pub.(ed25519.PublicKey)
	if !ok {
		return Wallet{}, errors.New("cannot cast x509 decoded parsed key to ed25519 public key")
	}
	w.Private, ok = prv.(ed25519.PrivateKey)
	if !ok {
		return Wallet{}, errors.New("cannot cast x509 decoded parsed key to ed25519 private key")
	}
	if !w.Public.Equal(w.Private.Public()) {
		return Wallet{}, errors.New("public key does not belong to the private key")
	}
	return w, nil
}
