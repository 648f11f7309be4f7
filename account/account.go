package account

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Account pairs an address with whatever can sign for it. The library
// never persists key material; accounts live for the duration of a call.
type Account struct {
	signer  Signer
	address common.Address
}

func NewKeystoreAccount(file string, password string) (*Account, error) {
	_, key, err := PrivateKeyFromKeystore(file, password)
	if err != nil {
		return nil, err
	}
	return NewKeyAccount(key), nil
}

func NewKeystoreJSONAccount(keyjson []byte, password string) (*Account, error) {
	_, key, err := PrivateKeyFromKeystoreJSON(keyjson, password)
	if err != nil {
		return nil, err
	}
	return NewKeyAccount(key), nil
}

func NewHexAccount(hex string) (*Account, error) {
	_, key, err := PrivateKeyFromHex(hex)
	if err != nil {
		return nil, err
	}
	return NewKeyAccount(key), nil
}

func NewKeyAccount(key *ecdsa.PrivateKey) *Account {
	return &Account{
		NewKeySigner(key),
		crypto.PubkeyToAddress(key.PublicKey),
	}
}

// NewRandomAccount generates a fresh keypair from the system entropy
// source. Used for single-session swap wallets: the key must never be
// reused or derivable, so no seed-based derivation is offered here.
func NewRandomAccount() (*Account, *ecdsa.PrivateKey, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't generate session key: %w", err)
	}
	return NewKeyAccount(key), key, nil
}

func (self *Account) Address() common.Address {
	return self.address
}

func (self *Account) AddressHex() string {
	return self.address.Hex()
}

func (self *Account) SignTx(tx *types.Transaction, chainId *big.Int) (*types.Transaction, error) {
	signedTx, err := self.signer.SignTx(tx, chainId)
	if err != nil {
		return tx, fmt.Errorf("couldn't sign the tx: %w", err)
	}
	return signedTx, nil
}
