package account

import (
	"crypto/ecdsa"
	"os"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func AddressFromPrivateKey(key *ecdsa.PrivateKey) string {
	return crypto.PubkeyToAddress(key.PublicKey).Hex()
}

func PrivateKeyFromKeystore(file string, password string) (string, *ecdsa.PrivateKey, error) {
	json, err := os.ReadFile(file)
	if err != nil {
		return "", nil, err
	}
	return PrivateKeyFromKeystoreJSON(json, password)
}

func PrivateKeyFromKeystoreJSON(keyjson []byte, password string) (string, *ecdsa.PrivateKey, error) {
	key, err := keystore.DecryptKey(keyjson, password)
	if err != nil {
		return "", nil, err
	}
	pubhex := AddressFromPrivateKey(key.PrivateKey)
	return pubhex, key.PrivateKey, nil
}

// works with both 0x prefix form and naked form
func PrivateKeyFromHex(hex string) (string, *ecdsa.PrivateKey, error) {
	if len(hex) > 2 && hex[0:2] == "0x" {
		hex = hex[2:]
	}
	privkey, err := crypto.HexToECDSA(hex)
	if err != nil {
		return "", nil, err
	}
	return AddressFromPrivateKey(privkey), privkey, nil
}

// PrivateKeyToHex is the inverse of PrivateKeyFromHex, with 0x prefix.
// Split-phase swap callers use it to hand the session key back and forth.
func PrivateKeyToHex(key *ecdsa.PrivateKey) string {
	return "0x" + common.Bytes2Hex(crypto.FromECDSA(key))
}
