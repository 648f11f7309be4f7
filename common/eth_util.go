package common

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

func GetERC223ABI() *abi.ABI {
	result, _ := abi.JSON(strings.NewReader(erc223abi))
	return &result
}

func GetDetherCoreABI() *abi.ABI {
	result, _ := abi.JSON(strings.NewReader(dethercoreabi))
	return &result
}

func GetKyberProxyABI() *abi.ABI {
	result, _ := abi.JSON(strings.NewReader(kyberproxyabi))
	return &result
}

func PackDetherCoreData(function string, params ...interface{}) ([]byte, error) {
	return GetDetherCoreABI().Pack(function, params...)
}

func PackKyberProxyData(function string, params ...interface{}) ([]byte, error) {
	return GetKyberProxyABI().Pack(function, params...)
}

func HexToAddress(hex string) common.Address {
	return common.HexToAddress(hex)
}

// IsAddress reports whether s looks like a 20 byte hex address, with or
// without the 0x prefix.
func IsAddress(s string) bool {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != 40 {
		return false
	}
	for _, c := range s {
		if !(('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')) {
			return false
		}
	}
	return true
}
