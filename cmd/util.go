package cmd

import (
	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/dethertech/dether-go/common"
)

// parseAddressArg returns the address an argument names, or nil when it
// isn't one.
func parseAddressArg(arg string) *ethcommon.Address {
	if !common.IsAddress(arg) {
		return nil
	}
	addr := common.HexToAddress(arg)
	return &addr
}
