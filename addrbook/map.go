package addrbook

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Map is a lightweight Book for tests: role → address on every network,
// no per-network tables, no placeholder filtering.
//
// Example:
//
//	b := addrbook.Map{
//	    addrbook.DTH:               "0x5adc961d6ac3f7062d2ea45fefb8d8167d44b190",
//	    addrbook.KyberNetworkProxy: "0x818e6fecd516ecc3849daf6845e3ec868087b755",
//	}
type Map map[Role]string

func (m Map) Resolve(network string, role Role) (ethcommon.Address, error) {
	hex, ok := m[role]
	if !ok {
		return ethcommon.Address{}, &UnknownAddressError{Network: network, Role: role}
	}
	return ethcommon.HexToAddress(hex), nil
}
