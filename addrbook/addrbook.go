// Package addrbook maps symbolic roles — token tickers and exchange
// contract names — to on-chain addresses, per network.
//
// Production code uses [Default], a static table of the marketplace's and
// exchange venues' known deployments. Tests inject [Map], a plain map that
// resolves deterministically.
//
// Many roles are deliberately absent on sparsely-deployed test networks;
// such misses are reported as *UnknownAddressError, a valid and expected
// state the caller must be able to tell apart from a transport error.
package addrbook

import (
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Role is a symbolic name resolvable to a contract address: an ERC20/223
// ticker or an exchange venue contract name.
type Role string

// Token roles.
const (
	DTH  Role = "DTH"
	DAI  Role = "DAI"
	ETH  Role = "ETH" // resolves to the wrapped ether deployment
	BNB  Role = "BNB"
	MKR  Role = "MKR"
	OMG  Role = "OMG"
	ZRX  Role = "ZRX"
	REP  Role = "REP"
	BAT  Role = "BAT"
	LINK Role = "LINK"
	TUSD Role = "TUSD"
	SNT  Role = "SNT"
	KNC  Role = "KNC"
	MANA Role = "MANA"
	BNT  Role = "BNT"
	ELF  Role = "ELF"
	POLY Role = "POLY"
	PAY  Role = "PAY"
	IOST Role = "IOST"
	VEN  Role = "VEN"
	AE   Role = "AE"
)

// Venue contract roles.
const (
	KyberNetworkProxy Role = "KyberNetworkProxy"
	AirswapExchange   Role = "AirswapExchange"
	MakerOtc          Role = "MakerOtc"
)

// Marketplace contract roles.
const (
	DetherCore Role = "DetherCore"
)

// Book resolves a (network, role) pair to a contract address.
type Book interface {
	Resolve(network string, role Role) (ethcommon.Address, error)
}

// UnknownAddressError means the book has no deployment for this role on
// this network. Expected for most roles on test networks.
type UnknownAddressError struct {
	Network string
	Role    Role
}

func (e *UnknownAddressError) Error() string {
	return fmt.Sprintf("no address for %s on %s", e.Role, e.Network)
}

var zeroAddress = ethcommon.Address{}

// Static is a Book backed by an in-memory table keyed by network name.
// A zero-address entry counts as absent: the upstream tables use
// 0x0000…0000 as a "not deployed here" placeholder.
type Static map[string]map[Role]ethcommon.Address

func (s Static) Resolve(network string, role Role) (ethcommon.Address, error) {
	roles, ok := s[network]
	if !ok {
		return zeroAddress, &UnknownAddressError{Network: network, Role: role}
	}
	addr, ok := roles[role]
	if !ok || addr == zeroAddress {
		return zeroAddress, &UnknownAddressError{Network: network, Role: role}
	}
	return addr, nil
}

// Override returns a copy of s with the given entries replaced, leaving
// the receiver untouched. Used when a client is constructed with custom
// contract addresses.
func (s Static) Override(network string, entries map[Role]ethcommon.Address) Static {
	result := Static{}
	for net, roles := range s {
		cp := map[Role]ethcommon.Address{}
		for r, a := range roles {
			cp[r] = a
		}
		result[net] = cp
	}
	if _, ok := result[network]; !ok {
		result[network] = map[Role]ethcommon.Address{}
	}
	for r, a := range entries {
		result[network][r] = a
	}
	return result
}
