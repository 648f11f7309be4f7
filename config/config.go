// Package config holds the explicit construction options for a client.
// There is deliberately no package-level mutable state: one Config is
// built, handed to dether.NewClient, and never consulted again.
package config

import (
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/dethertech/dether-go/swap"
)

// DefaultGasPriceWei is used when a call does not specify a gas price.
var DefaultGasPriceWei = big.NewInt(20000000000) // 20 gwei

type Config struct {
	// Network name: mainnet, ropsten, rinkeby or kovan.
	Network string

	// Optional custom node. When empty the first of the network's
	// default nodes, in name order, is used.
	NodeName string
	NodeURL  string

	// Optional contract address overrides, e.g. for a private test
	// deployment. Nil means use the address book defaults.
	CoreAddress  *ethcommon.Address
	TokenAddress *ethcommon.Address

	// Default gas price for operations whose TxOpts leave it unset.
	GasPriceWei *big.Int

	// Per-venue protocol constants; missing venues fall back to
	// swap.DefaultVenueParams.
	VenueParams map[swap.Venue]swap.VenueParams
}

// GasPrice returns the configured default gas price, falling back to
// DefaultGasPriceWei.
func (c Config) GasPrice() *big.Int {
	if c.GasPriceWei != nil {
		return c.GasPriceWei
	}
	return DefaultGasPriceWei
}
