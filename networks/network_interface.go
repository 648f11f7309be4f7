package networks

import (
	"time"
)

// Network describes one chain the marketplace contracts are deployed on.
// Implementations are stateless value objects; everything a client needs
// to pick nodes and sign EIP-155 transactions comes from here.
type Network interface {
	GetName() string
	GetChainID() int64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetNativeTokenDecimal() int64
	GetBlockTime() time.Duration

	GetNodeVariableName() string
	GetDefaultNodes() map[string]string
}
