package networks

import (
	"time"
)

var Kovan Network = kovan{}

type kovan struct{}

func (self kovan) GetName() string {
	return "kovan"
}

func (self kovan) GetChainID() int64 {
	return 42
}

func (self kovan) GetAlternativeNames() []string {
	return []string{}
}

func (self kovan) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self kovan) GetNativeTokenDecimal() int64 {
	return 18
}

func (self kovan) GetBlockTime() time.Duration {
	return 4 * time.Second
}

func (self kovan) GetNodeVariableName() string {
	return "KOVAN_NODE"
}

func (self kovan) GetDefaultNodes() map[string]string {
	return map[string]string{
		"kovan-infura": "https://kovan.infura.io/v3/247128ae36b6444d944d4c3793c8e3f5",
	}
}
