package networks

import (
	"time"
)

var Ropsten Network = ropsten{}

type ropsten struct{}

func (self ropsten) GetName() string {
	return "ropsten"
}

func (self ropsten) GetChainID() int64 {
	return 3
}

func (self ropsten) GetAlternativeNames() []string {
	return []string{}
}

func (self ropsten) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self ropsten) GetNativeTokenDecimal() int64 {
	return 18
}

func (self ropsten) GetBlockTime() time.Duration {
	return 14 * time.Second
}

func (self ropsten) GetNodeVariableName() string {
	return "ROPSTEN_NODE"
}

func (self ropsten) GetDefaultNodes() map[string]string {
	return map[string]string{
		"ropsten-infura": "https://ropsten.infura.io/v3/247128ae36b6444d944d4c3793c8e3f5",
	}
}
