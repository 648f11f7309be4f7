package networks

import (
	"time"
)

var Rinkeby Network = rinkeby{}

type rinkeby struct{}

func (self rinkeby) GetName() string {
	return "rinkeby"
}

func (self rinkeby) GetChainID() int64 {
	return 4
}

func (self rinkeby) GetAlternativeNames() []string {
	return []string{}
}

func (self rinkeby) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self rinkeby) GetNativeTokenDecimal() int64 {
	return 18
}

func (self rinkeby) GetBlockTime() time.Duration {
	return 15 * time.Second
}

func (self rinkeby) GetNodeVariableName() string {
	return "RINKEBY_NODE"
}

func (self rinkeby) GetDefaultNodes() map[string]string {
	return map[string]string{
		"rinkeby-infura": "https://rinkeby.infura.io/v3/247128ae36b6444d944d4c3793c8e3f5",
	}
}
