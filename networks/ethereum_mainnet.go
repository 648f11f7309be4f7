package networks

import (
	"time"
)

var EthereumMainnet Network = ethereumMainnet{}

type ethereumMainnet struct{}

func (self ethereumMainnet) GetName() string {
	return "mainnet"
}

func (self ethereumMainnet) GetChainID() int64 {
	return 1
}

func (self ethereumMainnet) GetAlternativeNames() []string {
	return []string{"homestead"}
}

func (self ethereumMainnet) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self ethereumMainnet) GetNativeTokenDecimal() int64 {
	return 18
}

func (self ethereumMainnet) GetBlockTime() time.Duration {
	return 14 * time.Second
}

func (self ethereumMainnet) GetNodeVariableName() string {
	return "ETHEREUM_MAINNET_NODE"
}

func (self ethereumMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"mainnet-infura":     "https://mainnet.infura.io/v3/247128ae36b6444d944d4c3793c8e3f5",
		"mainnet-cloudflare": "https://cloudflare-eth.com",
	}
}
