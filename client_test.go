package dether

import (
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dethertech/dether-go/addrbook"
	"github.com/dethertech/dether-go/config"
	"github.com/dethertech/dether-go/gateway"
)

func TestNewClient(t *testing.T) {
	client, err := NewClient(config.Config{Network: "mainnet"})
	require.NoError(t, err)
	assert.Equal(t, "mainnet", client.Network().GetName())
	assert.NotNil(t, client.Listings())
	assert.NotNil(t, client.Swaps())
}

func TestNewClientPicksDefaultNodeDeterministically(t *testing.T) {
	for i := 0; i < 10; i++ {
		client, err := NewClient(config.Config{Network: "mainnet"})
		require.NoError(t, err)
		node, ok := client.gw.(*gateway.Node)
		require.True(t, ok)
		assert.Equal(t, "mainnet-cloudflare", node.NodeName(), "first default node in name order")
	}
}

func TestNewClientUnknownNetwork(t *testing.T) {
	_, err := NewClient(config.Config{Network: "nosuchchain"})
	assert.Error(t, err)
}

func TestNewClientNetworkWithoutDeployment(t *testing.T) {
	// the marketplace contracts are not deployed on kovan; constructing
	// a client there must fail up front, not at first call
	_, err := NewClient(config.Config{Network: "kovan"})
	var unknown *addrbook.UnknownAddressError
	assert.ErrorAs(t, err, &unknown)
}

func TestNewClientAddressOverrides(t *testing.T) {
	core := ethcommon.HexToAddress("0x00000000000000000000000000000000000000c0")
	token := ethcommon.HexToAddress("0x00000000000000000000000000000000000000dd")
	client, err := NewClient(config.Config{
		Network:      "rinkeby", // no marketplace deployment without the overrides
		CoreAddress:  &core,
		TokenAddress: &token,
	})
	require.NoError(t, err)
	assert.Equal(t, token, client.token)
}
