package account

import (
	"math/big"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func TestHexAccountAddress(t *testing.T) {
	acct, err := NewHexAccount(testKeyHex)
	require.NoError(t, err)
	assert.Equal(t,
		ethcommon.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"),
		acct.Address(),
	)

	_, err = NewHexAccount("not a key")
	assert.Error(t, err)
}

func TestSignTxRecoversSender(t *testing.T) {
	acct, err := NewHexAccount(testKeyHex)
	require.NoError(t, err)

	chainID := big.NewInt(3)
	tx := types.NewTransaction(
		0, ethcommon.HexToAddress("0x00000000000000000000000000000000000000aa"),
		big.NewInt(1), 21000, big.NewInt(20000000000), nil,
	)
	signed, err := acct.SignTx(tx, chainID)
	require.NoError(t, err)

	sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	require.NoError(t, err)
	assert.Equal(t, acct.Address(), sender)
}

func TestRandomAccountsAreDistinct(t *testing.T) {
	a, keyA, err := NewRandomAccount()
	require.NoError(t, err)
	b, keyB, err := NewRandomAccount()
	require.NoError(t, err)
	assert.NotEqual(t, a.Address(), b.Address())
	require.NotNil(t, keyA)
	require.NotNil(t, keyB)

	// the returned key controls the returned address
	assert.Equal(t, a.Address(), NewKeyAccount(keyA).Address())
}
