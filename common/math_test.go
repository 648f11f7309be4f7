package common

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEthToWei(t *testing.T) {
	assert.Equal(t, big.NewInt(1e18), EthToWei(decimal.NewFromInt(1)))
	assert.Equal(t, big.NewInt(5e17), EthToWei(decimal.RequireFromString("0.5")))
	// sub-wei fractions are dropped, not rounded up
	assert.Equal(t, big.NewInt(1), EthToWei(decimal.RequireFromString("0.0000000000000000019")))
}

func TestWeiToEthRoundTrip(t *testing.T) {
	// 18 significant fractional digits must survive exactly; the
	// conversion is an exponent shift, never a rounding division
	amount := decimal.RequireFromString("12.345678901234567891")
	weiAndBack := WeiToEth(EthToWei(amount))
	assert.True(t, amount.Equal(weiAndBack), "got %s", weiAndBack)

	wei, _ := new(big.Int).SetString("999999999999999999999999999999999999", 10)
	assert.Equal(t, wei, EthToWei(WeiToEth(wei)))
}

func TestGweiToWei(t *testing.T) {
	assert.Equal(t, big.NewInt(20000000000), GweiToWei(20))
	assert.Equal(t, big.NewInt(1500000000), GweiToWei(1.5))
}

func TestFloatToBigInt(t *testing.T) {
	assert.Equal(t, big.NewInt(12340), FloatToBigInt(1.234, 4))
	assert.Equal(t, big.NewInt(10000), FloatToBigInt(1, 4))
}

func TestIsAddress(t *testing.T) {
	assert.True(t, IsAddress("0x5adc961D6AC3f7062D2eA45FEFB8D8167d44b190"))
	assert.True(t, IsAddress("5adc961D6AC3f7062D2eA45FEFB8D8167d44b190"))
	assert.False(t, IsAddress("0x5adc961D6AC3f7062D2eA45FEFB8D8167d44b19"))
	assert.False(t, IsAddress("not an address"))
}

func TestMaxUint256(t *testing.T) {
	want, ok := new(big.Int).SetString("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", 16)
	assert.True(t, ok)
	assert.Equal(t, want, MaxUint256())
}
