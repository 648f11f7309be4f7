package common

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

var weiPerEth = decimal.New(1, 18)

func FloatToInt(amount float64) int64 {
	s := fmt.Sprintf("%.0f", amount)
	if i, err := strconv.Atoi(s); err == nil {
		return int64(i)
	} else {
		panic(err)
	}
}

// FloatToBigInt converts a float to a big int with specific decimal
// Example:
// - FloatToBigInt(1, 4) = 10000
// - FloatToBigInt(1.234, 4) = 12340
func FloatToBigInt(amount float64, decimal uint64) *big.Int {
	// 9 is our smallest precision, if amount is < 0.000000001 there will be
	// precision loss, the return value will be less than amount * 10^decimal
	if decimal < 9 {
		return big.NewInt(FloatToInt(amount * math.Pow10(int(decimal))))
	}
	result := big.NewInt(FloatToInt(amount * math.Pow10(9)))
	return result.Mul(result, big.NewInt(0).Exp(big.NewInt(10), big.NewInt(int64(decimal-9)), nil))
}

// GweiToWei converts Gwei as a float to Wei as a big int
func GweiToWei(n float64) *big.Int {
	return FloatToBigInt(n, 9)
}

// EthToWei converts an ether-denominated decimal to Wei. Fractions below
// 1 wei are dropped.
func EthToWei(amount decimal.Decimal) *big.Int {
	return amount.Mul(weiPerEth).Truncate(0).BigInt()
}

// WeiToEth converts a Wei amount to an ether-denominated decimal,
// exactly: shifting the exponent loses no precision, unlike Div which
// rounds at its division precision.
func WeiToEth(wei *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(wei, -18)
}

// MaxUint256 returns 2^256 - 1.
func MaxUint256() *big.Int {
	one := big.NewInt(1)
	return new(big.Int).Sub(new(big.Int).Lsh(one, 256), one)
}
