package swap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dethertech/dether-go/addrbook"
)

func TestPairSymmetry(t *testing.T) {
	for _, p := range AllowedPairs() {
		assert.True(t, Allowed(p), "%s", p)
		assert.True(t, Allowed(p.reversed()), "%s reversed", p)

		v1, _ := PairVenue(p)
		v2, _ := PairVenue(p.reversed())
		assert.Equal(t, v1, v2, "%s", p)
	}
}

func TestDisallowedPairs(t *testing.T) {
	// token to token routing is not offered
	assert.False(t, Allowed(Pair{addrbook.DAI, addrbook.OMG}))
	assert.False(t, Allowed(Pair{addrbook.KNC, addrbook.BAT}))
	// unknown role
	assert.False(t, Allowed(Pair{addrbook.ETH, addrbook.Role("NOPE")}))
	// same asset on both sides
	assert.False(t, Allowed(Pair{addrbook.ETH, addrbook.ETH}))
}

func TestEveryPairTouchesEther(t *testing.T) {
	for _, p := range AllowedPairs() {
		assert.True(t, p.Base == addrbook.ETH || p.Quote == addrbook.ETH, "%s", p)
	}
}
