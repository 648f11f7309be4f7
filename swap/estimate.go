package swap

import (
	"context"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/dethertech/dether-go/addrbook"
	"github.com/dethertech/dether-go/common"
)

// Quote is a venue's current price for a pair, in both the venue's raw
// rate form and ether-denominated amounts.
type Quote struct {
	Pair           Pair
	Venue          Venue
	SrcAmount      decimal.Decimal
	ExpectedAmount decimal.Decimal
	SlippageAmount decimal.Decimal
	// ExpectedRate and SlippageRate are the venue's 18-decimal
	// fixed-point rates, kept so a follow-up trade can pin its
	// minConversionRate to the quoted price.
	ExpectedRate *big.Int
	SlippageRate *big.Int
}

// Estimate quotes srcAmount of p.Base against p.Quote. Pair and amount
// validation happens before anything touches the network: a disallowed
// pair never costs a remote call. A venue quoting rate zero has no
// liquidity for the pair, reported as a RemoteCallError of kind
// NoLiquidity rather than a zero quote.
func (o *Orchestrator) Estimate(ctx context.Context, p Pair, srcAmount decimal.Decimal) (*Quote, error) {
	if srcAmount.Sign() <= 0 {
		return nil, common.Invalidf("srcAmount", "must be a positive amount")
	}
	venue, ok := PairVenue(p)
	if !ok {
		return nil, common.Invalidf("pair", "%s is not tradable on any venue", p)
	}

	src, err := o.tokenAddress(p.Base)
	if err != nil {
		return nil, err
	}
	dest, err := o.tokenAddress(p.Quote)
	if err != nil {
		return nil, err
	}
	proxy, err := o.book.Resolve(o.net.GetName(), addrbook.KyberNetworkProxy)
	if err != nil {
		return nil, err
	}

	srcWei := common.EthToWei(srcAmount)
	var out struct {
		ExpectedRate *big.Int
		SlippageRate *big.Int
	}
	if err := o.callVenue(ctx, proxy, "getExpectedRate", &out, src, dest, srcWei); err != nil {
		return nil, err
	}
	if out.ExpectedRate == nil || out.ExpectedRate.Sign() == 0 {
		return nil, &common.RemoteCallError{Op: "getExpectedRate", Kind: common.KindNoLiquidity}
	}

	return &Quote{
		Pair:           p,
		Venue:          venue,
		SrcAmount:      srcAmount,
		ExpectedAmount: rateAmount(srcWei, out.ExpectedRate),
		SlippageAmount: rateAmount(srcWei, out.SlippageRate),
		ExpectedRate:   out.ExpectedRate,
		SlippageRate:   out.SlippageRate,
	}, nil
}

// rateAmount applies an 18-decimal fixed-point rate to a wei amount and
// returns the result in ether terms.
func rateAmount(srcWei, rate *big.Int) decimal.Decimal {
	if rate == nil {
		return decimal.Zero
	}
	destWei := new(big.Int).Mul(srcWei, rate)
	destWei.Div(destWei, weiPerUnit)
	return common.WeiToEth(destWei)
}

var weiPerUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// tokenAddress resolves a token role for venue calls. Ether is not a
// token; venues represent it with a well-known sentinel address instead
// of a deployment.
func (o *Orchestrator) tokenAddress(role addrbook.Role) (ethcommon.Address, error) {
	if role == addrbook.ETH {
		return etherSentinel, nil
	}
	return o.book.Resolve(o.net.GetName(), role)
}
