// Package swap moves value between two wallets through an on-chain
// exchange venue, using a throwaway session wallet so the seller's key
// never touches the trade path.
//
// The happy path is a fixed transaction ladder: fund the session wallet
// for gas, release the escrowed amount to it, trade on the venue toward
// the buyer, refund whatever gas money is left to the seller. Each rung
// is tracked as an explicit [Phase]; any failure after the first
// broadcast surfaces as *common.InconsistentStateError carrying the
// session wallet's key, because at that point real funds may be sitting
// on an address only that key controls.
package swap

import "github.com/dethertech/dether-go/addrbook"

// Venue is an on-chain exchange a pair trades on.
type Venue string

const VenueKyber Venue = "kyber"

// Pair is a tradable asset pair. Direction does not matter for
// allow-listing: ETH/DAI and DAI/ETH are the same pair.
type Pair struct {
	Base  addrbook.Role
	Quote addrbook.Role
}

func (p Pair) String() string {
	return string(p.Base) + "-" + string(p.Quote)
}

// reversed returns the pair with base and quote swapped.
func (p Pair) reversed() Pair {
	return Pair{Base: p.Quote, Quote: p.Base}
}

// allowedPairs maps each tradable pair to its venue. Every supported
// pair has ether on one side; token-to-token routing is not offered.
var allowedPairs = map[Pair]Venue{
	{addrbook.ETH, addrbook.DAI}:  VenueKyber,
	{addrbook.ETH, addrbook.BNB}:  VenueKyber,
	{addrbook.ETH, addrbook.MKR}:  VenueKyber,
	{addrbook.ETH, addrbook.OMG}:  VenueKyber,
	{addrbook.ETH, addrbook.ZRX}:  VenueKyber,
	{addrbook.ETH, addrbook.REP}:  VenueKyber,
	{addrbook.ETH, addrbook.BAT}:  VenueKyber,
	{addrbook.ETH, addrbook.LINK}: VenueKyber,
	{addrbook.ETH, addrbook.TUSD}: VenueKyber,
	{addrbook.ETH, addrbook.SNT}:  VenueKyber,
	{addrbook.ETH, addrbook.KNC}:  VenueKyber,
	{addrbook.ETH, addrbook.MANA}: VenueKyber,
	{addrbook.ETH, addrbook.BNT}:  VenueKyber,
	{addrbook.ETH, addrbook.ELF}:  VenueKyber,
	{addrbook.ETH, addrbook.POLY}: VenueKyber,
	{addrbook.ETH, addrbook.PAY}:  VenueKyber,
	{addrbook.ETH, addrbook.IOST}: VenueKyber,
	{addrbook.ETH, addrbook.VEN}:  VenueKyber,
	{addrbook.ETH, addrbook.AE}:   VenueKyber,
	{addrbook.ETH, addrbook.DTH}:  VenueKyber,
}

// PairVenue returns the venue a pair trades on, in either direction.
func PairVenue(p Pair) (Venue, bool) {
	if v, ok := allowedPairs[p]; ok {
		return v, true
	}
	if v, ok := allowedPairs[p.reversed()]; ok {
		return v, true
	}
	return "", false
}

// Allowed reports whether the pair is tradable, in either direction.
func Allowed(p Pair) bool {
	_, ok := PairVenue(p)
	return ok
}

// AllowedPairs returns every tradable pair in its canonical direction.
func AllowedPairs() []Pair {
	out := make([]Pair, 0, len(allowedPairs))
	for p := range allowedPairs {
		out = append(out, p)
	}
	return out
}
