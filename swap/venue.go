package swap

// VenueParams are the gas economics of one venue's swap ladder. The
// unit figures size how much ether the session wallet is fronted and
// how much it must hold back for its own refund transaction; the limit
// figures cap each transaction. They are protocol constants measured
// against the deployed venue contracts, overridable per client for
// forks and test deployments.
type VenueParams struct {
	// FundingGasUnits times the session gas price is the ether the
	// seller fronts the session wallet. It must cover the trade and the
	// refund.
	FundingGasUnits uint64
	// FundingGasLimit caps the funding transfer itself.
	FundingGasLimit uint64
	// ReleaseGasLimit caps the escrow release call.
	ReleaseGasLimit uint64
	// TradeGasLimit caps the venue trade call.
	TradeGasLimit uint64
	// RefundReserveUnits times the gas price is held back from the
	// session wallet's balance so the refund transaction can pay for
	// itself.
	RefundReserveUnits uint64
	// RefundGasLimit caps the refund transfer.
	RefundGasLimit uint64
	// RefundNonce is the session wallet nonce the refund is pinned to.
	// The wallet is born at nonce 0, spends it on the trade, so the
	// refund is always its second and last transaction.
	RefundNonce uint64
}

// DefaultVenueParams returns the measured parameters of the known
// venues.
func DefaultVenueParams() map[Venue]VenueParams {
	return map[Venue]VenueParams{
		VenueKyber: {
			FundingGasUnits:    380000,
			FundingGasLimit:    25000,
			ReleaseGasLimit:    300000,
			TradeGasLimit:      350000,
			RefundReserveUnits: 22100,
			RefundGasLimit:     22000,
			RefundNonce:        1,
		},
	}
}
