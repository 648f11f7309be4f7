// Package geo implements the fixed-width binary records the marketplace
// contracts store for geolocated listings.
//
// The wire format is a bespoke packed layout fixed by the deployed
// contracts. Teller records are 52 bytes:
//
//	tag(1)=0x32 lat(5) lng(5) country(2) postal(16) avatar(1)
//	currency(1) messenger(16) sellRate(2) buyer(1) buyRate(2)
//
// and shop records 109 bytes:
//
//	tag(1)=0x31 lat(5) lng(5) country(2) postal(16) category(16)
//	name(16) description(32) opening(16)
//
// Coordinates are a sign byte (0x00 positive, 0x01 negative) followed by
// the 4-byte big-endian magnitude of round(abs(value)·1e5). The format
// predates a signed-integer convention; the sign byte scheme must be kept
// byte-for-byte for wire compatibility. Rates are round(value·10) as
// 2-byte big-endian. Text fields are one byte per character, zero padded,
// silently truncated past their width.
package geo

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Record type tags.
const (
	ShopTag   byte = 0x31
	TellerTag byte = 0x32
)

// Field widths in bytes.
const (
	CoordWidth       = 5
	CountryWidth     = 2
	PostalWidth      = 16
	MessengerWidth   = 16
	CategoryWidth    = 16
	NameWidth        = 16
	DescriptionWidth = 32
	OpeningWidth     = 16

	TellerRecordSize = 1 + 2*CoordWidth + CountryWidth + PostalWidth + 1 + 1 + MessengerWidth + 2 + 1 + 2
	ShopRecordSize   = 1 + 2*CoordWidth + CountryWidth + PostalWidth + CategoryWidth + NameWidth + DescriptionWidth + OpeningWidth
)

// EncodingError means a record cannot fit the fixed-width wire format.
// The caller must fix its input; there is nothing to retry.
type EncodingError struct {
	Field  string
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode %s: %s", e.Field, e.Reason)
}

// TellerRecord is a geolocated sell point. Lat/Lng carry 5 fractional
// digits, rates 1. EscrowBalance and Online are contract-side state; they
// are populated when decoding a remote tuple and ignored by EncodeTeller.
type TellerRecord struct {
	Lat        decimal.Decimal
	Lng        decimal.Decimal
	CountryID  string
	PostalCode string
	AvatarID   int
	CurrencyID int
	Messenger  string
	SellRate   decimal.Decimal
	Buyer      bool
	BuyRate    decimal.Decimal

	EscrowBalance decimal.Decimal
	Online        bool
}

// ShopRecord is a geolocated storefront listing.
type ShopRecord struct {
	Lat         decimal.Decimal
	Lng         decimal.Decimal
	CountryID   string
	PostalCode  string
	Category    string
	Name        string
	Description string
	Opening     string
}

// ReputationSummary is the trade history the contract tracks per teller.
type ReputationSummary struct {
	BuyVolume  decimal.Decimal
	SellVolume decimal.Decimal
	TradeCount uint64
}
