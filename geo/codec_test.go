package geo

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEncodeTellerByteLayout(t *testing.T) {
	rec := TellerRecord{
		Lat:        d("48.87167"),
		Lng:        d("2.31099"),
		CountryID:  "FR",
		PostalCode: "75008",
		AvatarID:   4,
		CurrencyID: 2,
		Messenger:  "mehdi_dether",
		SellRate:   d("30"),
		Buyer:      true,
		BuyRate:    d("10"),
	}
	out, err := EncodeTeller(rec)
	require.NoError(t, err)
	require.Len(t, out, TellerRecordSize)

	expected := []byte{0x32}
	expected = append(expected, 0x00, 0x00, 0x4A, 0x92, 0x7F) // 48.87167 -> 4887167
	expected = append(expected, 0x00, 0x00, 0x03, 0x86, 0xBB) // 2.31099 -> 231099
	expected = append(expected, 'F', 'R')
	postal := make([]byte, PostalWidth)
	copy(postal, "75008")
	expected = append(expected, postal...)
	expected = append(expected, 0x04, 0x02)
	messenger := make([]byte, MessengerWidth)
	copy(messenger, "mehdi_dether")
	expected = append(expected, messenger...)
	expected = append(expected, 0x01, 0x2C) // 30.0 -> 300
	expected = append(expected, 0x01)
	expected = append(expected, 0x00, 0x64) // 10.0 -> 100
	assert.Equal(t, expected, out)
}

func TestTellerRoundTrip(t *testing.T) {
	rec := TellerRecord{
		Lat:        d("-33.86882"),
		Lng:        d("151.20929"),
		CountryID:  "AU",
		PostalCode: "2000",
		AvatarID:   7,
		CurrencyID: 3,
		Messenger:  "dether_sydney",
		SellRate:   d("12.5"),
		Buyer:      false,
		BuyRate:    d("0"),
	}
	encoded, err := EncodeTeller(rec)
	require.NoError(t, err)
	decoded, err := ParseTeller(encoded)
	require.NoError(t, err)
	assert.True(t, rec.Lat.Equal(decoded.Lat))
	assert.True(t, rec.Lng.Equal(decoded.Lng))
	assert.Equal(t, rec.CountryID, decoded.CountryID)
	assert.Equal(t, rec.PostalCode, decoded.PostalCode)
	assert.Equal(t, rec.AvatarID, decoded.AvatarID)
	assert.Equal(t, rec.CurrencyID, decoded.CurrencyID)
	assert.Equal(t, rec.Messenger, decoded.Messenger)
	assert.True(t, rec.SellRate.Equal(decoded.SellRate))
	assert.Equal(t, rec.Buyer, decoded.Buyer)
	assert.True(t, rec.BuyRate.Equal(decoded.BuyRate))
}

func TestShopRoundTrip(t *testing.T) {
	rec := ShopRecord{
		Lat:         d("48.85837"),
		Lng:         d("2.29448"),
		CountryID:   "FR",
		PostalCode:  "75007",
		Category:    "cafe",
		Name:        "Tour Eiffel Cafe",
		Description: "coffee and croissants all day",
		Opening:     "WWWWWWW",
	}
	encoded, err := EncodeShop(rec)
	require.NoError(t, err)
	require.Len(t, encoded, ShopRecordSize)
	decoded, err := ParseShop(encoded)
	require.NoError(t, err)
	assert.True(t, rec.Lat.Equal(decoded.Lat))
	assert.True(t, rec.Lng.Equal(decoded.Lng))
	assert.Equal(t, rec.Category, decoded.Category)
	assert.Equal(t, rec.Name, decoded.Name)
	assert.Equal(t, rec.Description, decoded.Description)
	assert.Equal(t, rec.Opening, decoded.Opening)
}

func TestCoordinateSignByte(t *testing.T) {
	var buf [CoordWidth]byte
	require.NoError(t, encodeCoord(buf[:], d("12.34567"), "lat"))
	assert.Equal(t, byte(0x00), buf[0])

	require.NoError(t, encodeCoord(buf[:], d("-12.34567"), "lat"))
	assert.Equal(t, byte(0x01), buf[0])
	// same magnitude either way
	var pos [CoordWidth]byte
	require.NoError(t, encodeCoord(pos[:], d("12.34567"), "lat"))
	assert.True(t, bytes.Equal(pos[1:], buf[1:]))
	assert.True(t, decodeCoord(buf[:]).Equal(d("-12.34567")))

	// negative zero collapses to plain zero on decode
	require.NoError(t, encodeCoord(buf[:], d("0"), "lat"))
	assert.True(t, decodeCoord(buf[:]).IsZero())
}

func TestCoordinateMagnitudeOverflow(t *testing.T) {
	var buf [CoordWidth]byte
	err := encodeCoord(buf[:], d("50000"), "lat")
	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "lat", encErr.Field)
}

func TestTextTruncation(t *testing.T) {
	rec := TellerRecord{
		Lat:       d("1"),
		Lng:       d("1"),
		CountryID: "FRANCE", // wider than the 2 byte field
		Messenger: "this_messenger_handle_is_way_too_long",
		SellRate:  d("1"),
		BuyRate:   d("0"),
	}
	encoded, err := EncodeTeller(rec)
	require.NoError(t, err)
	decoded, err := ParseTeller(encoded)
	require.NoError(t, err)
	assert.Equal(t, "FR", decoded.CountryID)
	assert.Equal(t, "this_messenger_h", decoded.Messenger)

	shop := ShopRecord{
		Lat:         d("1"),
		Lng:         d("1"),
		CountryID:   "FR",
		Category:    "cafe",
		Name:        "truncated",
		Description: "coffee and croissants near the tower", // 36 chars into 32
	}
	shopEncoded, err := EncodeShop(shop)
	require.NoError(t, err)
	decodedShop, err := ParseShop(shopEncoded)
	require.NoError(t, err)
	assert.Equal(t, "coffee and croissants near the t", decodedShop.Description)
}

func TestDecodeTextGarbage(t *testing.T) {
	assert.Equal(t, "", decodeText([]byte{0xFF, 0xFE, 0xFD}))
	assert.Equal(t, "ab", decodeText([]byte{'a', 'b', 0x00, 'c'}))
}

func TestParseTellerRejectsBadInput(t *testing.T) {
	_, err := ParseTeller(make([]byte, 10))
	assert.Error(t, err)

	buf := make([]byte, TellerRecordSize)
	buf[0] = ShopTag
	_, err = ParseTeller(buf)
	assert.Error(t, err)
}

func TestRateRange(t *testing.T) {
	var buf [2]byte
	assert.Error(t, encodeRate(buf[:], d("-1"), "sellRate"))
	assert.Error(t, encodeRate(buf[:], d("6553.6"), "sellRate"))
	require.NoError(t, encodeRate(buf[:], d("6553.5"), "sellRate"))
	assert.True(t, decodeRate(buf[:]).Equal(d("6553.5")))
}

func TestDecodeTellerAbsentSentinel(t *testing.T) {
	tuple := TellerTuple{
		Lat:        big.NewInt(0),
		Lng:        big.NewInt(0),
		CountryID:  []byte{0x00, 0x00},
		PostalCode: make([]byte, PostalWidth),
		Messenger:  make([]byte, MessengerWidth),
	}
	assert.Nil(t, DecodeTeller(tuple))
}

func TestDecodeTellerTuple(t *testing.T) {
	country := make([]byte, CountryWidth)
	copy(country, "DE")
	postal := make([]byte, PostalWidth)
	copy(postal, "10115")
	messenger := make([]byte, MessengerWidth)
	copy(messenger, "berlin_otc")
	rec := DecodeTeller(TellerTuple{
		Lat:           big.NewInt(5253000),
		Lng:           big.NewInt(-1338700),
		CountryID:     country,
		PostalCode:    postal,
		Messenger:     messenger,
		CurrencyID:    1,
		AvatarID:      4,
		SellRate:      125,
		BuyRate:       80,
		Buyer:         true,
		Online:        true,
		EscrowBalance: big.NewInt(2500000000000000000),
	})
	require.NotNil(t, rec)
	assert.True(t, rec.Lat.Equal(d("52.53")))
	assert.True(t, rec.Lng.Equal(d("-13.387")))
	assert.Equal(t, "DE", rec.CountryID)
	assert.True(t, rec.SellRate.Equal(d("12.5")))
	assert.True(t, rec.BuyRate.Equal(d("8")))
	assert.True(t, rec.EscrowBalance.Equal(d("2.5")))
	assert.True(t, rec.Online)
}

func TestZoneKeyDeterminism(t *testing.T) {
	k1 := EncodeZoneKey("FR", "75008")
	k2 := EncodeZoneKey("FR", "75008")
	assert.Equal(t, k1, k2)

	// matches the record encoding byte for byte
	rec := TellerRecord{Lat: d("1"), Lng: d("1"), CountryID: "FR", PostalCode: "75008", SellRate: d("1"), BuyRate: d("0")}
	encoded, err := EncodeTeller(rec)
	require.NoError(t, err)
	assert.Equal(t, k1.Country[:], encoded[11:13])
	assert.Equal(t, k1.Postal[:], encoded[13:29])

	assert.NotEqual(t, k1, EncodeZoneKey("FR", "75009"))
}
