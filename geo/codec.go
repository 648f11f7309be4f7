package geo

import (
	"encoding/binary"
	"math/big"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	coordScale = decimal.New(1, 5) // 5 fractional digits
	rateScale  = decimal.New(1, 1) // 1 fractional digit
)

// encodeCoord packs a coordinate into sign byte + 4-byte big-endian
// magnitude of round(abs·1e5).
func encodeCoord(dst []byte, value decimal.Decimal, field string) error {
	scaled := value.Mul(coordScale).Round(0)
	mag := scaled.Abs().BigInt()
	if mag.BitLen() > 32 {
		return &EncodingError{Field: field, Reason: "magnitude exceeds 32 bits"}
	}
	if scaled.Sign() < 0 {
		dst[0] = 0x01
	} else {
		dst[0] = 0x00
	}
	binary.BigEndian.PutUint32(dst[1:], uint32(mag.Uint64()))
	return nil
}

func decodeCoord(src []byte) decimal.Decimal {
	mag := int64(binary.BigEndian.Uint32(src[1:]))
	if src[0] == 0x01 {
		mag = -mag
	}
	return decimal.New(mag, -5)
}

// encodeRate packs round(rate·10) as 2-byte big-endian.
func encodeRate(dst []byte, value decimal.Decimal, field string) error {
	scaled := value.Mul(rateScale).Round(0).IntPart()
	if scaled < 0 || scaled > 0xFFFF {
		return &EncodingError{Field: field, Reason: "scaled rate outside uint16 range"}
	}
	binary.BigEndian.PutUint16(dst, uint16(scaled))
	return nil
}

func decodeRate(src []byte) decimal.Decimal {
	return decimal.New(int64(binary.BigEndian.Uint16(src)), -1)
}

// encodeText writes one byte per character, zero padded to width. Input
// longer than width is silently truncated: the contracts only ever read
// the declared width, so overlong input is a caller convenience, not an
// error.
func encodeText(dst []byte, s string, width int) {
	i := 0
	for _, r := range s {
		if i >= width {
			break
		}
		dst[i] = byte(r)
		i++
	}
	for ; i < width; i++ {
		dst[i] = 0x00
	}
}

// decodeText reads up to the first zero byte and returns the text, or ""
// when the content is not valid text. Decoding never fails hard: garbage
// on chain means "no value", the same sentinel as an empty field.
func decodeText(src []byte) string {
	end := len(src)
	for i, b := range src {
		if b == 0x00 {
			end = i
			break
		}
	}
	out := src[:end]
	if !utf8.Valid(out) {
		return ""
	}
	return string(out)
}

func checkByteRange(v int, field string) error {
	if v < 0 || v > 0xFF {
		return &EncodingError{Field: field, Reason: "outside 1-byte range"}
	}
	return nil
}

// EncodeTeller packs a teller record into its 52-byte wire form, type tag
// first. Field order and widths must match the contract's parser exactly.
func EncodeTeller(rec TellerRecord) ([]byte, error) {
	if err := checkByteRange(rec.AvatarID, "avatarId"); err != nil {
		return nil, err
	}
	if err := checkByteRange(rec.CurrencyID, "currencyId"); err != nil {
		return nil, err
	}
	out := make([]byte, TellerRecordSize)
	out[0] = TellerTag
	pos := 1
	if err := encodeCoord(out[pos:], rec.Lat, "lat"); err != nil {
		return nil, err
	}
	pos += CoordWidth
	if err := encodeCoord(out[pos:], rec.Lng, "lng"); err != nil {
		return nil, err
	}
	pos += CoordWidth
	encodeText(out[pos:], rec.CountryID, CountryWidth)
	pos += CountryWidth
	encodeText(out[pos:], rec.PostalCode, PostalWidth)
	pos += PostalWidth
	out[pos] = byte(rec.AvatarID)
	pos++
	out[pos] = byte(rec.CurrencyID)
	pos++
	encodeText(out[pos:], rec.Messenger, MessengerWidth)
	pos += MessengerWidth
	if err := encodeRate(out[pos:], rec.SellRate, "sellRate"); err != nil {
		return nil, err
	}
	pos += 2
	if rec.Buyer {
		out[pos] = 0x01
	}
	pos++
	if err := encodeRate(out[pos:], rec.BuyRate, "buyRate"); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseTeller is the exact inverse of EncodeTeller. It is used to verify
// call data and to round-trip records in tests; reading a listing back
// from the contract goes through DecodeTeller instead.
func ParseTeller(data []byte) (*TellerRecord, error) {
	if len(data) != TellerRecordSize {
		return nil, &EncodingError{Field: "teller", Reason: "wrong record size"}
	}
	if data[0] != TellerTag {
		return nil, &EncodingError{Field: "teller", Reason: "wrong type tag"}
	}
	rec := &TellerRecord{}
	pos := 1
	rec.Lat = decodeCoord(data[pos:])
	pos += CoordWidth
	rec.Lng = decodeCoord(data[pos:])
	pos += CoordWidth
	rec.CountryID = decodeText(data[pos : pos+CountryWidth])
	pos += CountryWidth
	rec.PostalCode = decodeText(data[pos : pos+PostalWidth])
	pos += PostalWidth
	rec.AvatarID = int(data[pos])
	pos++
	rec.CurrencyID = int(data[pos])
	pos++
	rec.Messenger = decodeText(data[pos : pos+MessengerWidth])
	pos += MessengerWidth
	rec.SellRate = decodeRate(data[pos:])
	pos += 2
	rec.Buyer = data[pos] == 0x01
	pos++
	rec.BuyRate = decodeRate(data[pos:])
	return rec, nil
}

// EncodeShop packs a shop record into its 109-byte wire form.
func EncodeShop(rec ShopRecord) ([]byte, error) {
	out := make([]byte, ShopRecordSize)
	out[0] = ShopTag
	pos := 1
	if err := encodeCoord(out[pos:], rec.Lat, "lat"); err != nil {
		return nil, err
	}
	pos += CoordWidth
	if err := encodeCoord(out[pos:], rec.Lng, "lng"); err != nil {
		return nil, err
	}
	pos += CoordWidth
	encodeText(out[pos:], rec.CountryID, CountryWidth)
	pos += CountryWidth
	encodeText(out[pos:], rec.PostalCode, PostalWidth)
	pos += PostalWidth
	encodeText(out[pos:], rec.Category, CategoryWidth)
	pos += CategoryWidth
	encodeText(out[pos:], rec.Name, NameWidth)
	pos += NameWidth
	encodeText(out[pos:], rec.Description, DescriptionWidth)
	pos += DescriptionWidth
	encodeText(out[pos:], rec.Opening, OpeningWidth)
	return out, nil
}

// ParseShop is the exact inverse of EncodeShop.
func ParseShop(data []byte) (*ShopRecord, error) {
	if len(data) != ShopRecordSize {
		return nil, &EncodingError{Field: "shop", Reason: "wrong record size"}
	}
	if data[0] != ShopTag {
		return nil, &EncodingError{Field: "shop", Reason: "wrong type tag"}
	}
	rec := &ShopRecord{}
	pos := 1
	rec.Lat = decodeCoord(data[pos:])
	pos += CoordWidth
	rec.Lng = decodeCoord(data[pos:])
	pos += CoordWidth
	rec.CountryID = decodeText(data[pos : pos+CountryWidth])
	pos += CountryWidth
	rec.PostalCode = decodeText(data[pos : pos+PostalWidth])
	pos += PostalWidth
	rec.Category = decodeText(data[pos : pos+CategoryWidth])
	pos += CategoryWidth
	rec.Name = decodeText(data[pos : pos+NameWidth])
	pos += NameWidth
	rec.Description = decodeText(data[pos : pos+DescriptionWidth])
	pos += DescriptionWidth
	rec.Opening = decodeText(data[pos : pos+OpeningWidth])
	return rec, nil
}

// TellerTuple is the getTeller return tuple as the contract hands it out.
type TellerTuple struct {
	Lat           *big.Int
	Lng           *big.Int
	CountryID     []byte
	PostalCode    []byte
	CurrencyID    int
	Messenger     []byte
	AvatarID      int
	SellRate      int64
	EscrowBalance *big.Int
	Online        bool
	Buyer         bool
	BuyRate       int64
}

// DecodeTeller turns a remote tuple into a display record. A tuple whose
// country decodes empty means the listing does not exist; that is the
// contract's null object, reported here as a nil record, not an error.
func DecodeTeller(t TellerTuple) *TellerRecord {
	country := decodeText(t.CountryID)
	if country == "" {
		return nil
	}
	rec := &TellerRecord{
		Lat:        decimal.NewFromBigInt(t.Lat, -5),
		Lng:        decimal.NewFromBigInt(t.Lng, -5),
		CountryID:  country,
		PostalCode: decodeText(t.PostalCode),
		AvatarID:   t.AvatarID,
		CurrencyID: t.CurrencyID,
		Messenger:  decodeText(t.Messenger),
		SellRate:   decimal.New(t.SellRate, -1),
		Buyer:      t.Buyer,
		BuyRate:    decimal.New(t.BuyRate, -1),
		Online:     t.Online,
	}
	if t.EscrowBalance != nil {
		rec.EscrowBalance = decimal.NewFromBigInt(t.EscrowBalance, -18)
	}
	return rec
}

// ShopTuple is the getShop return tuple.
type ShopTuple struct {
	Lat         *big.Int
	Lng         *big.Int
	CountryID   []byte
	PostalCode  []byte
	Category    []byte
	Name        []byte
	Description []byte
	Opening     []byte
}

// DecodeShop turns a remote tuple into a display record; nil when the
// category field decodes empty (the shop does not exist).
func DecodeShop(t ShopTuple) *ShopRecord {
	category := decodeText(t.Category)
	if category == "" {
		return nil
	}
	return &ShopRecord{
		Lat:         decimal.NewFromBigInt(t.Lat, -5),
		Lng:         decimal.NewFromBigInt(t.Lng, -5),
		CountryID:   decodeText(t.CountryID),
		PostalCode:  decodeText(t.PostalCode),
		Category:    category,
		Name:        decodeText(t.Name),
		Description: decodeText(t.Description),
		Opening:     decodeText(t.Opening),
	}
}

// DecodeReputation converts the getReput tuple (wei volumes, trade count)
// into ether-denominated decimals.
func DecodeReputation(buyVolume, sellVolume, tradeCount *big.Int) ReputationSummary {
	return ReputationSummary{
		BuyVolume:  decimal.NewFromBigInt(buyVolume, -18),
		SellVolume: decimal.NewFromBigInt(sellVolume, -18),
		TradeCount: tradeCount.Uint64(),
	}
}

// ProfileUpdateArgs are the updateTeller call arguments in ABI-ready
// form.
type ProfileUpdateArgs struct {
	CurrencyID int8
	Messenger  [16]byte
	AvatarID   int8
	SellRate   int16
	Online     bool
}

// EncodeProfileUpdate prepares a partial profile update for the
// updateTeller contract call. The same width and scaling rules as
// EncodeTeller apply.
func EncodeProfileUpdate(currencyID, avatarID int, messenger string, sellRate decimal.Decimal) (ProfileUpdateArgs, error) {
	if err := checkByteRange(currencyID, "currencyId"); err != nil {
		return ProfileUpdateArgs{}, err
	}
	if err := checkByteRange(avatarID, "avatarId"); err != nil {
		return ProfileUpdateArgs{}, err
	}
	var rate [2]byte
	if err := encodeRate(rate[:], sellRate, "sellRate"); err != nil {
		return ProfileUpdateArgs{}, err
	}
	args := ProfileUpdateArgs{
		CurrencyID: int8(currencyID),
		AvatarID:   int8(avatarID),
		SellRate:   int16(uint16(rate[0])<<8 | uint16(rate[1])),
		Online:     true,
	}
	encodeText(args.Messenger[:], messenger, MessengerWidth)
	return args, nil
}
