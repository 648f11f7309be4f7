package listing

import (
	"context"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/dethertech/dether-go/common"
	"github.com/dethertech/dether-go/geo"
)

type tellerOut struct {
	Lat        *big.Int
	Lng        *big.Int
	CountryId  [2]byte
	PostalCode [16]byte
	CurrencyId int8
	Messenger  [16]byte
	AvatarId   int8
	Rates      int16
	Balance    *big.Int
	Online     bool
	Buyer      bool
	BuyRates   int16
}

type shopOut struct {
	Lat         *big.Int
	Lng         *big.Int
	CountryId   [2]byte
	PostalCode  [16]byte
	Cat         [16]byte
	Name        [16]byte
	Description [32]byte
	Opening     [16]byte
}

// GetTeller reads and decodes a teller listing together with its
// reputation. A nil result without error means no listing exists at
// that address.
func (s *Service) GetTeller(ctx context.Context, addr ethcommon.Address) (*Teller, error) {
	var out tellerOut
	if err := s.call(ctx, "getTeller", &out, addr); err != nil {
		return nil, err
	}
	rec := geo.DecodeTeller(geo.TellerTuple{
		Lat:           out.Lat,
		Lng:           out.Lng,
		CountryID:     out.CountryId[:],
		PostalCode:    out.PostalCode[:],
		CurrencyID:    int(out.CurrencyId),
		Messenger:     out.Messenger[:],
		AvatarID:      int(out.AvatarId),
		SellRate:      int64(out.Rates),
		EscrowBalance: out.Balance,
		Online:        out.Online,
		Buyer:         out.Buyer,
		BuyRate:       int64(out.BuyRates),
	})
	if rec == nil {
		return nil, nil
	}
	reput, err := s.Reputation(ctx, addr)
	if err != nil {
		return nil, err
	}
	return &Teller{Address: addr, Record: *rec, Reputation: reput}, nil
}

// GetShop reads and decodes a shop listing; nil without error when no
// shop exists at that address.
func (s *Service) GetShop(ctx context.Context, addr ethcommon.Address) (*Shop, error) {
	var out shopOut
	if err := s.call(ctx, "getShop", &out, addr); err != nil {
		return nil, err
	}
	rec := geo.DecodeShop(geo.ShopTuple{
		Lat:         out.Lat,
		Lng:         out.Lng,
		CountryID:   out.CountryId[:],
		PostalCode:  out.PostalCode[:],
		Category:    out.Cat[:],
		Name:        out.Name[:],
		Description: out.Description[:],
		Opening:     out.Opening[:],
	})
	if rec == nil {
		return nil, nil
	}
	return &Shop{Address: addr, Record: *rec}, nil
}

// Reputation reads a teller's accumulated trade history.
func (s *Service) Reputation(ctx context.Context, addr ethcommon.Address) (geo.ReputationSummary, error) {
	var out struct {
		BuyVolume  *big.Int
		SellVolume *big.Int
		NbTrade    *big.Int
	}
	if err := s.call(ctx, "getReput", &out, addr); err != nil {
		return geo.ReputationSummary{}, err
	}
	return geo.DecodeReputation(out.BuyVolume, out.SellVolume, out.NbTrade), nil
}

// GetAllTellers fetches and decodes every teller, or only the given
// addresses when some are passed. The result is deduplicated by address
// keeping first occurrence; missing listings are dropped.
func (s *Service) GetAllTellers(ctx context.Context, addrs ...ethcommon.Address) ([]*Teller, error) {
	if len(addrs) == 0 {
		var out []ethcommon.Address
		if err := s.call(ctx, "getAllTellers", &out); err != nil {
			return nil, err
		}
		addrs = out
	}
	result := []*Teller{}
	seen := map[ethcommon.Address]bool{}
	for _, addr := range addrs {
		if seen[addr] {
			continue
		}
		seen[addr] = true
		teller, err := s.GetTeller(ctx, addr)
		if err != nil {
			return nil, err
		}
		if teller != nil {
			result = append(result, teller)
		}
	}
	return result, nil
}

// GetAllShops is the shop counterpart of GetAllTellers.
func (s *Service) GetAllShops(ctx context.Context, addrs ...ethcommon.Address) ([]*Shop, error) {
	if len(addrs) == 0 {
		var out []ethcommon.Address
		if err := s.call(ctx, "getAllShops", &out); err != nil {
			return nil, err
		}
		addrs = out
	}
	result := []*Shop{}
	seen := map[ethcommon.Address]bool{}
	for _, addr := range addrs {
		if seen[addr] {
			continue
		}
		seen[addr] = true
		shop, err := s.GetShop(ctx, addr)
		if err != nil {
			return nil, err
		}
		if shop != nil {
			result = append(result, shop)
		}
	}
	return result, nil
}

// GetZoneTellers returns the addresses listed under a geographic zone.
// The zone key encoding must match the one used at publish time exactly,
// otherwise the contract simply finds nothing.
func (s *Service) GetZoneTellers(ctx context.Context, countryID, postalCode string) ([]ethcommon.Address, error) {
	key := geo.EncodeZoneKey(countryID, postalCode)
	var out []ethcommon.Address
	if err := s.call(ctx, "getZoneTeller", &out, key.Country, key.Postal); err != nil {
		return nil, err
	}
	return out, nil
}

// GetZoneShops is the shop counterpart of GetZoneTellers.
func (s *Service) GetZoneShops(ctx context.Context, countryID, postalCode string) ([]ethcommon.Address, error) {
	key := geo.EncodeZoneKey(countryID, postalCode)
	var out []ethcommon.Address
	if err := s.call(ctx, "getZoneShop", &out, key.Country, key.Postal); err != nil {
		return nil, err
	}
	return out, nil
}

// TellerBalance reads a teller's escrow balance in ether.
func (s *Service) TellerBalance(ctx context.Context, addr ethcommon.Address) (decimal.Decimal, error) {
	var out *big.Int
	if err := s.call(ctx, "getTellerBalance", &out, addr); err != nil {
		return decimal.Zero, err
	}
	return common.WeiToEth(out), nil
}

// LicenceTeller reads the licence fee for teller listings in a country,
// in ether.
func (s *Service) LicenceTeller(ctx context.Context, countryID string) (decimal.Decimal, error) {
	key := geo.EncodeZoneKey(countryID, "")
	var out *big.Int
	if err := s.call(ctx, "licenceTeller", &out, key.Country); err != nil {
		return decimal.Zero, err
	}
	return common.WeiToEth(out), nil
}

// LicenceShop reads the licence fee for shop listings in a country.
func (s *Service) LicenceShop(ctx context.Context, countryID string) (decimal.Decimal, error) {
	key := geo.EncodeZoneKey(countryID, "")
	var out *big.Int
	if err := s.call(ctx, "licenceShop", &out, key.Country); err != nil {
		return decimal.Zero, err
	}
	return common.WeiToEth(out), nil
}

// IsZoneTellerOpen reports whether a country accepts teller listings.
func (s *Service) IsZoneTellerOpen(ctx context.Context, countryID string) (bool, error) {
	key := geo.EncodeZoneKey(countryID, "")
	var out bool
	if err := s.call(ctx, "openedCountryTeller", &out, key.Country); err != nil {
		return false, err
	}
	return out, nil
}

// IsZoneShopOpen reports whether a country accepts shop listings.
func (s *Service) IsZoneShopOpen(ctx context.Context, countryID string) (bool, error) {
	key := geo.EncodeZoneKey(countryID, "")
	var out bool
	if err := s.call(ctx, "openedCountryShop", &out, key.Country); err != nil {
		return false, err
	}
	return out, nil
}
