package geo

// ZoneKey is the country + postal code pair that indexes listings
// geographically on chain. It must be byte-identical to the country and
// postal fields of the record that was published, or zone queries
// silently come back empty.
type ZoneKey struct {
	Country [CountryWidth]byte
	Postal  [PostalWidth]byte
}

// EncodeZoneKey builds the zone lookup key with the same fixed-width text
// encoding the record codec uses. Pure: identical inputs always produce
// identical keys.
func EncodeZoneKey(countryID, postalCode string) ZoneKey {
	var k ZoneKey
	encodeText(k.Country[:], countryID, CountryWidth)
	encodeText(k.Postal[:], postalCode, PostalWidth)
	return k
}
