package spillman

// GeobaseEntity is the full-table geocode extract. It is not date-driven:
// the id space is swept in fixed buckets (see IDWindows) and each row is
// reconciled against the warehouse rather than insert-or-skip, because the
// remote system is the source of truth for address data.
func GeobaseEntity() Entity {
	return Entity{
		Name:        "GeoBase Addresses",
		Table:       "GeobaseAddressIDMaintenance",
		FilterField: "IDNumberOfAddress",
		TargetTable: "geobase",
		Reconcile:   true,
		Fields: []FieldSpec{
			{Source: "IDNumberOfAddress", Column: "geobase_id", Required: true},
			{Source: "HouseNumber", Column: "house_number"},
			{Source: "StreetAddress", Column: "street_address", Transform: Sanitize},
			{Source: "CityCode", Column: "city_cd"},
			{Source: "ZIP", Column: "zipcode"},
			{Source: "ZoneLa", Column: "zone_law"},
			{Source: "ZoneFa", Column: "zone_fire"},
			{Source: "ZoneEa", Column: "zone_ems"},
			{Source: "YCoordinate", Column: "latitude", Transform: DecodeCoordinate, Default: "0"},
			{Source: "XCoordinate", Column: "longitude", Transform: DecodeCoordinate, Default: "0"},
		},
	}
}
