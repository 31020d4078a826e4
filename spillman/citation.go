package spillman

import (
	"github.com/cevaris/ordered_map"
)

// CitationEntity is the citation extract. The court date mirrors the
// citation date (the source has no separate court date field), and a missing
// violation date falls back to the citation date rather than the sentinel.
func CitationEntity() Entity {
	return Entity{
		Name:        "Citations",
		Table:       "MasterCitationTable",
		FilterField: "DateOfCitation",
		TargetTable: "citation",
		Windows:     DayWindow,
		Fields: []FieldSpec{
			{Source: "CitationNumber", Column: "citation_id", Required: true},
			{Source: "NameNumber", Column: "name_id"},
			{Source: "DateOfCitation", Column: "citation_dt", Transform: DecodeDate, Default: sentinel},
			{Source: "DateOfCitation", Column: "court_dt", Transform: DecodeDate, Default: sentinel},
			{Source: "AgencyCode", Column: "agency"},
			{Source: "ViolationDate", Column: "violation_dt", Transform: DecodeDate},
			{Source: "BondAmount", Column: "bond_amt"},
			{Source: "Actual", Column: "actual_amt"},
			{Source: "Posted", Column: "posted_amt"},
			{Source: "Safe", Column: "safe_amt"},
			{Source: "IssuingOfficer", Column: "issuing_officer"},
			{Source: "CourtCode", Column: "court_cd"},
			{Source: "AreaLocationCode", Column: "zone"},
			{Source: "StreetAddress", Column: "address", Transform: Sanitize},
			{Source: "City", Column: "city"},
			{Source: "StateAbbreviation", Column: "state"},
			{Source: "ZIPCode", Column: "zip"},
			{Source: "VehicleNumber", Column: "vehicle_id"},
			{Source: "CitationType", Column: "citation_type_cd"},
			{Source: "GeobaseAddressID", Column: "geo_addr"},
			{Source: "LawIncident", Column: "incident_id"},
		},
		Derive: func(raw Record, row *ordered_map.OrderedMap) {
			if RowValue(row, "violation_dt") == "" {
				row.Set("violation_dt", RowValue(row, "citation_dt"))
			}
		},
	}
}
