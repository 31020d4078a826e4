package spillman

import (
	"github.com/cevaris/ordered_map"
)

// RlogEntity is the radio log extract. The source table has no natural key;
// a synthetic one is derived from the log date plus unit, agency and tencode.
// Records without a log date, position or sequence are not real log entries
// and are skipped.
func RlogEntity() Entity {
	return Entity{
		Name:        "Radio Logs",
		Table:       "rlmain",
		FilterField: "logdate",
		TargetTable: "radiolog",
		Windows:     DayTimeWindow,
		Fields: []FieldSpec{
			{Source: "callid", Column: "callid"},
			{Source: "dpatchr", Column: "dispatcher", Transform: Sanitize},
			{Source: "logdate", Column: "logdate", Required: true, Transform: DecodeDate},
			{Source: "xpos", Column: "gps_x", Required: true, Transform: SpliceX},
			{Source: "ypos", Column: "gps_y", Required: true, Transform: SpliceY},
			{Source: "unit", Column: "unit"},
			{Source: "zone", Column: "zone"},
			{Source: "agency", Column: "agency"},
			{Source: "tencode", Column: "tencode"},
			{Source: "desc", Column: "description", Transform: Sanitize},
			{Source: "seq", Column: "sequence", Required: true},
			{Source: "calltyp", Column: "calltype"},
		},
		Derive: func(raw Record, row *ordered_map.OrderedMap) {
			row.Set("rlog_key", DecodeDateKey(raw["logdate"])+raw["unit"]+raw["agency"]+raw["tencode"])
		},
	}
}
