package spillman

// AvlEntity is the automatic-vehicle-location extract. Positions stream in
// continuously, so the day is queried in quarter-day windows; the table is
// append-only with no natural key.
func AvlEntity() Entity {
	return Entity{
		Name:        "AVL Logs",
		Table:       "rlavllog",
		FilterField: "logdate",
		TargetTable: "avl",
		Windows:     QuarterDayWindows,
		Fields: []FieldSpec{
			{Source: "callid", Column: "callid"},
			{Source: "agency", Column: "agency"},
			{Source: "assgnmt", Column: "unit"},
			{Source: "stcode", Column: "unit_status"},
			{Source: "xlng", Column: "gps_x", Transform: DecodeCoordinate, Default: "0"},
			{Source: "ylat", Column: "gps_y", Transform: DecodeCoordinate, Default: "0"},
			{Source: "heading", Column: "heading", Default: "0"},
			{Source: "speed", Column: "speed", Default: "0"},
			{Source: "logdate", Column: "logdate", Transform: DecodeDate, Default: sentinel},
		},
	}
}
