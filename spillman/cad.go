package spillman

// CadEntity is the computer-aided-dispatch call extract.
func CadEntity() Entity {
	return Entity{
		Name:        "CAD Calls",
		Table:       "cdmain",
		FilterField: "reptd",
		TargetTable: "cad",
		Windows:     DayWindow,
		Fields: []FieldSpec{
			{Source: "callid", Column: "callid", Required: true},
			{Source: "calltyp", Column: "call_type"},
			{Source: "nature", Column: "nature", Transform: Sanitize},
			{Source: "priorty", Column: "priority"},
			{Source: "reptd", Column: "reported", Transform: DecodeDate, Default: sentinel},
			{Source: "ocurdt1", Column: "occur_dt_1", Transform: DecodeDate, Default: sentinel},
			{Source: "ocurdt2", Column: "occur_dt_2", Transform: DecodeDate, Default: sentinel},
			{Source: "rtaddr", Column: "address", Transform: Sanitize},
			{Source: "rtcity", Column: "city_cd"},
			{Source: "nameid", Column: "complainant_id"},
			{Source: "howrc", Column: "received_type"},
			{Source: "rcvby", Column: "call_taker"},
			{Source: "emd", Column: "emd"},
		},
	}
}
