package spillman

// SylogEntity is the system access log extract. The miscellaneous data field
// carries arbitrary terminal payloads and is reduced to ASCII text.
func SylogEntity() Entity {
	return Entity{
		Name:        "System Logs",
		Table:       "SystemLogTable",
		FilterField: "TimeOfAccess",
		TargetTable: "sylog",
		Windows:     DayTimeWindow,
		Fields: []FieldSpec{
			{Source: "UserID", Column: "user_id", Required: true},
			{Source: "TableBeingAccessed", Column: "table"},
			{Source: "ModeUsed", Column: "mode"},
			{Source: "TimeOfAccess", Column: "date", Transform: DecodeDate, Default: sentinel},
			{Source: "MiscellaneousData", Column: "data", Transform: AsciiOnly},
		},
	}
}
