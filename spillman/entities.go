package spillman

// DailyEntities returns the date-driven extracts in their run order.
// Geobase is excluded: it sweeps the whole id space and runs on its own
// schedule via the geo command.
func DailyEntities() []Entity {
	return []Entity{
		CadEntity(),
		FireEntity(),
		EmsEntity(),
		LawEntity(),
		RlogEntity(),
		CitationEntity(),
		MsglogEntity(),
		AvlEntity(),
		SylogEntity(),
	}
}
