package spillman

import (
	"github.com/cevaris/ordered_map"
	"github.com/sccity/dispatch-etl/constants"
)

const sentinel = constants.SentinelTimestamp

// incidentEntity builds one of the three incident extracts. Law, fire and
// EMS incidents share one field shape and one warehouse table; the type
// column tells them apart.
func incidentEntity(name, table, incidentType string) Entity {
	return Entity{
		Name:        name,
		Table:       table,
		FilterField: "dispdat",
		TargetTable: "incident",
		Windows:     DayWindow,
		Fields: []FieldSpec{
			{Source: "callid", Column: "callid", Required: true},
			{Source: "number", Column: "incident_id", Required: true},
			{Source: "nature", Column: "nature"},
			{Source: "address", Column: "address", Transform: Sanitize},
			{Source: "city", Column: "city"},
			{Source: "state", Column: "state"},
			{Source: "zip", Column: "zip"},
			{Source: "locatn", Column: "location"},
			{Source: "agency", Column: "agency"},
			{Source: "respoff", Column: "responsible_officer"},
			{Source: "geoaddr", Column: "geo_addr"},
			{Source: "nameid", Column: "name_id"},
			{Source: "rcvby", Column: "received_by"},
			{Source: "ocurdt1", Column: "occurred_dt1", Transform: DecodeDate, Default: sentinel},
			{Source: "ocurdt2", Column: "occurred_dt2", Transform: DecodeDate, Default: sentinel},
			{Source: "dtrepor", Column: "reported_dt", Transform: DecodeDate, Default: sentinel},
			{Source: "dispdat", Column: "dispatch_dt", Transform: DecodeDateOnly, Default: sentinel},
			{Source: "contact", Column: "contact", Transform: Sanitize},
			{Source: "condtkn", Column: "condition"},
			{Source: "dispos", Column: "disposition"},
		},
		Derive: func(raw Record, row *ordered_map.OrderedMap) {
			row.Set("type", incidentType)
		},
	}
}

// LawEntity is the law incident extract.
func LawEntity() Entity {
	return incidentEntity("Law Incidents", "lwmain", "Law")
}

// FireEntity is the fire incident extract.
func FireEntity() Entity {
	return incidentEntity("Fire Incidents", "frmain", "Fire")
}

// EmsEntity is the EMS incident extract.
func EmsEntity() Entity {
	return incidentEntity("EMS Incidents", "emmain", "EMS")
}
