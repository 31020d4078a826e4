package warehouse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Agency names become schema and predicate text in DDL, so they are
// restricted to plain identifiers.
var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// sharedViews maps view name to its source table for the views every agency
// gets regardless of type. Predicated views filter on the agency column.
var agencyViews = []struct {
	name       string
	source     string
	predicated bool
}{
	{"DM_INC_RLOG_3Y", "spillman_dm.DM_INC_RLOG_3Y", true},
	{"DM_INC_RLOG_1Y", "spillman_dm.DM_INC_RLOG_1Y", true},
	{"DM_INC_RLOG_6M", "spillman_dm.DM_INC_RLOG_6M", true},
	{"DM_INC_RLOG_3M", "spillman_dm.DM_INC_RLOG_3M", true},
	{"DM_INC_RLOG_1M", "spillman_dm.DM_INC_RLOG_1M", true},
	{"incidents", "dispatch.incident", true},
	{"users", "dispatch.apnames", true},
	{"avl", "dispatch.avl", true},
	{"units", "dispatch.cdunit", true},
	{"system_units", "dispatch.syunit", true},
	{"radiolog", "dispatch.radiolog", true},
}

// CreateAgency provisions a per-agency reporting schema: the schema is
// dropped and recreated, then filled with views scoped to the agency. Law
// agencies additionally get a citations view.
func (w *Warehouse) CreateAgency(agency, agencyType string) error {
	agency = strings.ToLower(agency)
	agencyType = strings.ToLower(agencyType)
	if !identPattern.MatchString(agency) {
		return errors.Errorf("invalid agency name %q", agency)
	}
	if agencyType != "law" && agencyType != "fire" && agencyType != "ems" {
		return errors.Errorf("invalid agency type %q", agencyType)
	}
	w.Log.Info("Setting up agency ", agency, " with type ", agencyType)

	stmts := []string{
		fmt.Sprintf("DROP SCHEMA IF EXISTS %v", agency),
		fmt.Sprintf("CREATE SCHEMA %v DEFAULT CHARACTER SET utf8mb4 DEFAULT COLLATE utf8mb4_general_ci", agency),
		fmt.Sprintf("CREATE VIEW %v.agency AS SELECT * FROM dispatch.apagncy WHERE abbr = '%v'", agency, agency),
		fmt.Sprintf("CREATE VIEW %v.city AS SELECT * FROM dispatch.apcity", agency),
		fmt.Sprintf("CREATE VIEW %v.cad AS SELECT i.agency, c.* FROM dispatch.cad_calls c"+
			" LEFT JOIN dispatch.incident i ON c.callid = i.callid WHERE i.agency = '%v'", agency, agency),
		fmt.Sprintf("CREATE VIEW %v.geobase AS SELECT * FROM dispatch.geobase", agency),
	}
	for _, v := range agencyViews {
		name := strings.ToLower(v.name)
		if v.predicated {
			stmts = append(stmts, fmt.Sprintf(
				"CREATE VIEW %v.%v AS SELECT * FROM %v WHERE agency = '%v'", agency, name, v.source, agency))
		} else {
			stmts = append(stmts, fmt.Sprintf(
				"CREATE VIEW %v.%v AS SELECT * FROM %v", agency, name, v.source))
		}
	}
	if agencyType == "law" {
		stmts = append(stmts, fmt.Sprintf(
			"CREATE VIEW %v.citations AS SELECT * FROM dispatch.citations WHERE agency = '%v'", agency, agency))
	}

	for _, stmt := range stmts {
		if res, err := w.execWithRetry(stmt, nil); res == ResultFatal {
			return errors.Wrapf(err, "provisioning agency %v", agency)
		}
	}
	return nil
}
