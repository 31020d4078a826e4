package warehouse

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/cevaris/ordered_map"
	"github.com/pkg/errors"
)

const geobaseTable = "geobase"
const geobaseKeyColumn = "geobase_id"

// ReconcileGeobase inserts a geobase row, and on a duplicate key converges
// the existing warehouse row toward the freshly extracted value: the current
// row is re-read from the read-only replica and one independent UPDATE is
// issued per differing column. A failed column update is logged and does not
// block the remaining columns, so partial convergence is possible; the next
// full extract picks up whatever was left behind.
func (w *Warehouse) ReconcileGeobase(row *ordered_map.OrderedMap) (Result, error) {
	sqlText, args := insertSQL(geobaseTable, row)
	res, err := w.execWithRetry(sqlText, args)
	if res != ResultDuplicate {
		return res, err
	}

	keyVal, ok := row.Get(geobaseKeyColumn)
	if !ok {
		return ResultFatal, errors.New("geobase row is missing its key column")
	}
	id := keyVal.(string)
	w.Log.Debug("Reconciling geobase row ", id)

	cols := rowColumns(row)
	current, err := w.readGeobaseRow(id, cols)
	if err != nil {
		w.Log.Error("Error reading geobase row ", id, " for reconciliation: ", err)
		return ResultFatal, err
	}

	iter := row.IterFunc()
	for kv, ok := iter(); ok; kv, ok = iter() {
		col := kv.Key.(string)
		if col == geobaseKeyColumn {
			continue
		}
		newVal := kv.Value.(string)
		if valuesEqual(current[col], newVal) {
			continue
		}
		update := "UPDATE " + quoteIdent(geobaseTable) + " SET " + quoteIdent(col) +
			" = ? WHERE " + quoteIdent(geobaseKeyColumn) + " = ?"
		if err := w.execOnce(update, []interface{}{newVal, id}); err != nil {
			w.Log.Error("Error updating geobase ", col, " for ", id, ": ", err)
			continue // remaining columns still get their chance.
		}
		w.Log.Debug("Updated geobase ", col, " for ", id)
	}
	return ResultReconciled, nil
}

// readGeobaseRow fetches the current warehouse values for one geobase id
// from the read-only replica.
func (w *Warehouse) readGeobaseRow(id string, cols []string) (map[string]string, error) {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quoteIdent(c)
	}
	query := "SELECT " + strings.Join(quoted, ", ") + " FROM " + quoteIdent(geobaseTable) +
		" WHERE " + quoteIdent(geobaseKeyColumn) + " = ?"

	conn, err := w.OpenReadFn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	scanned := make([]sql.NullString, len(cols))
	dest := make([]interface{}, len(cols))
	for i := range scanned {
		dest[i] = &scanned[i]
	}
	if err := conn.QueryRow(query, []interface{}{id}, dest); err != nil {
		return nil, err
	}
	current := make(map[string]string, len(cols))
	for i, c := range cols {
		current[c] = scanned[i].String
	}
	return current, nil
}

// valuesEqual compares a stored value with a freshly extracted one.
// Numeric columns (coordinates) may come back with different precision, so
// numeric equality counts as equal.
func valuesEqual(a, b string) bool {
	if a == b {
		return true
	}
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	return errA == nil && errB == nil && fa == fb
}
