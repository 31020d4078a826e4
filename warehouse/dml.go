package warehouse

import (
	"strings"

	"github.com/cevaris/ordered_map"
)

// quoteIdent backtick-quotes an identifier. Several warehouse columns
// (`table`, `date`, `condition`, `zone`) are reserved words.
func quoteIdent(s string) string {
	return "`" + s + "`"
}

// insertSQL generates a parameterized INSERT from an ordered column map.
// Column order follows the entity's field spec declaration order.
func insertSQL(table string, row *ordered_map.OrderedMap) (string, []interface{}) {
	cols := make([]string, 0, row.Len())
	binds := make([]string, 0, row.Len())
	args := make([]interface{}, 0, row.Len())
	iter := row.IterFunc()
	for kv, ok := iter(); ok; kv, ok = iter() {
		cols = append(cols, quoteIdent(kv.Key.(string)))
		binds = append(binds, "?")
		args = append(args, kv.Value)
	}
	sqlText := "INSERT INTO " + quoteIdent(table) +
		" (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(binds, ", ") + ")"
	return sqlText, args
}

// rowColumns returns the column names of an ordered row map in declaration order.
func rowColumns(row *ordered_map.OrderedMap) []string {
	cols := make([]string, 0, row.Len())
	iter := row.IterFunc()
	for kv, ok := iter(); ok; kv, ok = iter() {
		cols = append(cols, kv.Key.(string))
	}
	return cols
}
