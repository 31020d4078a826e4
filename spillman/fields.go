package spillman

import (
	"github.com/cevaris/ordered_map"
)

// Transform rewrites one raw field value into its warehouse form.
type Transform func(string) string

// FieldSpec maps one remote field onto one warehouse column.
// Required marks the entity's key fields: a raw record without them is not a
// real record and is skipped. Default is applied verbatim (no transform) when
// the source field is absent and the field is not required.
type FieldSpec struct {
	Source    string
	Column    string
	Required  bool
	Default   string
	Transform Transform
}

// Record is one raw result record from the remote system: field name to
// string value, absent fields omitted.
type Record map[string]string

// ExtractFields applies an entity's field table to one raw record.
// It returns the ordered column map for loading, or skip=true when a
// required field is absent. Individual field failures never propagate; every
// field is defaulted independently.
func ExtractFields(raw Record, specs []FieldSpec) (row *ordered_map.OrderedMap, skip bool) {
	row = ordered_map.NewOrderedMap()
	for _, fs := range specs {
		v, ok := raw[fs.Source]
		if !ok || v == "" { // absent fields are omitted by the remote; empty means no payload either.
			if fs.Required {
				return nil, true
			}
			row.Set(fs.Column, fs.Default)
			continue
		}
		if fs.Transform != nil {
			v = fs.Transform(v)
		}
		row.Set(fs.Column, v)
	}
	return row, false
}

// RowValue fetches a column from an ordered row map, returning "" when absent.
func RowValue(row *ordered_map.OrderedMap, column string) string {
	if v, ok := row.Get(column); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
