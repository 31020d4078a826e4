package spillman

import (
	"testing"
)

func TestExtractFieldsAppliesDefaults(t *testing.T) {
	specs := []FieldSpec{
		{Source: "id", Column: "id", Required: true},
		{Source: "when", Column: "when", Transform: DecodeDate, Default: "1900-01-01 00:00:00"},
		{Source: "note", Column: "note"},
	}
	row, skip := ExtractFields(Record{"id": "42"}, specs)
	if skip {
		t.Fatal("record with its key present must not be skipped")
	}
	if RowValue(row, "when") != "1900-01-01 00:00:00" {
		t.Fatalf("expected sentinel default, got %q", RowValue(row, "when"))
	}
	if RowValue(row, "note") != "" {
		t.Fatalf("expected empty default, got %q", RowValue(row, "note"))
	}
}

func TestExtractFieldsSkipsOnMissingRequired(t *testing.T) {
	specs := []FieldSpec{
		{Source: "id", Column: "id", Required: true},
		{Source: "note", Column: "note"},
	}
	if _, skip := ExtractFields(Record{"note": "hello"}, specs); !skip {
		t.Fatal("record without its key must be skipped")
	}
	if _, skip := ExtractFields(Record{"id": ""}, specs); !skip {
		t.Fatal("an empty key value is as good as absent")
	}
}

func TestExtractFieldsTransformsPresentValuesOnly(t *testing.T) {
	specs := []FieldSpec{
		{Source: "x", Column: "x", Transform: SpliceX, Default: "0"},
	}
	row, _ := ExtractFields(Record{"x": "11234"}, specs)
	if RowValue(row, "x") != "112.34" {
		t.Fatalf("expected transform applied, got %q", RowValue(row, "x"))
	}
	// the default bypasses the transform.
	row, _ = ExtractFields(Record{}, specs)
	if RowValue(row, "x") != "0" {
		t.Fatalf("expected verbatim default, got %q", RowValue(row, "x"))
	}
}

func TestExtractFieldsPreservesColumnOrder(t *testing.T) {
	specs := []FieldSpec{
		{Source: "c", Column: "c"},
		{Source: "a", Column: "a"},
		{Source: "b", Column: "b"},
	}
	row, _ := ExtractFields(Record{"a": "1", "b": "2", "c": "3"}, specs)
	var cols []string
	iter := row.IterFunc()
	for kv, ok := iter(); ok; kv, ok = iter() {
		cols = append(cols, kv.Key.(string))
	}
	if len(cols) != 3 || cols[0] != "c" || cols[1] != "a" || cols[2] != "b" {
		t.Fatalf("expected spec order c,a,b, got %v", cols)
	}
}
