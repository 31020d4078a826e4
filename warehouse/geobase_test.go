package warehouse

import (
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

func dupErr() error {
	return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1001' for key 'PRIMARY'"}
}

func TestReconcileGeobaseInsertsNewRow(t *testing.T) {
	db := &fakeDB{}
	w := newTestWarehouse(db)
	row := testRow("geobase_id", "1001", "street", "MAIN ST", "city", "SANTA CLARA")
	res, err := w.ReconcileGeobase(row)
	if err != nil {
		t.Fatal(err)
	}
	if res != ResultLoaded {
		t.Fatalf("expected loaded, got %v", res)
	}
	if len(db.execSQL) != 1 || !strings.HasPrefix(db.execSQL[0], "INSERT INTO `geobase`") {
		t.Fatalf("unexpected statements %v", db.execSQL)
	}
}

func TestReconcileGeobaseUpdatesOnlyDifferingColumns(t *testing.T) {
	db := &fakeDB{
		execScript: []error{dupErr()},
		// current warehouse row, positionally: geobase_id, street, city
		readRow: []string{"1001", "MAIN ST", "ST GEORGE"},
	}
	w := newTestWarehouse(db)
	row := testRow("geobase_id", "1001", "street", "MAIN ST", "city", "SANTA CLARA")
	res, err := w.ReconcileGeobase(row)
	if err != nil {
		t.Fatal(err)
	}
	if res != ResultReconciled {
		t.Fatalf("expected reconciled, got %v", res)
	}
	// one insert attempt, then exactly one update for the changed city column.
	if len(db.execSQL) != 2 {
		t.Fatalf("expected 2 statements, got %v", db.execSQL)
	}
	expected := "UPDATE `geobase` SET `city` = ? WHERE `geobase_id` = ?"
	if db.execSQL[1] != expected {
		t.Fatalf("expected %q, got %q", expected, db.execSQL[1])
	}
	if db.execArgs[1][0] != "SANTA CLARA" || db.execArgs[1][1] != "1001" {
		t.Fatalf("unexpected update args %v", db.execArgs[1])
	}
}

func TestReconcileGeobaseNeverUpdatesKeyColumn(t *testing.T) {
	db := &fakeDB{
		execScript: []error{dupErr()},
		readRow:    []string{"different", "MAIN ST"},
	}
	w := newTestWarehouse(db)
	row := testRow("geobase_id", "1001", "street", "MAIN ST")
	if _, err := w.ReconcileGeobase(row); err != nil {
		t.Fatal(err)
	}
	for _, s := range db.execSQL[1:] {
		if strings.Contains(s, "SET `geobase_id`") {
			t.Fatalf("key column must not be updated: %q", s)
		}
	}
}

func TestReconcileGeobaseContinuesPastUpdateFailure(t *testing.T) {
	db := &fakeDB{
		// insert duplicates, first update fails, second succeeds.
		execScript: []error{dupErr(), errors.New("lock wait timeout"), nil},
		readRow:    []string{"1001", "OLD ST", "OLD CITY"},
	}
	w := newTestWarehouse(db)
	row := testRow("geobase_id", "1001", "street", "MAIN ST", "city", "SANTA CLARA")
	res, err := w.ReconcileGeobase(row)
	if err != nil {
		t.Fatal(err)
	}
	if res != ResultReconciled {
		t.Fatalf("expected reconciled, got %v", res)
	}
	if len(db.execSQL) != 3 { // insert + both updates, despite the first failing.
		t.Fatalf("expected 3 statements, got %v", db.execSQL)
	}
}

func TestValuesEqual(t *testing.T) {
	if !valuesEqual("40.56123", "40.561230") {
		t.Fatal("numeric values with differing precision should compare equal")
	}
	if valuesEqual("MAIN ST", "MAIN STREET") {
		t.Fatal("different strings compared equal")
	}
	if !valuesEqual("", "") {
		t.Fatal("empty strings should compare equal")
	}
}
