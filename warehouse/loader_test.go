package warehouse

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/cevaris/ordered_map"
	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/sccity/dispatch-etl/logger"
)

// fakeDB scripts the outcomes of successive Exec calls and records every
// statement issued. One fakeDB backs all connections a test opens.
type fakeDB struct {
	execScript []error  // popped front-first; empty means success
	execSQL    []string // statements seen, in order
	execArgs   [][]interface{}
	readRow    []string // values returned by QueryRow, positionally
	readErr    error
	opens      int
}

type fakeConn struct {
	db *fakeDB
}

func (c *fakeConn) Exec(query string, args ...interface{}) error {
	c.db.execSQL = append(c.db.execSQL, query)
	c.db.execArgs = append(c.db.execArgs, args)
	if len(c.db.execScript) == 0 {
		return nil
	}
	err := c.db.execScript[0]
	c.db.execScript = c.db.execScript[1:]
	return err
}

func (c *fakeConn) QueryRow(query string, args []interface{}, dest []interface{}) error {
	if c.db.readErr != nil {
		return c.db.readErr
	}
	for i := range dest {
		*(dest[i].(*sql.NullString)) = sql.NullString{String: c.db.readRow[i], Valid: true}
	}
	return nil
}

func (c *fakeConn) Close() error { return nil }

func newTestWarehouse(db *fakeDB) *Warehouse {
	open := func() (Conn, error) {
		db.opens++
		return &fakeConn{db: db}, nil
	}
	return &Warehouse{
		Log:         logger.NewLogger("test", "error", false),
		MaxAttempts: 5,
		RetryDelay:  0,
		OpenFn:      open,
		OpenReadFn:  open,
	}
}

func testRow(pairs ...string) *ordered_map.OrderedMap {
	om := ordered_map.NewOrderedMap()
	for i := 0; i < len(pairs); i += 2 {
		om.Set(pairs[i], pairs[i+1])
	}
	return om
}

func TestInsertSQL(t *testing.T) {
	row := testRow("call_id", "123", "agency", "SCPD", "date", "2023-05-01 10:00:00")
	sqlText, args := insertSQL("cad", row)
	expected := "INSERT INTO `cad` (`call_id`, `agency`, `date`) VALUES (?, ?, ?)"
	if sqlText != expected {
		t.Fatalf("expected %q, got %q", expected, sqlText)
	}
	if len(args) != 3 || args[0] != "123" || args[1] != "SCPD" || args[2] != "2023-05-01 10:00:00" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestInsertRetriesThenSucceeds(t *testing.T) {
	db := &fakeDB{execScript: []error{errors.New("deadlock"), errors.New("deadlock"), nil}}
	w := newTestWarehouse(db)
	res, err := w.Insert("cad", testRow("call_id", "1"))
	if err != nil {
		t.Fatal(err)
	}
	if res != ResultLoaded {
		t.Fatalf("expected loaded, got %v", res)
	}
	if len(db.execSQL) != 3 {
		t.Fatalf("expected 3 attempts, got %v", len(db.execSQL))
	}
}

func TestInsertExhaustsRetries(t *testing.T) {
	db := &fakeDB{execScript: []error{
		errors.New("boom"), errors.New("boom"), errors.New("boom"),
		errors.New("boom"), errors.New("boom"),
	}}
	w := newTestWarehouse(db)
	res, err := w.Insert("cad", testRow("call_id", "1"))
	if err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if res != ResultFatal {
		t.Fatalf("expected fatal, got %v", res)
	}
	if len(db.execSQL) != 5 {
		t.Fatalf("expected exactly 5 attempts, got %v", len(db.execSQL))
	}
}

func TestInsertDuplicateIsNoOp(t *testing.T) {
	db := &fakeDB{execScript: []error{&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1' for key 'PRIMARY'"}}}
	w := newTestWarehouse(db)
	res, err := w.Insert("cad", testRow("call_id", "1"))
	if err != nil {
		t.Fatal(err)
	}
	if res != ResultDuplicate {
		t.Fatalf("expected duplicate, got %v", res)
	}
	if len(db.execSQL) != 1 { // duplicates are terminal, not retried.
		t.Fatalf("expected 1 attempt, got %v", len(db.execSQL))
	}
}

func TestIsDuplicateByMessage(t *testing.T) {
	if !IsDuplicate(errors.New("Error 1062: Duplicate entry 'x' for key 'PRIMARY'")) {
		t.Fatal("expected message-based duplicate detection")
	}
	if IsDuplicate(errors.New("connection refused")) {
		t.Fatal("unrelated error classified as duplicate")
	}
}

func TestRunProcedure(t *testing.T) {
	db := &fakeDB{}
	w := newTestWarehouse(db)
	if err := w.RunProcedure("spillman_dm.CREATE_DM_INC_RLOG_1M"); err != nil {
		t.Fatal(err)
	}
	if db.execSQL[0] != "CALL spillman_dm.CREATE_DM_INC_RLOG_1M()" {
		t.Fatalf("unexpected SQL %q", db.execSQL[0])
	}
}

func TestRefreshDatamartRunsAllProcedures(t *testing.T) {
	db := &fakeDB{}
	w := newTestWarehouse(db)
	if err := w.RefreshDatamart(); err != nil {
		t.Fatal(err)
	}
	if len(db.execSQL) != 5 {
		t.Fatalf("expected 5 procedures, got %v", len(db.execSQL))
	}
	if db.execSQL[0] != "CALL spillman_dm.CREATE_DM_INC_RLOG_3Y()" ||
		db.execSQL[4] != "CALL spillman_dm.CREATE_DM_INC_RLOG_1M()" {
		t.Fatalf("unexpected procedure order %v", db.execSQL)
	}
}

func TestCreateAgencyRejectsBadNames(t *testing.T) {
	w := newTestWarehouse(&fakeDB{})
	if err := w.CreateAgency("bad;drop", "law"); err == nil {
		t.Fatal("expected rejection of non-identifier agency name")
	}
	if err := w.CreateAgency("scpd", "navy"); err == nil {
		t.Fatal("expected rejection of unknown agency type")
	}
}

func TestCreateAgencyLawGetsCitationsView(t *testing.T) {
	db := &fakeDB{}
	w := newTestWarehouse(db)
	if err := w.CreateAgency("SCPD", "LAW"); err != nil {
		t.Fatal(err)
	}
	all := strings.Join(db.execSQL, "\n")
	if !strings.Contains(all, "DROP SCHEMA IF EXISTS scpd") {
		t.Fatal("expected schema drop")
	}
	if !strings.Contains(all, "CREATE VIEW scpd.citations") {
		t.Fatal("expected citations view for law agencies")
	}
	if !strings.Contains(all, "CREATE VIEW scpd.dm_inc_rlog_1m") {
		t.Fatal("expected datamart views")
	}
}

func TestCreateAgencyFireSkipsCitations(t *testing.T) {
	db := &fakeDB{}
	w := newTestWarehouse(db)
	if err := w.CreateAgency("scfd", "fire"); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(strings.Join(db.execSQL, "\n"), "citations") {
		t.Fatal("fire agencies must not get a citations view")
	}
}
