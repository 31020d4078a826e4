package warehouse

import (
	"strings"
	"time"

	"github.com/cevaris/ordered_map"
	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/sccity/dispatch-etl/config"
	"github.com/sccity/dispatch-etl/constants"
	"github.com/sccity/dispatch-etl/logger"
)

// Result classifies the outcome of one load call.
type Result int

const (
	ResultLoaded     Result = iota // row inserted
	ResultDuplicate                // natural key already present; treated as already-loaded
	ResultReconciled               // geobase row converged field-by-field
	ResultFatal                    // retry budget exhausted; row dropped from this run
)

func (r Result) String() string {
	switch r {
	case ResultLoaded:
		return "loaded"
	case ResultDuplicate:
		return "duplicate"
	case ResultReconciled:
		return "reconciled"
	default:
		return "fatal"
	}
}

// Warehouse executes loads against the reporting warehouse. Every logical
// operation opens its own connection via OpenFn/OpenReadFn; nothing is held
// as process-wide connection state.
type Warehouse struct {
	Log         logger.Logger
	MaxAttempts int
	RetryDelay  time.Duration
	OpenFn      func() (Conn, error) // read-write connection factory
	OpenReadFn  func() (Conn, error) // read-only replica, used by reconciliation reads
}

// New builds a Warehouse from the configured DSNs with the standard retry
// policy (5 attempts, 60s apart).
func New(log logger.Logger, cfg config.WarehouseSettings) *Warehouse {
	return &Warehouse{
		Log:         log,
		MaxAttempts: constants.LoaderMaxAttempts,
		RetryDelay:  constants.LoaderRetryDelaySecs * time.Second,
		OpenFn:      func() (Conn, error) { return openDSN(log, cfg.Dsn) },
		OpenReadFn:  func() (Conn, error) { return openDSN(log, cfg.DsnRO) },
	}
}

// Insert loads one ordered row map into table.
// A duplicate natural key is success-no-op; transient failures are retried
// up to MaxAttempts with a fixed delay; exhaustion is fatal for this row.
func (w *Warehouse) Insert(table string, row *ordered_map.OrderedMap) (Result, error) {
	sqlText, args := insertSQL(table, row)
	return w.execWithRetry(sqlText, args)
}

// execWithRetry runs one statement under the loader retry contract.
func (w *Warehouse) execWithRetry(sqlText string, args []interface{}) (Result, error) {
	var lastErr error
	for attempt := 1; attempt <= w.MaxAttempts; attempt++ {
		err := w.execOnce(sqlText, args)
		if err == nil {
			return ResultLoaded, nil
		}
		if IsDuplicate(err) {
			w.Log.Debug("Entry already exists in database")
			return ResultDuplicate, nil
		}
		lastErr = err
		if attempt < w.MaxAttempts { // if we have retries left...
			w.Log.Info("Retrying (", attempt, "/", w.MaxAttempts, ") Error: ", err)
			time.Sleep(w.RetryDelay)
		}
	}
	w.Log.Error("Giving up after ", w.MaxAttempts, " attempts. Error: ", lastErr, " SQL: ", sqlText)
	return ResultFatal, errors.Wrapf(lastErr, "retry budget exhausted after %v attempts", w.MaxAttempts)
}

// execOnce opens a fresh connection, runs the statement in a transaction and
// closes the connection again.
func (w *Warehouse) execOnce(sqlText string, args []interface{}) error {
	conn, err := w.OpenFn()
	if err != nil {
		return err
	}
	defer conn.Close()
	return conn.Exec(sqlText, args...)
}

// RunProcedure calls a stored procedure under the same retry contract as
// row loads (datamart refresh).
func (w *Warehouse) RunProcedure(name string) error {
	w.Log.Info("Running Stored Procedure: ", name)
	res, err := w.execWithRetry("CALL "+name+"()", nil)
	if res == ResultFatal {
		return err
	}
	return nil
}

// IsDuplicate reports whether err is a duplicate-key conflict.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 { // ER_DUP_ENTRY
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "duplicate key")
}
