// Package warehouse loads normalized records into the reporting warehouse:
// parameterized inserts with bounded retry, duplicate-key classification,
// the geobase field-by-field reconciliation and the datamart/agency-view
// maintenance statements.
package warehouse

import (
	"database/sql"
	"fmt"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/go-sql-driver/mysql"
	"github.com/sccity/dispatch-etl/constants"
	"github.com/sccity/dispatch-etl/logger"
	"github.com/xo/dburl"
)

// supportedDrivers maps dburl driver names to the session statement that
// pins the transaction isolation level to read-committed.
var supportedDrivers = map[string]string{
	constants.ConnectionTypeMysql:     constants.IsolationReadCommitted,
	constants.ConnectionTypeSqlServer: "SET TRANSACTION ISOLATION LEVEL READ COMMITTED",
}

// Conn is one short-lived warehouse connection: opened per logical unit of
// work and closed immediately after, so concurrent pipelines never contend
// on shared connection state.
type Conn interface {
	// Exec runs one statement inside an explicit transaction.
	Exec(query string, args ...interface{}) error
	// QueryRow runs a single-row query and scans it into dest.
	QueryRow(query string, args []interface{}, dest []interface{}) error
	Close() error
}

type sqlConn struct {
	db *sql.DB
}

func (c *sqlConn) Exec(query string, args ...interface{}) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(query, args...); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (c *sqlConn) QueryRow(query string, args []interface{}, dest []interface{}) error {
	return c.db.QueryRow(query, args...).Scan(dest...)
}

func (c *sqlConn) Close() error {
	return c.db.Close()
}

// openDSN opens a fresh connection for the supplied dburl-style DSN.
// The session is pinned to read-committed before use.
func openDSN(log logger.Logger, dsn string) (Conn, error) {
	u, err := dburl.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("error parsing warehouse DSN: %w", err)
	}
	isolation, ok := supportedDrivers[u.Driver]
	if !ok {
		return nil, fmt.Errorf("unsupported warehouse database type %q", u.Driver)
	}
	log.Debug("opening warehouse connection type ", u.Driver)
	db, err := sql.Open(u.Driver, u.DSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // one logical unit of work per Conn; session statements below apply to it.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(isolation); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqlConn{db: db}, nil
}
