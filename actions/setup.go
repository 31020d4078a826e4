// Package actions implements the work behind each CLI command: the daily and
// historical extract runs, the geobase sweep, the datamart refresh and
// agency schema provisioning.
package actions

import (
	"time"

	"github.com/sccity/dispatch-etl/config"
	"github.com/sccity/dispatch-etl/constants"
	"github.com/sccity/dispatch-etl/logger"
	"github.com/sccity/dispatch-etl/spillman"
	"github.com/sccity/dispatch-etl/stats"
	"github.com/sccity/dispatch-etl/warehouse"
)

const serviceName = "dispatch-etl"

// runtime bundles the shared collaborators every action needs.
type runtime struct {
	log      logger.Logger
	settings *config.Settings
	client   *spillman.Client
	wh       *warehouse.Warehouse
	stats    *stats.RunStats
}

// setup loads configuration and builds the shared collaborators.
// An empty logLevel means use the configured level.
func setup(logLevel string, stackDumpOnPanic bool) (*runtime, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	if logLevel == "" { // if the command line didn't override the log level...
		logLevel = settings.Global.LogLevel
	}
	log := logger.NewLogger(serviceName, logLevel, stackDumpOnPanic)
	return &runtime{
		log:      log,
		settings: settings,
		client:   spillman.NewClient(log, settings.Spillman),
		wh:       warehouse.New(log, settings.Warehouse),
		stats:    stats.NewRunStats(log),
	}, nil
}

// summarize logs the per-entity counters and flags incomplete runs.
// Loss never fails the process; extraction is idempotent, so the recovery
// path is re-running the affected dates.
func (r *runtime) summarize() {
	r.stats.Summary()
	if r.stats.HasLoss() {
		r.log.Warn("Run is incomplete: some windows or rows were not loaded; re-run the affected dates to recover")
	}
}

// extractDate runs every date-driven entity pipeline for one civil date,
// sequentially and in declared order.
func (r *runtime) extractDate(d time.Time) {
	r.log.Info("Processing all entities for ", d.Format(constants.TimeFormatCivilDate))
	for _, e := range spillman.DailyEntities() {
		p := &spillman.Pipeline{Log: r.log, Client: r.client, Loader: r.wh, Stats: r.stats, Entity: e}
		p.Extract(d)
	}
}
