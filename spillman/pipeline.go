package spillman

import (
	"time"

	"github.com/cevaris/ordered_map"
	"github.com/sccity/dispatch-etl/logger"
	"github.com/sccity/dispatch-etl/stats"
	"github.com/sccity/dispatch-etl/warehouse"
)

// RowLoader is the warehouse surface a pipeline needs.
type RowLoader interface {
	Insert(table string, row *ordered_map.OrderedMap) (warehouse.Result, error)
	ReconcileGeobase(row *ordered_map.OrderedMap) (warehouse.Result, error)
}

// Entity declares one record type end to end: where it lives remotely, how
// it is windowed, how its fields map onto warehouse columns and where it
// lands. Derive, when set, fills columns that are computed from the raw
// record rather than mapped one-to-one (incident type, the radio-log key).
type Entity struct {
	Name        string
	Table       string // remote record table
	FilterField string
	TargetTable string
	Windows     WindowFunc
	Fields      []FieldSpec
	Derive      func(raw Record, row *ordered_map.OrderedMap)
	Reconcile   bool // geobase converges field-by-field instead of insert-or-skip
}

// Pipeline runs one entity: windows -> query -> normalize -> load, every
// record individually and immediately. Failures never abort the pipeline; a
// bad window or row is counted and the rest of the run proceeds.
type Pipeline struct {
	Log    logger.Logger
	Client Querier
	Loader RowLoader
	Stats  *stats.RunStats
	Entity Entity
}

// Extract runs the pipeline for one civil date.
func (p *Pipeline) Extract(d time.Time) {
	p.Run(p.Entity.Windows(d))
}

// Run processes the supplied windows in sequence.
func (p *Pipeline) Run(windows []Window) {
	c := p.Stats.Entity(p.Entity.Name)
	for _, w := range windows {
		c.AddWindow()
		p.Log.Info("Processing ", p.Entity.Name, " from ", w.Start, " to ", w.End)
		records, err := p.Client.Query(p.Entity.Table, p.Entity.FilterField, w)
		if err != nil { // the window is abandoned; remaining windows still run.
			c.AddQueryError()
			p.Log.Error("Error querying ", p.Entity.Name, ": ", err)
			continue
		}
		for _, raw := range records {
			row, skip := ExtractFields(raw, p.Entity.Fields)
			if skip {
				c.AddSkipped()
				continue
			}
			if p.Entity.Derive != nil {
				p.Entity.Derive(raw, row)
			}
			var res warehouse.Result
			var loadErr error
			if p.Entity.Reconcile {
				res, loadErr = p.Loader.ReconcileGeobase(row)
			} else {
				res, loadErr = p.Loader.Insert(p.Entity.TargetTable, row)
			}
			switch res {
			case warehouse.ResultLoaded:
				c.AddLoaded()
			case warehouse.ResultDuplicate:
				c.AddDuplicate()
			case warehouse.ResultReconciled:
				c.AddReconciled()
			case warehouse.ResultFatal:
				c.AddDropped()
				p.Log.Error("Dropped ", p.Entity.Name, " row: ", loadErr)
			}
		}
	}
}
