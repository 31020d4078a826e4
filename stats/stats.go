package stats

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cevaris/ordered_map"
	"github.com/rs/xid"
	"github.com/sccity/dispatch-etl/logger"
)

// Counters holds the outcome counts for one entity pipeline within a run.
// All fields are updated atomically so the parallel history mode can share
// one RunStats across pipeline goroutines.
type Counters struct {
	Windows     int64 // remote query windows issued
	Loaded      int64 // rows inserted
	Duplicates  int64 // duplicate-key no-ops
	Reconciled  int64 // geobase rows reconciled field-by-field
	Skipped     int64 // raw records missing their required key field
	Dropped     int64 // rows lost after the retry budget was exhausted
	QueryErrors int64 // windows abandoned due to remote query failures
}

// RunStats accumulates per-entity counters for one ETL run.
// A run that drops rows still exits 0; the summary is the operator's signal
// to re-run the affected dates.
type RunStats struct {
	RunID    string
	mu       sync.Mutex
	entities *ordered_map.OrderedMap // entity name -> *Counters, in first-seen order
	log      logger.Logger
}

// NewRunStats creates a RunStats with a fresh run id.
func NewRunStats(log logger.Logger) *RunStats {
	return &RunStats{
		RunID:    xid.New().String(),
		entities: ordered_map.NewOrderedMap(),
		log:      log,
	}
}

// Entity returns the counters for the named entity, creating them on first use.
func (r *RunStats) Entity(name string) *Counters {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.entities.Get(name); ok {
		return v.(*Counters)
	}
	c := &Counters{}
	r.entities.Set(name, c)
	return c
}

func (c *Counters) AddWindow()     { atomic.AddInt64(&c.Windows, 1) }
func (c *Counters) AddLoaded()     { atomic.AddInt64(&c.Loaded, 1) }
func (c *Counters) AddDuplicate()  { atomic.AddInt64(&c.Duplicates, 1) }
func (c *Counters) AddReconciled() { atomic.AddInt64(&c.Reconciled, 1) }
func (c *Counters) AddSkipped()    { atomic.AddInt64(&c.Skipped, 1) }
func (c *Counters) AddDropped()    { atomic.AddInt64(&c.Dropped, 1) }
func (c *Counters) AddQueryError() { atomic.AddInt64(&c.QueryErrors, 1) }

// Dropped rows or query errors mean data is missing from the warehouse for this run.
func (r *RunStats) HasLoss() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	loss := false
	iter := r.entities.IterFunc()
	for kv, ok := iter(); ok; kv, ok = iter() {
		c := kv.Value.(*Counters)
		if atomic.LoadInt64(&c.Dropped) > 0 || atomic.LoadInt64(&c.QueryErrors) > 0 {
			loss = true
		}
	}
	return loss
}

// Summary logs one line per entity plus a run trailer.
func (r *RunStats) Summary() {
	r.mu.Lock()
	defer r.mu.Unlock()
	iter := r.entities.IterFunc()
	for kv, ok := iter(); ok; kv, ok = iter() {
		name := kv.Key.(string)
		c := kv.Value.(*Counters)
		r.log.Info(fmt.Sprintf(
			"run=%v entity=%q windows=%v loaded=%v duplicates=%v reconciled=%v skipped=%v dropped=%v queryErrors=%v",
			r.RunID, name,
			atomic.LoadInt64(&c.Windows),
			atomic.LoadInt64(&c.Loaded),
			atomic.LoadInt64(&c.Duplicates),
			atomic.LoadInt64(&c.Reconciled),
			atomic.LoadInt64(&c.Skipped),
			atomic.LoadInt64(&c.Dropped),
			atomic.LoadInt64(&c.QueryErrors)))
	}
	r.log.Info("run=", r.RunID, " complete")
}
