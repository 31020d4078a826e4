package actions

import (
	"github.com/sccity/dispatch-etl/spillman"
)

type GeobaseConfig struct {
	MaxID            int // upper bound of the id sweep; 0 means the default
	LogLevel         string
	StackDumpOnPanic bool
}

// RunGeobase sweeps the full geobase address id space and reconciles every
// row against the warehouse.
func RunGeobase(cfg *GeobaseConfig) error {
	r, err := setup(cfg.LogLevel, cfg.StackDumpOnPanic)
	if err != nil {
		return err
	}
	p := &spillman.Pipeline{Log: r.log, Client: r.client, Loader: r.wh, Stats: r.stats, Entity: spillman.GeobaseEntity()}
	p.Run(spillman.IDWindows(cfg.MaxID))
	r.summarize()
	return nil
}
