package actions

type DatamartConfig struct {
	LogLevel         string
	StackDumpOnPanic bool
}

// RunDatamart refreshes the incident/radiolog datamart rollups.
func RunDatamart(cfg *DatamartConfig) error {
	r, err := setup(cfg.LogLevel, cfg.StackDumpOnPanic)
	if err != nil {
		return err
	}
	return r.wh.RefreshDatamart()
}
