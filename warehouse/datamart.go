package warehouse

// datamartProcedures lists the incident/radiolog rollup procedures in refresh
// order, widest lookback first.
var datamartProcedures = []string{
	"spillman_dm.CREATE_DM_INC_RLOG_3Y",
	"spillman_dm.CREATE_DM_INC_RLOG_1Y",
	"spillman_dm.CREATE_DM_INC_RLOG_6M",
	"spillman_dm.CREATE_DM_INC_RLOG_3M",
	"spillman_dm.CREATE_DM_INC_RLOG_1M",
}

// RefreshDatamart rebuilds the datamart rollup tables. Each procedure runs
// under the standard retry contract; a failed rollup is logged and the
// remaining rollups still run so one bad lookback cannot block the rest.
func (w *Warehouse) RefreshDatamart() error {
	var lastErr error
	for _, proc := range datamartProcedures {
		if err := w.RunProcedure(proc); err != nil {
			w.Log.Error("Datamart procedure ", proc, " failed: ", err)
			lastErr = err
		}
	}
	return lastErr
}
