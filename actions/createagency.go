package actions

type CreateAgencyConfig struct {
	Agency           string
	Type             string // law, fire or ems
	LogLevel         string
	StackDumpOnPanic bool
}

// RunCreateAgency provisions the agency-scoped schema of warehouse views.
func RunCreateAgency(cfg *CreateAgencyConfig) error {
	r, err := setup(cfg.LogLevel, cfg.StackDumpOnPanic)
	if err != nil {
		return err
	}
	return r.wh.CreateAgency(cfg.Agency, cfg.Type)
}
