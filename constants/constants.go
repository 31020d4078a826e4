package constants

const (
	// SentinelTimestamp stands in for absent or unparseable remote dates so
	// downstream queries never see NULL.
	SentinelTimestamp = "1900-01-01 00:00:00"

	// Remote (Spillman) date formats.
	TimeFormatRemoteDate     = "01/02/2006"          // date-only query bound
	TimeFormatRemoteDateTime = "01/02/2006 15:04:05" // datetime query bound
	TimeFormatWarehouse      = "2006-01-02 15:04:05" // warehouse DATETIME literal
	TimeFormatCivilDate      = "2006-01-02"          // CLI date arguments

	// Warehouse retry policy.
	LoaderMaxAttempts      = 5
	LoaderRetryDelaySecs   = 60
	IsolationReadCommitted = "SET SESSION TRANSACTION ISOLATION LEVEL READ COMMITTED"

	// Geobase full-extract ID bucketing.
	GeobaseBucketSize   = 50000
	GeobaseDefaultMaxID = 300000

	ConnectionTypeMysql     = "mysql"
	ConnectionTypeSqlServer = "sqlserver"

	EnvVarPrefix  = "DISPATCH_ETL"
	EnvVarHomeDir = EnvVarPrefix + "_HOME"
)
