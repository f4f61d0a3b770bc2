package config

const (
	envPort         = "PORT"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envSimSeed      = "SIM_SEED"
	envRulesFile    = "RULES_FILE"
	envArchive      = "ARCHIVE_DRIVER"
	envArchivePath  = "ARCHIVE_PATH"

	// Mirrors of the envDefault tags, for callers and tests.
	defaultPort        = "4000"
	defaultMetricsPort = "9090"
	defaultService     = "diamond-gm"
	defaultArchivePath = "data/archive"
)
