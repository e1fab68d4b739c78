package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	LogLevel        string // sets the log level (zap log level values)
	LogFormat       string // text vs json
	LogConfig       string // log config file with filter rules for named loggers
	EnableTelemetry bool   // enables telemetry
	ReportFile      string // path of the report file written after a recording
	Seed            int64  // seed for the lap time generator (0 means time based)
)

// Config holds the configuration values which are used by the application
type Config struct {
	PrintLaps bool // if true, each generated lap is logged on debug level
}
