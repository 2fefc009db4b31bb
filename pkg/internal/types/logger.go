package types

// LogLevel represents the severity levels used throughout the library, both for
// the events the engine formats and for its own diagnostic logging.
type LogLevel int

const (
	TraceLevel  LogLevel = iota // TraceLevel indicates fine-grained trace messages.
	DebugLevel                  // DebugLevel indicates debug messages.
	InfoLevel                   // InfoLevel indicates informational messages.
	WarnLevel                   // WarnLevel indicates warning messages.
	ErrorLevel                  // ErrorLevel indicates error messages.
	DPanicLevel                 // DPanicLevel indicates panic in development, error in production.
	PanicLevel                  // PanicLevel indicates panic messages.
	FatalLevel                  // FatalLevel indicates fatal error messages.
)

// String returns the lowercase textual name of the level.
func (l LogLevel) String() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case DPanicLevel:
		return "dpanic"
	case PanicLevel:
		return "panic"
	case FatalLevel:
		return "fatal"
	default:
		return "info"
	}
}

// Logger defines the interface for the library's internal diagnostics. Components
// never log through the formatting engine itself; failures on the emit path are
// reported through attached Loggers instead.
type Logger interface {
	GetLevel() LogLevel                             // GetLevel returns the current logging level of the logger.
	SetLevel(LogLevel)                              // SetLevel sets the logging level of the logger.
	Debug(msg string, keysAndValues ...interface{}) // Debug logs a debug message.
	Info(msg string, keysAndValues ...interface{})  // Info logs an informational message.
	Warn(msg string, keysAndValues ...interface{})  // Warn logs a warning message.
	Error(msg string, keysAndValues ...interface{}) // Error logs an error message.
	Flush() error                                   // Flush syncs any buffered diagnostic output.
}
