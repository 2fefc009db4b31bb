package formatter

import "github.com/joeydtaylor/tracewire/pkg/internal/types"

// ConnectLogger attaches one or more diagnostic loggers. Telemetry is
// configuration-time wiring; do not mutate the logger set concurrently with
// emitting.
func (f *Formatter) ConnectLogger(loggers ...types.Logger) {
	f.loggersLock.Lock()
	defer f.loggersLock.Unlock()
	f.loggers = append(f.loggers, loggers...)
}

// NotifyLoggers reports a diagnostic message to every attached logger.
func (f *Formatter) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	f.loggersLock.Lock()
	loggers := f.loggers
	f.loggersLock.Unlock()

	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		switch level {
		case types.TraceLevel, types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		default:
			logger.Error(msg, keysAndValues...)
		}
	}
}
