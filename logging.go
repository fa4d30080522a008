package optioneer

import "time"

// AccessEvent describes one registry operation for logging.
type AccessEvent struct {
	Op       string
	Path     string
	Resolved string
	Duration time.Duration
	Err      error
}

// AccessLogger records registry operations.
type AccessLogger interface {
	LogAccess(AccessEvent)
}

// AccessLoggerFunc adapts a function to AccessLogger.
type AccessLoggerFunc func(AccessEvent)

// LogAccess implements AccessLogger.
func (f AccessLoggerFunc) LogAccess(event AccessEvent) {
	if f != nil {
		f(event)
	}
}

type noopAccessLogger struct{}

func (noopAccessLogger) LogAccess(AccessEvent) {}
