package logging

// NullLogger discards everything. Scanner, Reporter and the organizer take
// one in tests and wherever progress output would only add noise.
type NullLogger struct{}

// NewNullLogger returns a NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}

func (l *NullLogger) Info(format string, args ...interface{}) {}

func (l *NullLogger) Error(format string, args ...interface{}) {}
