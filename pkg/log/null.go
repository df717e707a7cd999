package log

// nullLogger discards everything. It is the default logger of the
// commit pipeline and the websocket sink, so that per-frame debug output
// costs nothing unless a caller opts in.
type nullLogger struct{}

var _ Logger = nullLogger{}

func (nullLogger) Infof(string, ...interface{})  {}
func (nullLogger) Errorf(string, ...interface{}) {}
func (nullLogger) Debugf(string, ...interface{}) {}

// Fatal does not exit: a silenced logger must not end the process.
func (nullLogger) Fatal(string) {}

// NewNullLogger returns a logger that does nothing.
func NewNullLogger() Logger {
	return nullLogger{}
}
