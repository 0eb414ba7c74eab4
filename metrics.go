package flog

// MetricsCollector receives one callback per flushed line.
// Implementations must be cheap; they run inside the log call.
type MetricsCollector interface {
	LoggedLine(level Level, size int, err error)
}

// NoopMetricsCollector is the default collector.
type NoopMetricsCollector struct{}

func (*NoopMetricsCollector) LoggedLine(level Level, size int, err error) {}
