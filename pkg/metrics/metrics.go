package metrics

import "time"

// Recorder collects HTTP request metrics. Implementations can export to
// Prometheus or stay in-process for tests.
type Recorder interface {
	RecordRequest(method, route string, status int, duration time.Duration)
}

// NoOpRecorder discards all metrics. It is the default when metrics are not
// wired.
type NoOpRecorder struct{}

// RecordRequest does nothing.
func (NoOpRecorder) RecordRequest(method, route string, status int, duration time.Duration) {}
