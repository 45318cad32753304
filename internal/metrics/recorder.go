package metrics

import "time"

// ResultLabel enumerates outcome categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFailed   ResultLabel = "failed"
	ResultCanceled ResultLabel = "canceled"
)

// Recorder defines observability hooks for page renders, callbacks and
// metadata reloads.
type Recorder interface {
	ObserveRenderDuration(page string, d time.Duration)
	IncRenderResult(page string, result ResultLabel)
	IncCallbackResult(output string, result ResultLabel)
	IncMetadataReload(success bool)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRenderDuration(string, time.Duration) {}
func (NoopRecorder) IncRenderResult(string, ResultLabel)         {}
func (NoopRecorder) IncCallbackResult(string, ResultLabel)       {}
func (NoopRecorder) IncMetadataReload(bool)                      {}

// ResultFor classifies err as a result label.
func ResultFor(err error, canceled bool) ResultLabel {
	switch {
	case err == nil:
		return ResultSuccess
	case canceled:
		return ResultCanceled
	default:
		return ResultFailed
	}
}
