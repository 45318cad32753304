package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	renderDuration  *prom.HistogramVec
	renderResults   *prom.CounterVec
	callbackResults *prom.CounterVec
	metadataReloads *prom.CounterVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "componentdocs",
			Name:      "render_duration_seconds",
			Help:      "Duration of page assembly and rendering",
			Buckets:   prom.DefBuckets,
		}, []string{"page"}),
		renderResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "componentdocs",
			Name:      "render_results_total",
			Help:      "Page render results by outcome",
		}, []string{"page", "result"}),
		callbackResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "componentdocs",
			Name:      "callback_results_total",
			Help:      "Callback dispatch results by output and outcome",
		}, []string{"output", "result"}),
		metadataReloads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "componentdocs",
			Name:      "metadata_reloads_total",
			Help:      "Component metadata reloads by outcome",
		}, []string{"result"}),
	}
	reg.MustRegister(pr.renderDuration, pr.renderResults, pr.callbackResults, pr.metadataReloads)
	return pr
}

func (p *PrometheusRecorder) ObserveRenderDuration(page string, d time.Duration) {
	if p == nil || p.renderDuration == nil {
		return
	}
	p.renderDuration.WithLabelValues(page).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRenderResult(page string, result ResultLabel) {
	if p == nil || p.renderResults == nil {
		return
	}
	p.renderResults.WithLabelValues(page, string(result)).Inc()
}

func (p *PrometheusRecorder) IncCallbackResult(output string, result ResultLabel) {
	if p == nil || p.callbackResults == nil {
		return
	}
	p.callbackResults.WithLabelValues(output, string(result)).Inc()
}

func (p *PrometheusRecorder) IncMetadataReload(success bool) {
	if p == nil || p.metadataReloads == nil {
		return
	}
	res := string(ResultFailed)
	if success {
		res = string(ResultSuccess)
	}
	p.metadataReloads.WithLabelValues(res).Inc()
}
