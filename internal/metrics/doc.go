// Package metrics records page rendering and callback metrics.
//
// Components receive a Recorder and default to NoopRecorder, so nothing has to
// nil-check before recording:
//
//	srv := preview.New(cfg, preview.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// PrometheusRecorder registers its collectors on the given registry and
// HTTPHandler exposes that registry for scraping.
package metrics
