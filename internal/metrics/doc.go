// Package metrics records build and migration metrics.
//
// Components receive a Recorder and default to NoopRecorder, so callers never
// check for nil:
//
//	builder := site.NewBuilder(cfg, site.WithRecorder(metrics.NoopRecorder{}))
//
// PrometheusRecorder collects into its own registry. A one-shot CLI has no
// scrape endpoint, so the registry is written in the node_exporter textfile
// format with WriteTextfile after the command finishes.
package metrics
