// Package metrics provides observability hooks for generation runs.
//
// Components receive a Recorder through the generation context. NoopRecorder is the
// default; PrometheusRecorder collects into a registry that the CLI writes out as a
// node-exporter textfile when metrics_file is configured.
package metrics
