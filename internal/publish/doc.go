// Package publish runs the documentation pipeline: it loads doclets, resolves
// the document model, builds pages and writes them to the destination.
//
// Stages run in a fixed order through RunStages; each is timed, logged and
// recorded in the metrics recorder. A fatal or canceled stage aborts the run.
package publish
