// Package exporter persists pipeline output: canonical tables as CSV
// files and the per-run provenance record as JSON. All writes land under
// one explicit output root passed at construction; nothing here keeps
// process-wide state.
package exporter
