// Package pipeline orchestrates complete runs: file discovery, per-file
// classification and extraction, the collect-all barrier, series
// combination and output writing. Per-file work is independent and runs
// on a bounded worker pool; only the combination pass needs every file's
// result, so results are collected into input-ordered slots first.
package pipeline

import (
	"log/slog"
)

// SkipReport records one file the run could not process.
type SkipReport struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// Summary aggregates the outcome of one run. No per-file failure is
// fatal; the summary is how callers learn what happened.
type Summary struct {
	Processed int
	Skipped   int
	Outputs   []string
	Reports   []SkipReport
}

func (s *Summary) skip(file string, err error) {
	s.Skipped++
	s.Reports = append(s.Reports, SkipReport{File: file, Reason: err.Error()})
	slog.Warn("Skipping file",
		slog.String("file", file),
		slog.String("reason", err.Error()))
}

func (s *Summary) output(path string) {
	s.Outputs = append(s.Outputs, path)
}

// Log emits the end-of-run totals.
func (s *Summary) Log(run string) {
	slog.Info("Run complete",
		slog.String("run", run),
		slog.Int("processed", s.Processed),
		slog.Int("skipped", s.Skipped),
		slog.Int("outputs", len(s.Outputs)))
}
