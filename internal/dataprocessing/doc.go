// Package dataprocessing implements the normalization core of the growth
// reference pipeline: everything between a raw table delivered by the
// reader and a canonical table handed to the exporter.
//
// # Architecture
//
// The package is organized around six small components:
//
// 1. Header normalizer: maps raw column labels to canonical tokens
// 2. Filename classifier: infers measurement, gender and age range from file stems
// 3. Age resolver: converts between weeks, months and years
// 4. LMS extractor: pulls (L, M, S) distribution triplets out of ambiguous column layouts
// 5. Gender splitter: partitions tables carrying a per-row Sex column
// 6. Series combiner: merges overlapping tables into one sorted, deduplicated series
//
// # Data Flow
//
//	raw table → classify + normalize headers → per-row extraction/standardization
//	          → gender split (when needed) → combine per (measurement, gender) → canonical table
//
// # Error Handling
//
// File-level failures (unclassifiable stem, missing x-axis column) return
// coded errors from internal/errors and skip the whole table. Row-level
// misses (no resolvable M, non-numeric age) drop the row silently; the
// remaining rows are still emitted.
package dataprocessing
