// Package vitals holds the Core Web Vitals threshold dataset that every
// vitalchart renderer draws.
//
// # Overview
//
// The dataset is a short, ordered list of [Record] values, one per metric.
// Order is display order (LCP, INP, CLS) and carries no other meaning.
// Thresholds are kept as the literal strings they were written as, so
// renderers that print "value+unit" reproduce them exactly, while [Record.Value]
// parses them for renderers that need numbers.
//
// # Metric Lookup
//
// Abbreviations, units and scale factors are not stored on the records. They
// come from a static table keyed by metric name, reachable through [Lookup]:
//
//	info, ok := vitals.Lookup(vitals.LargestContentfulPaint)
//	// info.Abbrev == "LCP", info.Unit == "ms"
//
// The table must cover every record in a dataset; a metric name without an
// entry is a DATA_FORMAT error, the same as a non-numeric threshold.
//
// # Immutability
//
// A [Dataset] is a value type wrapping an unexported slice. It is built once
// (usually with [Default]) and passed explicitly to renderers; nothing can
// mutate it after construction. [Dataset.Records] returns a copy.
package vitals
