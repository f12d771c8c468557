// Package filesum collects per-file metadata under a directory and derives
// summaries from it.
//
// Scan walks the tree once using fastwalk and returns a flat list of
// FileRecord values in traversal order. SummarizeByExtension, TopLargest and
// TopOldest derive independent views from that list; Summarize bundles them
// for the report.
package filesum
