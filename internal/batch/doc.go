// Package batch runs the frame processor across many files and shapes
// the collected results for reporting.
//
// Frames are embarrassingly parallel: no shared mutable state, no
// ordering dependency. Run therefore distributes files over a plain
// channel-fed worker pool (or processes them sequentially for a single
// worker) and collects results in completion order. Reporting order is
// imposed afterwards by SortByMagnitude.
package batch
