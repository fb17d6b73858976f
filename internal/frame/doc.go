// Package frame orchestrates the analysis of a single frame image:
// probing the baselight colors, tracing both perforations, extracting
// the reference corners, and computing the skew angle.
//
// # Fault containment
//
// Every per-frame fault — an unreadable file, mismatched baselight
// colors, a fill leak, a degenerate edge — is converted into a failure
// Result tagged with the file, never propagated. A batch over
// thousands of frames always completes and reports per-file outcomes.
//
// # Concurrency
//
// A Processor carries only read-only configuration, so a single
// instance is shared by all batch workers. Each Process call owns its
// image buffer; nothing is shared across frames.
package frame
