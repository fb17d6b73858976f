// Package perf implements the perforation analysis core: tracing the
// boundary of a perf region with a bounded flood fill, condensing the
// noisy boundary into reference corners, and converting the corner
// pair into a skew angle.
//
// The pipeline is strictly one-way:
//
//	TraceRegion -> EdgeMap -> Trim/TolerantAverage -> ExtractCorners -> Angle
//
// Every function is deterministic for identical inputs. The flood fill
// accumulates its four boundary series with min/max folds, so the fill
// order never affects the result.
package perf
