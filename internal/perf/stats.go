package perf

import "errors"

// ErrDegenerateEdge is returned when a boundary series contains no
// defined samples at all, i.e. the fill never produced that edge.
var ErrDegenerateEdge = errors.New("edge series has no defined samples")

// Trim returns the series with leading and trailing Undefined entries
// removed. Interior Undefined entries (columns the fill skipped around
// dirt) are kept.
//
// Returns ErrDegenerateEdge if every entry is Undefined.
func Trim(series []int) ([]int, error) {
	start := 0
	for start < len(series) && series[start] == Undefined {
		start++
	}
	if start == len(series) {
		return nil, ErrDegenerateEdge
	}
	end := len(series)
	for series[end-1] == Undefined {
		end--
	}
	return series[start:end], nil
}

// TolerantAverage computes a partial average over a trimmed boundary
// series, rounded to the nearest pixel.
//
// rangeFraction selects a window of count = floor(len × r) + 1 samples,
// taken from the left of the series, or — when centered is true — as
// symmetric pairs around the series midpoint. Undefined samples are
// skipped in the sum but still count toward the divisor, biasing the
// average toward zero when a window is sparsely defined. That matches
// the behavior the reported angles were calibrated against, so the
// divisor semantics must not be "fixed" casually.
func TolerantAverage(series []int, rangeFraction float64, centered bool) int {
	count := int(float64(len(series))*rangeFraction) + 1
	sum := 0
	if !centered {
		for x := 0; x < count && x < len(series); x++ {
			if series[x] != Undefined {
				sum += series[x]
			}
		}
	} else {
		mid := len(series) / 2
		for x := 0; x < count/2; x++ {
			lo, hi := mid-x, mid+x
			if lo < 0 || hi >= len(series) {
				break
			}
			if series[lo] != Undefined && series[hi] != Undefined {
				sum += series[lo] + series[hi]
			}
		}
	}
	return int(float64(sum)/float64(count) + 0.5)
}
