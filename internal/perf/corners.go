package perf

import "fmt"

// Point represents a 2D pixel coordinate.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// CornerPair holds the two reference corners used to compute one skew
// angle: the top-right corner of the upper perf and the bottom-right
// corner of the lower perf.
type CornerPair struct {
	Upper Point `json:"upper"` // NE corner of the upper perf
	Lower Point `json:"lower"` // SE corner of the lower perf
}

// cornerFraction is the portion of each boundary series averaged when
// locating a corner. Perf corners are rounded, so averaging a 75%
// sub-window approximates the straight edge while staying clear of the
// curvature at the true corner.
const cornerFraction = 0.75

// ExtractCorners derives the reference corner pair from the two perf
// edge maps.
//
// The upper corner's Y is the left-biased average of the upper perf's
// north boundary and the lower corner's Y the same treatment of the
// lower perf's south boundary: near the image's left edge those
// boundaries are least affected by the corner rounding. Both corners'
// X is the centered average of the respective east boundary, which is
// straightest around the image's vertical middle.
func ExtractCorners(upper, lower *EdgeMap) (CornerPair, error) {
	upperNorth, err := Trim(upper.North)
	if err != nil {
		return CornerPair{}, fmt.Errorf("upper perf north edge: %w", err)
	}
	lowerSouth, err := Trim(lower.South)
	if err != nil {
		return CornerPair{}, fmt.Errorf("lower perf south edge: %w", err)
	}
	upperEast, err := Trim(upper.East)
	if err != nil {
		return CornerPair{}, fmt.Errorf("upper perf east edge: %w", err)
	}
	lowerEast, err := Trim(lower.East)
	if err != nil {
		return CornerPair{}, fmt.Errorf("lower perf east edge: %w", err)
	}

	return CornerPair{
		Upper: Point{
			X: TolerantAverage(upperEast, cornerFraction, true),
			Y: TolerantAverage(upperNorth, cornerFraction, false),
		},
		Lower: Point{
			X: TolerantAverage(lowerEast, cornerFraction, true),
			Y: TolerantAverage(lowerSouth, cornerFraction, false),
		},
	}, nil
}
