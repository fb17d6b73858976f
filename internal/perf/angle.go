package perf

import "math"

// Angle converts a corner pair into the frame's skew angle in degrees.
//
// The raw atan2 of the corner delta measures the direction of the line
// from the lower corner to the upper one; adding 90 normalizes it so a
// perfectly vertical corner pair (no skew) reads 0. The sign indicates
// the tilt direction. Values are not clamped and can range roughly
// ±90.
func Angle(c CornerPair) float64 {
	rise := float64(c.Upper.Y - c.Lower.Y)
	run := float64(c.Upper.X - c.Lower.X)
	return 90 + math.Atan2(rise, run)*180/math.Pi
}
