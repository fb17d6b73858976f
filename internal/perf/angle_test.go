package perf

import (
	"math"
	"testing"
)

func TestAngle(t *testing.T) {
	tests := []struct {
		name    string
		corners CornerPair
		want    float64
	}{
		{
			"vertical pair reads zero",
			CornerPair{Upper: Point{X: 50, Y: 10}, Lower: Point{X: 50, Y: 290}},
			0,
		},
		{
			"forty-five degrees",
			CornerPair{Upper: Point{X: 10, Y: 0}, Lower: Point{X: 0, Y: 10}},
			45,
		},
		{
			"negative tilt",
			CornerPair{Upper: Point{X: 0, Y: 0}, Lower: Point{X: 10, Y: 10}},
			-45,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Angle(tt.corners)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Angle = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestAngle_SmallSkewSign(t *testing.T) {
	// Lower corner shifted right of the upper corner tilts the
	// reference line and must read negative.
	corners := CornerPair{Upper: Point{X: 38, Y: 10}, Lower: Point{X: 47, Y: 290}}
	got := Angle(corners)
	if got >= 0 {
		t.Fatalf("Angle = %g, want negative", got)
	}
	want := 90 + math.Atan2(10-290, 38-47)*180/math.Pi
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Angle = %g, want %g", got, want)
	}
}
