package perf

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"perfskew/internal/imaging"
)

var (
	dark  = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	light = color.RGBA{R: 235, G: 235, B: 220, A: 255}
)

// newDarkImage creates a test image filled with the dark base color
func newDarkImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, dark)
		}
	}
	return img
}

func fillRect(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			img.Set(x, y, c)
		}
	}
}

func lightBase() imaging.RGBColor {
	return imaging.RGBColor{R: light.R, G: light.G, B: light.B}
}

func TestTraceRegion_Rectangle(t *testing.T) {
	// 20x20 light rectangle at (0,10)-(19,29) in a 100x100 frame.
	// Leak limits are 20 on both axes, comfortably above the extent.
	img := newDarkImage(100, 100)
	fillRect(img, 0, 10, 19, 29, light)

	em, err := TraceRegion(img, lightBase(), 5, 20, 0.10)
	if err != nil {
		t.Fatalf("TraceRegion failed: %v", err)
	}

	for x := 0; x < 100; x++ {
		wantN, wantS := Undefined, Undefined
		if x <= 19 {
			wantN, wantS = 10, 29
		}
		if em.North[x] != wantN {
			t.Errorf("North[%d] = %d, want %d", x, em.North[x], wantN)
		}
		if em.South[x] != wantS {
			t.Errorf("South[%d] = %d, want %d", x, em.South[x], wantS)
		}
	}
	for y := 0; y < 100; y++ {
		wantE, wantW := Undefined, Undefined
		if y >= 10 && y <= 29 {
			wantE, wantW = 19, 0
		}
		if em.East[y] != wantE {
			t.Errorf("East[%d] = %d, want %d", y, em.East[y], wantE)
		}
		if em.West[y] != wantW {
			t.Errorf("West[%d] = %d, want %d", y, em.West[y], wantW)
		}
	}
}

func TestTraceRegion_FillsAroundDirt(t *testing.T) {
	// A dark speck inside the region must not change the traced
	// boundary; the 4-connected fill flows around it.
	img := newDarkImage(100, 100)
	fillRect(img, 0, 10, 19, 29, light)
	img.Set(10, 20, dark)

	em, err := TraceRegion(img, lightBase(), 2, 15, 0.10)
	if err != nil {
		t.Fatalf("TraceRegion failed: %v", err)
	}

	for x := 0; x <= 19; x++ {
		if em.North[x] != 10 || em.South[x] != 29 {
			t.Errorf("column %d: N=%d S=%d, want 10/29", x, em.North[x], em.South[x])
		}
	}
	for y := 10; y <= 29; y++ {
		if em.East[y] != 19 || em.West[y] != 0 {
			t.Errorf("row %d: E=%d W=%d, want 19/0", y, em.East[y], em.West[y])
		}
	}
}

func TestTraceRegion_HorizontalLeak(t *testing.T) {
	// A full-width stripe: the fill escapes horizontally long before
	// it could escape vertically (stripe is only 11 rows tall).
	img := newDarkImage(200, 100)
	fillRect(img, 0, 20, 199, 30, light)

	_, err := TraceRegion(img, lightBase(), 10, 25, 0.10)
	if err == nil {
		t.Fatal("TraceRegion succeeded, want horizontal leak")
	}
	var leak *LeakError
	if !errors.As(err, &leak) {
		t.Fatalf("error = %v, want *LeakError", err)
	}
	if leak.Axis != AxisHorizontal {
		t.Errorf("leak axis = %s, want %s", leak.Axis, AxisHorizontal)
	}
}

func TestTraceRegion_VerticalLeak(t *testing.T) {
	img := newDarkImage(100, 200)
	fillRect(img, 20, 0, 30, 199, light)

	_, err := TraceRegion(img, lightBase(), 25, 10, 0.10)
	if err == nil {
		t.Fatal("TraceRegion succeeded, want vertical leak")
	}
	var leak *LeakError
	if !errors.As(err, &leak) {
		t.Fatalf("error = %v, want *LeakError", err)
	}
	if leak.Axis != AxisVertical {
		t.Errorf("leak axis = %s, want %s", leak.Axis, AxisVertical)
	}
}

func TestTraceRegion_SeedOffRegion(t *testing.T) {
	// Seeding on a pixel that doesn't match the base color produces an
	// entirely undefined edge map, not an error.
	img := newDarkImage(50, 50)
	fillRect(img, 10, 10, 20, 20, light)

	em, err := TraceRegion(img, lightBase(), 2, 2, 0.10)
	if err != nil {
		t.Fatalf("TraceRegion failed: %v", err)
	}
	if _, err := Trim(em.North); !errors.Is(err, ErrDegenerateEdge) {
		t.Errorf("Trim(North) error = %v, want ErrDegenerateEdge", err)
	}
}

func TestTraceRegion_ToleranceAdmitsNoise(t *testing.T) {
	// Slightly off-white pixels inside the region are still part of it
	// at the default tolerance.
	img := newDarkImage(100, 100)
	fillRect(img, 0, 10, 19, 29, light)
	noisy := color.RGBA{R: light.R - 15, G: light.G - 15, B: light.B - 10, A: 255}
	fillRect(img, 5, 15, 8, 18, noisy)

	em, err := TraceRegion(img, lightBase(), 2, 25, 0.10)
	if err != nil {
		t.Fatalf("TraceRegion failed: %v", err)
	}
	for x := 0; x <= 19; x++ {
		if em.North[x] != 10 {
			t.Errorf("North[%d] = %d, want 10", x, em.North[x])
		}
	}
}
