package annotate

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"perfskew/internal/perf"
)

func TestRender(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			src.Set(x, y, color.RGBA{R: 30, G: 30, B: 40, A: 255})
		}
	}

	upper := perf.NewEdgeMap(100, 100)
	upper.North[5] = 10
	upper.East[12] = 30
	lower := perf.NewEdgeMap(100, 100)
	lower.South[5] = 90

	corners := perf.CornerPair{
		Upper: perf.Point{X: 50, Y: 20},
		Lower: perf.Point{X: 50, Y: 80},
	}

	outDir := t.TempDir()
	out, err := New(outDir).Render(src, upper, lower, corners, -1.234, "/somewhere/reel_0042.tif")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := filepath.Join(outDir, "reel_0042.tif.png")
	if out != want {
		t.Errorf("output path = %q, want %q", out, want)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("annotated file missing: %v", err)
	}

	annotated, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("failed to reopen annotated image: %v", err)
	}
	if annotated.Bounds().Dx() != 100 || annotated.Bounds().Dy() != 100 {
		t.Errorf("annotated size = %v, want 100x100", annotated.Bounds())
	}

	// North edge point at (5,10) must be red.
	r, g, b, _ := annotated.At(5, 10).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("edge point color = (%d,%d,%d), want (255,0,0)", r>>8, g>>8, b>>8)
	}
	// Corner guide row at y=20 must be magenta away from the guides'
	// vertical crossings.
	r, g, b, _ = annotated.At(3, 20).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 255 {
		t.Errorf("guide line color = (%d,%d,%d), want (255,0,255)", r>>8, g>>8, b>>8)
	}

	// The source image must be untouched.
	sr, sg, sb, _ := src.At(5, 10).RGBA()
	if sr>>8 != 30 || sg>>8 != 30 || sb>>8 != 40 {
		t.Error("Render mutated the source image")
	}
}
