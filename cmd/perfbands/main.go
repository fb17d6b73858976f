// Command perfbands renders the leftmost columns of a series of frame
// images side by side into a single strip, with markers at the
// suggested perf probe rows. The strip makes the perforation edges of
// a whole reel visible at a glance, which helps when tweaking the
// -perf-line-pct parameter of perfskew.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
)

func main() {
	height := flag.Int("height", 480, "height of the output strip in pixels")
	bandWidth := flag.Int("band-width", 2, "columns taken from the left edge of each frame")
	perfLinePct := flag.Float64("perf-line-pct", 0.10, "fraction from top and bottom for the suggested perf lines")
	out := flag.String("out", "perf_bands.png", "output file")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: perfbands [options] image...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	strip := imaging.New(len(files)*(*bandWidth), *height, color.NRGBA{A: 255})

	x := 0
	for _, file := range files {
		img, err := imaging.Open(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			os.Exit(1)
		}

		// Scale to the strip height preserving the display aspect
		// ratio, then take the left band.
		bounds := img.Bounds()
		dar := float64(bounds.Dx()) / float64(bounds.Dy())
		resized := imaging.Resize(img, int(dar*float64(*height)), *height, imaging.Lanczos)
		band := imaging.Crop(resized, image.Rect(0, 0, *bandWidth, *height))
		strip = imaging.Paste(strip, band, image.Pt(x, 0))
		x += *bandWidth
	}

	red := color.NRGBA{R: 255, A: 255}
	drawHLine(strip, int(float64(*height)**perfLinePct), red)
	drawHLine(strip, int(float64(*height)*(1-*perfLinePct)), red)

	if err := imaging.Save(strip, *out); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", *out, err)
		os.Exit(1)
	}
}

func drawHLine(dst *image.NRGBA, y int, c color.NRGBA) {
	for x := dst.Bounds().Min.X; x < dst.Bounds().Max.X; x++ {
		dst.SetNRGBA(x, y, c)
	}
}
