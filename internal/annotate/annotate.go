// Package annotate renders diagnostic overlays onto analyzed frames:
// the traced perforation edge points, guide lines through the
// reference corners, and the file name and measured angle as text.
//
// The renderer is a best-effort diagnostic aid. It draws on a working
// copy of the frame and never feeds anything back into the analysis.
package annotate

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"perfskew/internal/perf"
)

// Overlay palette: north/south edge points red, east/west blue,
// horizontal corner guides magenta, vertical guides cyan, text green
// with a white offset copy.
var (
	edgeNS = color.RGBA{R: 255, A: 255}
	edgeEW = color.RGBA{B: 255, A: 255}
	lineY  = color.RGBA{R: 255, B: 255, A: 255}
	lineX  = color.RGBA{G: 255, B: 255, A: 255}
	textFG = color.RGBA{G: 128, A: 255}
	textBG = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Renderer writes annotated copies of frames into a fixed output
// directory. It implements frame.Renderer.
type Renderer struct {
	outDir string
}

// New builds a Renderer writing into outDir. The directory must
// already exist.
func New(outDir string) *Renderer {
	return &Renderer{outDir: outDir}
}

// Render draws the overlay onto a copy of img and saves it as
// "<outDir>/<basename>.png", returning the output path.
func (r *Renderer) Render(img image.Image, upper, lower *perf.EdgeMap, corners perf.CornerPair, angle float64, file string) (string, error) {
	working := clone.AsRGBA(img)

	drawEdges(working, upper)
	drawEdges(working, lower)
	drawCornerGuides(working, corners)

	name := filepath.Base(file)
	text := []string{
		fmt.Sprintf("File: %s", name),
		fmt.Sprintf("Angle: %.3f", angle),
	}
	bounds := working.Bounds()
	drawText(working, text, bounds.Dx()/10, bounds.Dy()/2)

	out := filepath.Join(r.outDir, name+".png")
	if err := imaging.Save(working, out); err != nil {
		return "", fmt.Errorf("failed to save annotated image: %w", err)
	}
	return out, nil
}

// drawEdges plots the traced boundary points. North/south edges are
// red, east/west edges blue.
func drawEdges(dst *image.RGBA, edges *perf.EdgeMap) {
	for x := range edges.North {
		if edges.North[x] != perf.Undefined {
			dst.Set(x, edges.North[x], edgeNS)
		}
		if edges.South[x] != perf.Undefined {
			dst.Set(x, edges.South[x], edgeNS)
		}
	}
	for y := range edges.East {
		if edges.East[y] != perf.Undefined {
			dst.Set(edges.East[y], y, edgeEW)
		}
		if edges.West[y] != perf.Undefined {
			dst.Set(edges.West[y], y, edgeEW)
		}
	}
}

// drawCornerGuides draws full-width horizontal lines through the two
// corner Y positions and full-height vertical lines through the two
// corner X positions, so a human can eyeball the measured skew.
func drawCornerGuides(dst *image.RGBA, corners perf.CornerPair) {
	bounds := dst.Bounds()
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		dst.Set(x, corners.Upper.Y, lineY)
		dst.Set(x, corners.Lower.Y, lineY)
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		dst.Set(corners.Upper.X, y, lineX)
		dst.Set(corners.Lower.X, y, lineX)
	}
}

// drawText renders the lines at (x, y) in green with a white copy
// offset by two pixels, so the text stays readable on any background.
func drawText(dst *image.RGBA, lines []string, x, y int) {
	face := basicfont.Face7x13
	drawTextColor(dst, lines, x, y, face, textFG)
	drawTextColor(dst, lines, x+2, y+2, face, textBG)
}

func drawTextColor(dst *image.RGBA, lines []string, x, y int, face font.Face, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	lineHeight := face.Metrics().Height.Ceil()
	for i, line := range lines {
		d.Dot = fixed.P(x, y+i*lineHeight)
		d.DrawString(line)
	}
}
