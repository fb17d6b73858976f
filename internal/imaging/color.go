package imaging

import (
	"fmt"
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255. The alpha channel of the source
// image is ignored throughout the analysis pipeline; perforations are
// matched on color alone.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color in "#rrggbb" form, suitable for log and error
// messages.
func (c RGBColor) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// String implements fmt.Stringer for diagnostic output.
func (c RGBColor) String() string {
	return fmt.Sprintf("%s (%d,%d,%d)", c.Hex(), c.R, c.G, c.B)
}

// RGBAt reads the pixel at (x, y) as an 8-bit RGB triple.
//
// No bounds checking is performed; callers that take coordinates from
// external input should use SampleColor instead.
func RGBAt(img image.Image, x, y int) RGBColor {
	r, g, b, _ := img.At(x, y).RGBA()
	// Convert from 16-bit to 8-bit
	return RGBColor{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// SampleColor extracts the color at a specific pixel coordinate.
//
// Coordinates are 0-based with origin at top-left. Returns an error if
// (x, y) lies outside the image bounds.
func SampleColor(img image.Image, x, y int) (RGBColor, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return RGBColor{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	return RGBAt(img, x, y), nil
}

// SameColor reports whether two colors match within a percentage
// tolerance.
//
// The tolerance is a fraction in [0, 1] applied per channel: the colors
// match iff every channel differs by at most round(tolerance × 255).
// A tolerance of 0 requires an exact match; a tolerance of 1 matches
// any two colors.
func SameColor(c1, c2 RGBColor, tolerance float64) bool {
	limit := int(math.Round(tolerance * 255))
	if absDiff(c1.R, c2.R) > limit {
		return false
	}
	if absDiff(c1.G, c2.G) > limit {
		return false
	}
	if absDiff(c1.B, c2.B) > limit {
		return false
	}
	return true
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
