package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Load opens and decodes a frame image from disk.
//
// Decoding is delegated to the imaging library, which registers the
// common raster formats (PNG, JPEG, GIF, TIFF, BMP). The returned image
// is never cached: the batch driver reads every frame exactly once and
// each frame's buffer is scoped to that frame's processing.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	return img, nil
}

// Dimensions returns the width and height of an image in pixels.
func Dimensions(img image.Image) (width, height int) {
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy()
}
