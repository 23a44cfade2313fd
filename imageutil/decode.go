//go:build !gocv

package imageutil

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// decodeFile decodes the image at path, applying any EXIF orientation
// so the grid matches what an image viewer shows. imaging registers the
// PNG, JPEG, GIF, TIFF and BMP decoders.
func decodeFile(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
