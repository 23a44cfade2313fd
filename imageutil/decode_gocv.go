//go:build gocv

package imageutil

import (
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"
)

// decodeFile decodes the image at path with OpenCV. Build with
// -tags gocv to use it; OpenCV reads a few formats the pure Go
// decoders do not (JPEG 2000, OpenEXR, PPM).
func decodeFile(path string) (image.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	mat := gocv.IMRead(path, gocv.IMReadColor)
	defer func(mat *gocv.Mat) {
		if err := mat.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "Error closing image")
		}
	}(&mat)
	if mat.Empty() {
		return nil, fmt.Errorf("could not read image from %s", path)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	return img, nil
}
