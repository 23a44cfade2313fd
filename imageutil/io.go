package imageutil

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/renameio/v2"
)

// LoadImage loads an image from the specified path.
// Supports PNG, JPEG, GIF, TIFF, BMP and WebP formats.
func LoadImage(path string) (*RGBImage, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return RGBImageFromImage(img), nil
}

// SaveImage saves an image to the specified path.
// Format is determined by file extension (png, jpg/jpeg, gif, tif/tiff,
// bmp); any other extension is an error and nothing is written.
//
// The image is encoded into a pending file next to path that atomically
// replaces it once complete. A failed save never leaves a partial file or
// touches an existing one, and an existing file keeps its permissions.
func SaveImage(img image.Image, path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("unsupported output format %q: %w",
			filepath.Ext(path), err)
	}

	f, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Cleanup()

	if err := imaging.Encode(f, img, format, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := f.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	return nil
}
