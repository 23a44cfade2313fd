package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		// CatmullRom provides high quality for both up and down scaling
		return draw.CatmullRom
	}
}

// Resize resizes an RGB image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBImage, width, height int, interp Interpolation) *RGBImage {
	dst := NewRGBImage(width, height)
	interp.scaler().Scale(dst.RGBA, dst.Bounds(), img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ResizeAlpha stretches a coverage mask to the specified dimensions.
func ResizeAlpha(mask *image.Alpha, width, height int, interp Interpolation) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	interp.scaler().Scale(dst, dst.Bounds(), mask, mask.Bounds(), draw.Src, nil)
	return dst
}

// ResizeToWidth resizes an image to the specified width while maintaining
// aspect ratio. The height never drops below one pixel.
func ResizeToWidth(img *RGBImage, width int, interp Interpolation) *RGBImage {
	aspectRatio := float64(img.Width()) / float64(img.Height())
	height := int(float64(width) / aspectRatio)
	if height < 1 {
		height = 1
	}
	return Resize(img, width, height, interp)
}
