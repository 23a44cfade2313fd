package imageutil

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// Kernel is a 3x3 convolution kernel in row-major order.
type Kernel [9]float64

// SharpeningKernel returns a mild sharpening kernel. Its weights sum to
// one, so flat regions keep their color.
func SharpeningKernel() Kernel {
	return Kernel{
		0, -0.5, 0,
		-0.5, 3, -0.5,
		0, -0.5, 0,
	}
}

// GaussianKernel3x3 returns a 3x3 Gaussian blur kernel.
func GaussianKernel3x3() Kernel {
	return Kernel{
		1.0 / 16, 2.0 / 16, 1.0 / 16,
		2.0 / 16, 4.0 / 16, 2.0 / 16,
		1.0 / 16, 2.0 / 16, 1.0 / 16,
	}
}

// Convolve applies a convolution kernel to an RGB image. Border pixels
// are handled by replicating edge values, and the result starts at the
// origin.
func Convolve(img *RGBImage, kernel Kernel) *RGBImage {
	return RGBImageFromImage(imaging.Convolve3x3(img.RGBA, kernel, nil))
}

// Sharpen applies mild sharpening to an image.
func Sharpen(img *RGBImage) *RGBImage {
	return Convolve(img, SharpeningKernel())
}

// GaussianBlur applies a 3x3 Gaussian blur to an image.
func GaussianBlur(img *RGBImage) *RGBImage {
	return Convolve(img, GaussianKernel3x3())
}

// Filter is a pre-processing step applied to an image before it is
// divided into blocks.
type Filter int

const (
	FilterNone Filter = iota
	FilterSharpen
	FilterBlur
)

// ParseFilter parses a filter name as accepted on the command line.
func ParseFilter(name string) (Filter, error) {
	switch name {
	case "", "none":
		return FilterNone, nil
	case "sharpen":
		return FilterSharpen, nil
	case "blur":
		return FilterBlur, nil
	}
	return FilterNone, fmt.Errorf("unknown filter %q (want none, sharpen or blur)", name)
}

func (f Filter) String() string {
	switch f {
	case FilterSharpen:
		return "sharpen"
	case FilterBlur:
		return "blur"
	default:
		return "none"
	}
}

// Apply runs the filter over img. FilterNone returns img itself.
func (f Filter) Apply(img *RGBImage) *RGBImage {
	switch f {
	case FilterSharpen:
		return Sharpen(img)
	case FilterBlur:
		return GaussianBlur(img)
	default:
		return img
	}
}
