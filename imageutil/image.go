// Package imageutil provides the pixel grid used by the ASCII renderer
// together with the decode, encode and resize collaborators around it.
package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

var (
	// Black is the background of dark and colorful renders.
	Black = RGB{0, 0, 0}
	// White is the background of light renders.
	White = RGB{255, 255, 255}
)

// ToColor converts RGB to color.RGBA for use with standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBFromColor converts a color.Color to RGB, dropping alpha. The
// channels are taken un-premultiplied so a translucent pixel keeps its
// hue instead of darkening towards black.
func RGBFromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// RGBImage is a width x height grid of RGB pixels backed by an opaque
// image.RGBA. It is the pixel grid of both the input and the output of
// a render.
type RGBImage struct {
	*image.RGBA
}

// NewRGBImage creates a new black RGBImage with the specified dimensions.
func NewRGBImage(width, height int) *RGBImage {
	img := &RGBImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	img.Fill(img.Bounds(), Black)
	return img
}

// NewFilledRGBImage creates a new RGBImage with every pixel set to c.
func NewFilledRGBImage(width, height int, c RGB) *RGBImage {
	img := &RGBImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	img.Fill(img.Bounds(), c)
	return img
}

// RGBImageFromImage converts any image.Image to an RGBImage anchored at
// the origin. Alpha is discarded.
func RGBImageFromImage(img image.Image) *RGBImage {
	bounds := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	rgb := &RGBImage{
		RGBA: image.NewRGBA(nrgba.Bounds()),
	}
	for i := 0; i+3 < len(nrgba.Pix); i += 4 {
		rgb.Pix[i] = nrgba.Pix[i]
		rgb.Pix[i+1] = nrgba.Pix[i+1]
		rgb.Pix[i+2] = nrgba.Pix[i+2]
		rgb.Pix[i+3] = 255
	}
	return rgb
}

// Width returns the image width.
func (img *RGBImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y).
func (img *RGBImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the RGB value at (x, y).
func (img *RGBImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, c.ToColor())
}

// Fill sets every pixel of r that lies inside the image to c.
func (img *RGBImage) Fill(r image.Rectangle, c RGB) {
	draw.Draw(img.RGBA, r.Intersect(img.Bounds()),
		&image.Uniform{C: c.ToColor()}, image.Point{}, draw.Src)
}

// SubImage returns a view of the pixels in r. The view shares pixel
// memory with img but writes through it are limited to r, which lets
// disjoint regions be handed to different goroutines.
func (img *RGBImage) SubImage(r image.Rectangle) *RGBImage {
	return &RGBImage{RGBA: img.RGBA.SubImage(r).(*image.RGBA)}
}

// Clone creates a deep copy of the image.
func (img *RGBImage) Clone() *RGBImage {
	clone := &RGBImage{
		RGBA: image.NewRGBA(img.Bounds()),
	}
	draw.Draw(clone.RGBA, clone.Bounds(), img.RGBA, img.Bounds().Min, draw.Src)
	return clone
}
