package img2ascii

import (
	"image"

	"github.com/wbrown/img2ascii/imageutil"
)

// MeanLuminance returns the mean of all three channels over every pixel
// of r, in [0, 255]. Pixels of r outside the image are ignored; an empty
// region has mean 0.
func MeanLuminance(img *imageutil.RGBImage, r image.Rectangle) float64 {
	sumR, sumG, sumB, n := channelSums(img, r)
	if n == 0 {
		return 0
	}
	return float64(sumR+sumG+sumB) / float64(3*n)
}

// MeanChannels returns the per-channel mean color over every pixel of r.
func MeanChannels(img *imageutil.RGBImage, r image.Rectangle) (float64, float64, float64) {
	sumR, sumG, sumB, n := channelSums(img, r)
	if n == 0 {
		return 0, 0, 0
	}
	count := float64(n)
	return float64(sumR) / count, float64(sumG) / count, float64(sumB) / count
}

// channelSums walks the backing pixel slice directly; At and RGBAAt box
// every pixel through color.Color.
func channelSums(img *imageutil.RGBImage, r image.Rectangle) (sumR, sumG, sumB uint64, n int) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return 0, 0, 0, 0
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			sumR += uint64(img.Pix[i])
			sumG += uint64(img.Pix[i+1])
			sumB += uint64(img.Pix[i+2])
			i += 4
		}
	}
	return sumR, sumG, sumB, r.Dx() * r.Dy()
}
