package imageutil

import (
	"image"
	"testing"
)

func TestFilterKeepsFlatRegions(t *testing.T) {
	c := RGB{R: 120, G: 60, B: 200}
	img := CreateSolidImage(9, 7, c)

	for _, f := range []Filter{FilterNone, FilterSharpen, FilterBlur} {
		out := f.Apply(img)
		if n := CountPixels(out, out.Bounds(), c); n != 63 {
			t.Errorf("%s: expected flat image to stay flat, %d of 63 pixels kept", f, n)
		}
	}
}

func TestFilterNoneReturnsInput(t *testing.T) {
	img := CreateGradientImage(4, 4)
	if FilterNone.Apply(img) != img {
		t.Error("FilterNone should return its input")
	}
}

func TestSharpenIncreasesContrast(t *testing.T) {
	img := CreateSolidImage(8, 8, RGB{100, 100, 100})
	img.Fill(img.Bounds().Inset(2), RGB{150, 150, 150})

	sharp := Sharpen(img)
	// Just inside the bright square the edge is pushed brighter
	if got := sharp.GetRGB(2, 4).R; got <= 150 {
		t.Errorf("Sharpened edge should exceed 150, got %d", got)
	}
	blurred := GaussianBlur(img)
	if got := blurred.GetRGB(2, 4).R; got >= 150 {
		t.Errorf("Blurred edge should fall below 150, got %d", got)
	}
}

func TestConvolveEdgeValues(t *testing.T) {
	img := CreateSolidImage(8, 8, RGB{100, 100, 100})
	img.Fill(img.Bounds().Inset(2), RGB{150, 150, 150})

	tests := []struct {
		name   string
		kernel Kernel
		x, y   int
		want   uint8
	}{
		// 3*150 - 0.5*(100+150+150+150)
		{"sharpen edge", SharpeningKernel(), 2, 4, 175},
		// (100+300+150 + 200+600+300 + 100+300+150) / 16 = 137.5
		{"blur edge", GaussianKernel3x3(), 2, 4, 138},
		{"sharpen corner", SharpeningKernel(), 0, 0, 100},
		{"blur corner", GaussianKernel3x3(), 0, 0, 100},
		{"identity", Kernel{0, 0, 0, 0, 1, 0, 0, 0, 0}, 3, 3, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Convolve(img, tt.kernel)
			if got := out.GetRGB(tt.x, tt.y); got != (RGB{tt.want, tt.want, tt.want}) {
				t.Errorf("Convolve at (%d,%d) = %v, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestConvolveSubImage(t *testing.T) {
	img := CreateColorBarsImage(80, 10)
	red := img.SubImage(image.Rect(50, 0, 60, 10))

	out := GaussianBlur(red)
	if out.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Fatalf("Filtered image should start at the origin, got %v", out.Bounds())
	}
	// Borders replicate the sub image's own pixels, not its neighbours
	if n := CountPixels(out, out.Bounds(), RGB{R: 255}); n != 100 {
		t.Errorf("Expected 100 red pixels, got %d", n)
	}
}

func TestParseFilter(t *testing.T) {
	for name, want := range map[string]Filter{"": FilterNone, "none": FilterNone, "sharpen": FilterSharpen, "blur": FilterBlur} {
		got, err := ParseFilter(name)
		if err != nil || got != want {
			t.Errorf("ParseFilter(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseFilter("emboss"); err == nil {
		t.Error("Expected error for unknown filter")
	}
}
