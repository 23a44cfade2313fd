package img2ascii

import (
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"

	"github.com/wbrown/img2ascii/imageutil"
)

// Font is a parsed TrueType font ready to rasterize cell glyphs. A Font
// is immutable and may be shared between goroutines.
type Font struct {
	ttf  *truetype.Font
	name string

	// emPerHeight converts a pixel height measured from ascender to
	// descender into a font size in pixels per em.
	emPerHeight float64
	// ascentRatio is the share of that height above the baseline.
	ascentRatio float64
}

// metricsSize is the pixel size vertical metrics are measured at.
const metricsSize = 256

var (
	defaultFontOnce sync.Once
	defaultFont     *Font
	defaultFontErr  error
)

// DefaultFont returns the embedded Go Mono font. It is parsed once per
// process.
func DefaultFont() (*Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = ParseFont(gomono.TTF)
		if defaultFont != nil {
			defaultFont.name = "Go Mono"
		}
	})
	return defaultFont, defaultFontErr
}

// LoadFont loads a TrueType font from file
func LoadFont(path string) (*Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, &FontError{Err: err}
	}
	f, err := ParseFont(fontBytes)
	if err != nil {
		return nil, err
	}
	f.name = path
	return f, nil
}

// ParseFont parses TrueType font data. Malformed data is reported as a
// *FontError.
func ParseFont(data []byte) (*Font, error) {
	ttf, err := freetype.ParseFont(data)
	if err != nil {
		return nil, &FontError{Err: err}
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:              metricsSize,
		DPI:               72,
		GlyphCacheEntries: 1,
	})
	metrics := face.Metrics()
	face.Close()

	ascent := float64(metrics.Ascent) / 64
	height := ascent + float64(metrics.Descent)/64
	if height <= 0 {
		return nil, &FontError{Err: errors.New("font has no vertical extent")}
	}

	return &Font{
		ttf:         ttf,
		emPerHeight: metricsSize / height,
		ascentRatio: ascent / height,
	}, nil
}

// Name returns the font's origin: "Go Mono" for the embedded font, the
// file path for fonts loaded with LoadFont, empty otherwise.
func (f *Font) Name() string {
	return f.name
}

// rasterize renders r as a coverage mask that fits a cell of the given
// size with a one pixel margin on the right and bottom, so neighbouring
// glyphs never touch:
//
//  1. The font is sized so that ascender to descender spans exactly
//     cell.Height-1 pixels, and the baseline sits at the scaled ascent
//     below the top of the cell.
//
//  2. TrueType has a single size, so non-square cells are handled by
//     rendering at the cell height and stretching the mask horizontally
//     by (cell.Width-1)/(cell.Height-1).
//
//  3. The mask keeps freetype's anti-aliased coverage. It is blended
//     onto the output with draw.Over, the same way a text drawing call
//     would.
func (f *Font) rasterize(r rune, cell BlockSize) (*image.Alpha, error) {
	pxW, pxH := cell.Width-1, cell.Height-1
	if pxW <= 0 || pxH <= 0 {
		// One pixel cells leave no room for a glyph
		return image.NewAlpha(image.Rectangle{}), nil
	}

	size := float64(pxH) * f.emPerHeight
	baseline := int(math.Round(float64(pxH) * f.ascentRatio))

	scale := fixed.Int26_6(math.Round(size * 64))
	advance := f.ttf.HMetric(scale, f.ttf.Index(r)).AdvanceWidth
	width := max(advance.Ceil(), 1)

	mask := image.NewAlpha(image.Rect(0, 0, width, pxH))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f.ttf)
	ctx.SetFontSize(size)
	ctx.SetClip(mask.Bounds())
	ctx.SetDst(mask)
	ctx.SetSrc(image.Opaque)
	ctx.SetHinting(font.HintingNone)

	if _, err := ctx.DrawString(string(r), freetype.Pt(0, baseline)); err != nil {
		return nil, &FontError{Err: fmt.Errorf("rasterize %q: %w", r, err)}
	}

	if pxW != pxH {
		stretched := max(int(math.Round(float64(width)*float64(pxW)/float64(pxH))), 1)
		mask = imageutil.ResizeAlpha(mask, stretched, pxH, imageutil.InterpolationLinear)
	}
	return mask, nil
}
