package img2ascii

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/wbrown/img2ascii/imageutil"
)

// GlyphAtlas holds one pre-rendered coverage mask per character of a
// character set, all sized for the same cell. Rendering every glyph up
// front means a bad font fails the run before any pixel is drawn, and
// leaves nothing mutable to share once the walk starts.
type GlyphAtlas struct {
	cell   BlockSize
	font   *Font
	glyphs map[rune]*image.Alpha
}

// NewGlyphAtlas rasterizes every distinct character of charset for
// cells of the given size.
func NewGlyphAtlas(f *Font, charset CharacterSet, cell BlockSize) (*GlyphAtlas, error) {
	if err := cell.Validate(); err != nil {
		return nil, err
	}
	a := &GlyphAtlas{
		cell:   cell,
		font:   f,
		glyphs: make(map[rune]*image.Alpha, len(charset)),
	}
	for _, r := range charset {
		if _, done := a.glyphs[r]; done {
			continue
		}
		mask, err := f.rasterize(r, cell)
		if err != nil {
			return nil, err
		}
		a.glyphs[r] = mask
	}
	return a, nil
}

// Mask returns the coverage mask for r.
func (a *GlyphAtlas) Mask(r rune) (*image.Alpha, bool) {
	mask, ok := a.glyphs[r]
	return mask, ok
}

// Draw blends the glyph for r in color c onto dst with its cell's top
// left corner at origin. Nothing outside the cell is touched. Characters
// missing from the atlas draw nothing.
func (a *GlyphAtlas) Draw(dst *imageutil.RGBImage, origin image.Point, r rune, c imageutil.RGB) {
	mask, ok := a.glyphs[r]
	if !ok {
		return
	}
	cellRect := image.Rectangle{
		Min: origin,
		Max: origin.Add(image.Pt(a.cell.Width, a.cell.Height)),
	}
	dr := mask.Bounds().Add(origin).Intersect(cellRect)
	if dr.Empty() {
		return
	}
	draw.DrawMask(dst.RGBA, dr, &image.Uniform{C: c.ToColor()}, image.Point{},
		mask, dr.Min.Sub(origin), draw.Over)
}

// matches reports whether the atlas was built for the given inputs.
func (a *GlyphAtlas) matches(f *Font, charset CharacterSet, cell BlockSize) bool {
	if a == nil || a.font != f || a.cell != cell {
		return false
	}
	for _, r := range charset {
		if _, ok := a.glyphs[r]; !ok {
			return false
		}
	}
	return true
}
