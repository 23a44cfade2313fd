package img2ascii

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/wbrown/img2ascii/imageutil"
)

func TestDefaultFontIsShared(t *testing.T) {
	f1, err := DefaultFont()
	if err != nil {
		t.Fatalf("DefaultFont failed: %v", err)
	}
	f2, _ := DefaultFont()
	if f1 != f2 {
		t.Error("DefaultFont should return the same font every time")
	}
	if f1.Name() != "Go Mono" {
		t.Errorf("Expected Go Mono, got %q", f1.Name())
	}
	if f1.ascentRatio <= 0 || f1.ascentRatio >= 1 {
		t.Errorf("Ascent ratio should be in (0, 1), got %v", f1.ascentRatio)
	}
}

func TestParseFontErrors(t *testing.T) {
	var fontErr *FontError

	if _, err := ParseFont([]byte("not a font")); !errors.As(err, &fontErr) {
		t.Errorf("Expected *FontError for malformed data, got %T", err)
	}

	if _, err := LoadFont(filepath.Join(t.TempDir(), "missing.ttf")); !errors.As(err, &fontErr) {
		t.Errorf("Expected *FontError for missing file, got %T", err)
	}
}

func TestLoadFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gomono.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFont(path)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	if f.Name() != path {
		t.Errorf("Expected name %q, got %q", path, f.Name())
	}
}

func TestGlyphAtlasMasks(t *testing.T) {
	f, err := DefaultFont()
	if err != nil {
		t.Fatal(err)
	}

	for _, cell := range []BlockSize{{12, 12}, {8, 16}, {16, 8}, {3, 3}} {
		atlas, err := NewGlyphAtlas(f, CharacterSet("AaM@"), cell)
		if err != nil {
			t.Fatalf("%v: NewGlyphAtlas failed: %v", cell, err)
		}
		for _, r := range "AaM@" {
			mask, ok := atlas.Mask(r)
			if !ok {
				t.Fatalf("%v: missing glyph %q", cell, r)
			}
			b := mask.Bounds()
			if b.Min != (image.Point{}) || b.Dy() != cell.Height-1 || b.Dx() < 1 {
				t.Errorf("%v: glyph %q has bounds %v", cell, r, b)
			}
		}
	}
}

func TestGlyphAtlasDeduplicates(t *testing.T) {
	f, _ := DefaultFont()
	atlas, err := NewGlyphAtlas(f, CharacterSet("AAaA"), DefaultBlockSize)
	if err != nil {
		t.Fatal(err)
	}
	if len(atlas.glyphs) != 2 {
		t.Errorf("Expected 2 distinct glyphs, got %d", len(atlas.glyphs))
	}
}

func TestGlyphAtlasOnePixelCell(t *testing.T) {
	f, _ := DefaultFont()
	atlas, err := NewGlyphAtlas(f, CharacterSet("A"), BlockSize{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	img := imageutil.NewFilledRGBImage(1, 1, imageutil.White)
	atlas.Draw(img, image.Point{}, 'A', imageutil.Black)
	if img.GetRGB(0, 0) != imageutil.White {
		t.Error("One pixel cells should have no room for a glyph")
	}
}

func TestGlyphAtlasInvalidCell(t *testing.T) {
	f, _ := DefaultFont()
	if _, err := NewGlyphAtlas(f, CharacterSet("A"), BlockSize{0, 4}); !errors.Is(err, ErrInvalidBlockSize) {
		t.Errorf("Expected ErrInvalidBlockSize, got %v", err)
	}
}

func TestGlyphAtlasDrawStaysInCell(t *testing.T) {
	f, _ := DefaultFont()
	cell := BlockSize{10, 14}
	atlas, err := NewGlyphAtlas(f, CharacterSet("@W "), cell)
	if err != nil {
		t.Fatal(err)
	}

	img := imageutil.NewFilledRGBImage(30, 42, imageutil.White)
	cellRect := image.Rect(10, 14, 20, 28)
	atlas.Draw(img, cellRect.Min, '@', imageutil.Black)

	inside := 0
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if img.GetRGB(x, y) == imageutil.White {
				continue
			}
			if !image.Pt(x, y).In(cellRect) {
				t.Fatalf("Glyph drawn outside its cell at (%d, %d)", x, y)
			}
			inside++
		}
	}
	if inside == 0 {
		t.Error("Expected the glyph to cover some pixels")
	}

	// Right column and bottom row of the cell are left as margin
	right := image.Rect(cellRect.Max.X-1, cellRect.Min.Y, cellRect.Max.X, cellRect.Max.Y)
	bottom := image.Rect(cellRect.Min.X, cellRect.Max.Y-1, cellRect.Max.X, cellRect.Max.Y)
	if n := imageutil.CountPixels(img, right, imageutil.White); n != right.Dx()*right.Dy() {
		t.Errorf("Right margin should be untouched, %d pixels changed", right.Dx()*right.Dy()-n)
	}
	if n := imageutil.CountPixels(img, bottom, imageutil.White); n != bottom.Dx()*bottom.Dy() {
		t.Errorf("Bottom margin should be untouched, %d pixels changed", bottom.Dx()*bottom.Dy()-n)
	}

	// Space has no ink
	before := img.Clone()
	atlas.Draw(img, image.Point{}, ' ', imageutil.Black)
	if imageutil.CalculateMSE(before, img) != 0 {
		t.Error("Drawing a space should not change any pixel")
	}

	// Unknown characters draw nothing
	atlas.Draw(img, image.Point{}, 'Q', imageutil.Black)
	if imageutil.CalculateMSE(before, img) != 0 {
		t.Error("Drawing a character missing from the atlas should not change any pixel")
	}
}
