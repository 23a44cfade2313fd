package img2ascii

import "github.com/wbrown/img2ascii/imageutil"

// Mode selects how blocks are composited onto the output image.
type Mode int

const (
	// ModeLight draws black glyphs on a white background.
	ModeLight Mode = iota
	// ModeDark draws white glyphs on a black background.
	ModeDark
	// ModeColorful fills each cell with its block's mean color and draws
	// a black glyph over it. Pixels outside every cell stay black.
	ModeColorful
)

func (m Mode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	case ModeColorful:
		return "colorful"
	default:
		return "unknown"
	}
}

// Background is the color the output image starts out filled with.
func (m Mode) Background() imageutil.RGB {
	if m == ModeLight {
		return imageutil.White
	}
	return imageutil.Black
}

// DefaultGlyphColor is the glyph stroke color used when none is set.
func (m Mode) DefaultGlyphColor() imageutil.RGB {
	if m == ModeDark {
		return imageutil.White
	}
	return imageutil.Black
}

// colorful reports whether cells carry their block's mean color.
func (m Mode) colorful() bool {
	return m == ModeColorful
}
