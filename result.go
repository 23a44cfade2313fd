package img2ascii

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/wbrown/img2ascii/imageutil"
)

// Cell is the outcome of rendering one block.
type Cell struct {
	Rune rune
	FG   imageutil.RGB // glyph stroke color
	BG   imageutil.RGB // cell background: the block mean in colorful mode
	Mean float64       // mean luminance of the block
}

// Result is a finished render.
type Result struct {
	Plan  Plan
	Cells [][]Cell // indexed [row][col]
	Image *imageutil.RGBImage
}

// Text returns the character grid, one line per block row.
func (res *Result) Text() string {
	var sb strings.Builder
	for _, row := range res.Cells {
		for _, cell := range row {
			sb.WriteRune(cell.Rune)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteANSI writes the character grid with terminal colors in the given
// profile. Adjacent cells sharing both colors are written as one styled
// run, and colors are reset at the end of every line.
func (res *Result) WriteANSI(w io.Writer, profile termenv.Profile) error {
	bw := bufio.NewWriter(w)
	var run strings.Builder

	for _, row := range res.Cells {
		var fg, bg imageutil.RGB
		for i, cell := range row {
			if i > 0 && (cell.FG != fg || cell.BG != bg) {
				bw.WriteString(styled(profile, run.String(), fg, bg))
				run.Reset()
			}
			fg, bg = cell.FG, cell.BG
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			bw.WriteString(styled(profile, run.String(), fg, bg))
			run.Reset()
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func styled(profile termenv.Profile, s string, fg, bg imageutil.RGB) string {
	if profile == termenv.Ascii {
		return s
	}
	return profile.String(s).
		Foreground(profile.Color(hexColor(fg))).
		Background(profile.Color(hexColor(bg))).
		String()
}

func hexColor(c imageutil.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
