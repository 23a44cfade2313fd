package img2ascii

import (
	"fmt"
	"image"
)

// BlockSize is the size in pixels of the block sampled for, and the cell
// drawn for, one character.
type BlockSize struct {
	Width  int
	Height int
}

// DefaultBlockSize is used when no block size is configured.
var DefaultBlockSize = BlockSize{Width: 12, Height: 12}

// Validate reports whether both dimensions are positive.
func (b BlockSize) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidBlockSize, b.Width, b.Height)
	}
	return nil
}

func (b BlockSize) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Plan is the grid of blocks laid over an image. Only whole blocks are
// planned: pixels right of Cols*Block.Width or below Rows*Block.Height
// are never sampled or drawn.
type Plan struct {
	Cols  int
	Rows  int
	Block BlockSize
}

// NewPlan lays blocks of the given size over a width x height image.
// An image smaller than one block yields an empty plan.
func NewPlan(width, height int, block BlockSize) Plan {
	return Plan{
		Cols:  width / block.Width,
		Rows:  height / block.Height,
		Block: block,
	}
}

// Empty reports whether the plan has no blocks.
func (p Plan) Empty() bool {
	return p.Cols == 0 || p.Rows == 0
}

// Cell returns the pixel rectangle of the block at (col, row).
func (p Plan) Cell(col, row int) image.Rectangle {
	x, y := col*p.Block.Width, row*p.Block.Height
	return image.Rect(x, y, x+p.Block.Width, y+p.Block.Height)
}

// Covered returns the pixel rectangle spanned by all blocks.
func (p Plan) Covered() image.Rectangle {
	return p.RowsRect(0, p.Rows)
}

// RowsRect returns the pixel rectangle spanned by block rows
// [start, end).
func (p Plan) RowsRect(start, end int) image.Rectangle {
	return image.Rect(0, start*p.Block.Height, p.Cols*p.Block.Width, end*p.Block.Height)
}

// stripe is a contiguous range [start, end) of block rows.
type stripe struct {
	start, end int
}

// stripes splits the block rows into at most n contiguous ranges whose
// sizes differ by at most one row.
func (p Plan) stripes(n int) []stripe {
	n = min(n, p.Rows)
	if n < 1 {
		return nil
	}
	out := make([]stripe, 0, n)
	base, extra := p.Rows/n, p.Rows%n
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < extra {
			size++
		}
		out = append(out, stripe{start: start, end: start + size})
		start += size
	}
	return out
}
