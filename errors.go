package img2ascii

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCharset is returned when a render is configured with a
	// character set that has no characters.
	ErrEmptyCharset = errors.New("character set is empty")

	// ErrInvalidBlockSize is returned when either block dimension is not
	// positive.
	ErrInvalidBlockSize = errors.New("block size must be positive")
)

// DecodeError reports that the input image could not be read: the file
// is missing, unreadable, or not in a supported format.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FontError reports that font data could not be parsed or a glyph could
// not be rasterized.
type FontError struct {
	Err error
}

func (e *FontError) Error() string {
	return fmt.Sprintf("font: %v", e.Err)
}

func (e *FontError) Unwrap() error { return e.Err }

// EncodeError reports that the output image could not be written. The
// output path is left as it was before the render.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
