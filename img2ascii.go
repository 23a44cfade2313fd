// Package img2ascii converts images into ASCII art.
//
// An image is divided into fixed size blocks. Each block's mean
// brightness picks a character from a character set ordered dark to
// light, and the character is drawn back into the block's cell of an
// output image of the same size. Monochrome renders draw the glyphs on a
// plain white or black background; colorful renders first fill every
// cell with its block's mean color.
//
//	err := img2ascii.RenderMonochrome("in.png", "out.png",
//		img2ascii.CharacterSet(img2ascii.English),
//		img2ascii.WithBlockSize(8, 16), img2ascii.WithDarkMode(true))
//
// Pixels right of or below the last whole block are never sampled and
// keep the background color.
package img2ascii

// RenderMonochrome renders inputPath as glyphs over a plain background
// and writes the result to outputPath. Light mode (black on white) is
// the default; pass WithDarkMode(true) for white on black. A colorful
// mode passed in opts is ignored.
func RenderMonochrome(inputPath, outputPath string, charset CharacterSet, opts ...RendererOption) error {
	r := NewRenderer(append([]RendererOption{WithCharset(charset)}, opts...)...)
	if r.Mode == ModeColorful {
		r.Mode = ModeLight
	}
	_, err := r.RenderFile(inputPath, outputPath)
	return err
}

// RenderColorful renders inputPath as glyphs over cells filled with each
// block's mean color and writes the result to outputPath.
func RenderColorful(inputPath, outputPath string, charset CharacterSet, opts ...RendererOption) error {
	opts = append([]RendererOption{WithCharset(charset)}, opts...)
	r := NewRenderer(append(opts, WithMode(ModeColorful))...)
	_, err := r.RenderFile(inputPath, outputPath)
	return err
}
