package img2ascii

import (
	"context"
	"image"
	"io"
	"log/slog"
	"math"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wbrown/img2ascii/imageutil"
)

// Renderer encapsulates all state for ASCII image conversion.
// A Renderer may be reused for many images; the glyph atlas built for
// the first render is kept and reused as long as the font, character
// set and block size stay the same.
type Renderer struct {
	// Configuration options
	BlockSize   BlockSize
	Mode        Mode
	GlyphColor  *imageutil.RGB // nil selects the mode's default
	Workers     int            // 0 uses GOMAXPROCS
	TargetWidth int            // input is scaled to this many pixels wide; 0 keeps it
	Prefilter   imageutil.Filter

	charset CharacterSet
	font    *Font
	fontErr error
	logger  *slog.Logger

	// Atlas cache and stats (private)
	mu          sync.Mutex
	atlas       *GlyphAtlas
	atlasHits   int
	atlasMisses int
	walkTime    time.Duration
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a new Renderer with the given options.
// Default values: BlockSize=12x12, Mode=ModeLight, charset=English,
// font=Go Mono, Workers=1, TargetWidth=0, Prefilter=FilterNone.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		BlockSize: DefaultBlockSize,
		Mode:      ModeLight,
		Workers:   1,
		charset:   CharacterSet(English),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	// Apply options
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithBlockSize sets the width and height in pixels of each block.
func WithBlockSize(width, height int) RendererOption {
	return func(r *Renderer) {
		r.BlockSize = BlockSize{Width: width, Height: height}
	}
}

// WithMode sets the compositing mode.
func WithMode(mode Mode) RendererOption {
	return func(r *Renderer) {
		r.Mode = mode
	}
}

// WithDarkMode selects white on black (true) or black on white (false)
// monochrome rendering.
func WithDarkMode(dark bool) RendererOption {
	return func(r *Renderer) {
		if dark {
			r.Mode = ModeDark
		} else {
			r.Mode = ModeLight
		}
	}
}

// WithCharset sets the characters blocks are mapped onto, darkest first.
func WithCharset(charset CharacterSet) RendererOption {
	return func(r *Renderer) {
		r.charset = charset
	}
}

// WithFont sets the font glyphs are drawn with.
func WithFont(f *Font) RendererOption {
	return func(r *Renderer) {
		r.font = f
		r.fontErr = nil
	}
}

// WithFontFile loads the font glyphs are drawn with from a TrueType
// file. A load failure is reported by the first render.
func WithFontFile(path string) RendererOption {
	return func(r *Renderer) {
		r.font, r.fontErr = LoadFont(path)
	}
}

// WithGlyphColor overrides the glyph stroke color of every mode.
func WithGlyphColor(c imageutil.RGB) RendererOption {
	return func(r *Renderer) {
		r.GlyphColor = &c
	}
}

// WithWorkers sets how many goroutines walk the block grid. Values of
// one or less than zero walk on the calling goroutine; 0 uses GOMAXPROCS.
func WithWorkers(n int) RendererOption {
	return func(r *Renderer) {
		r.Workers = n
	}
}

// WithTargetWidth scales the input to the given pixel width, keeping its
// aspect ratio, before blocks are planned.
func WithTargetWidth(width int) RendererOption {
	return func(r *Renderer) {
		r.TargetWidth = width
	}
}

// WithPrefilter sets a filter applied to the input, after scaling and
// before blocks are sampled.
func WithPrefilter(f imageutil.Filter) RendererOption {
	return func(r *Renderer) {
		r.Prefilter = f
	}
}

// WithLogger sets the logger used for debug output. Renderers are silent
// by default.
func WithLogger(logger *slog.Logger) RendererOption {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Charset returns the character set blocks are mapped onto.
func (r *Renderer) Charset() CharacterSet {
	return r.charset
}

// Validate checks the configuration without touching any file.
func (r *Renderer) Validate() error {
	if len(r.charset) == 0 {
		return ErrEmptyCharset
	}
	if err := r.BlockSize.Validate(); err != nil {
		return err
	}
	return r.fontErr
}

func (r *Renderer) glyphColor() imageutil.RGB {
	if r.GlyphColor != nil {
		return *r.GlyphColor
	}
	return r.Mode.DefaultGlyphColor()
}

func (r *Renderer) workers() int {
	if r.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return max(r.Workers, 1)
}

// glyphAtlas returns the atlas for the current font, character set and
// block size, building it on first use.
func (r *Renderer) glyphAtlas() (*GlyphAtlas, error) {
	f := r.font
	if f == nil {
		var err error
		if f, err = DefaultFont(); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.atlas.matches(f, r.charset, r.BlockSize) {
		r.atlasHits++
		return r.atlas, nil
	}
	r.atlasMisses++

	start := time.Now()
	atlas, err := NewGlyphAtlas(f, r.charset, r.BlockSize)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("built glyph atlas",
		"font", f.Name(),
		"glyphs", len(atlas.glyphs),
		"cell", r.BlockSize.String(),
		"elapsed", time.Since(start))
	r.atlas = atlas
	return atlas, nil
}

// Render converts an in-memory image. The returned Result holds the
// output image and the character picked for every block.
func (r *Renderer) Render(img image.Image) (*Result, error) {
	return r.RenderContext(context.Background(), img)
}

// RenderContext is Render with cancellation. The context is checked
// before each block row; a cancelled render returns ctx.Err() and no
// Result.
func (r *Renderer) RenderContext(ctx context.Context, img image.Image) (*Result, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	atlas, err := r.glyphAtlas()
	if err != nil {
		return nil, err
	}
	return r.render(ctx, toRGBImage(img), atlas)
}

// RenderFile decodes inputPath, renders it and encodes the result to
// outputPath, whose extension selects the output format.
func (r *Renderer) RenderFile(inputPath, outputPath string) (*Result, error) {
	return r.RenderFileContext(context.Background(), inputPath, outputPath)
}

// RenderFileContext is RenderFile with cancellation. Nothing is written
// to outputPath unless every step before encoding succeeds.
func (r *Renderer) RenderFileContext(ctx context.Context, inputPath, outputPath string) (*Result, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	// Glyphs are rasterized before decoding so a bad font fails fast
	atlas, err := r.glyphAtlas()
	if err != nil {
		return nil, err
	}

	src, err := imageutil.LoadImage(inputPath)
	if err != nil {
		return nil, &DecodeError{Path: inputPath, Err: err}
	}
	r.logger.Debug("decoded input", "path", inputPath,
		"width", src.Width(), "height", src.Height())

	result, err := r.render(ctx, src, atlas)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := imageutil.SaveImage(result.Image, outputPath); err != nil {
		return nil, &EncodeError{Path: outputPath, Err: err}
	}
	r.logger.Debug("encoded output", "path", outputPath, "elapsed", time.Since(start))
	return result, nil
}

func (r *Renderer) render(ctx context.Context, src *imageutil.RGBImage, atlas *GlyphAtlas) (*Result, error) {
	if r.TargetWidth > 0 && r.TargetWidth != src.Width() {
		src = imageutil.ResizeToWidth(src, r.TargetWidth, imageutil.InterpolationArea)
		r.logger.Debug("scaled input", "width", src.Width(), "height", src.Height())
	}
	if r.Prefilter != imageutil.FilterNone {
		src = r.Prefilter.Apply(src)
		r.logger.Debug("filtered input", "filter", r.Prefilter.String())
	}

	plan := NewPlan(src.Width(), src.Height(), r.BlockSize)
	dst := imageutil.NewFilledRGBImage(src.Width(), src.Height(), r.Mode.Background())
	cells := make([][]Cell, plan.Rows)
	for row := range cells {
		cells[row] = make([]Cell, plan.Cols)
	}

	workers := r.workers()
	r.logger.Debug("planned blocks",
		"cols", plan.Cols,
		"rows", plan.Rows,
		"block", plan.Block.String(),
		"mode", r.Mode.String(),
		"workers", workers)

	start := time.Now()
	if !plan.Empty() {
		if err := r.walk(ctx, src, dst, plan, atlas, cells, workers); err != nil {
			return nil, err
		}
	}
	elapsed := time.Since(start)
	r.mu.Lock()
	r.walkTime += elapsed
	r.mu.Unlock()
	r.logger.Debug("walked blocks", "elapsed", elapsed)

	return &Result{Plan: plan, Cells: cells, Image: dst}, nil
}

// walk renders every block of plan. With more than one worker the block
// rows are split into stripes, and each goroutine draws only through a
// sub image covering its own stripe.
func (r *Renderer) walk(ctx context.Context, src, dst *imageutil.RGBImage, plan Plan,
	atlas *GlyphAtlas, cells [][]Cell, workers int) error {
	stripes := plan.stripes(workers)
	if len(stripes) <= 1 {
		return r.walkRows(ctx, src, dst, plan, atlas, cells, 0, plan.Rows)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range stripes {
		g.Go(func() error {
			view := dst.SubImage(plan.RowsRect(s.start, s.end))
			return r.walkRows(gctx, src, view, plan, atlas, cells, s.start, s.end)
		})
	}
	return g.Wait()
}

func (r *Renderer) walkRows(ctx context.Context, src, dst *imageutil.RGBImage, plan Plan,
	atlas *GlyphAtlas, cells [][]Cell, start, end int) error {
	glyph := r.glyphColor()
	for row := start; row < end; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for col := 0; col < plan.Cols; col++ {
			cells[row][col] = r.renderBlock(src, dst, atlas, plan.Cell(col, row), glyph)
		}
	}
	return nil
}

// renderBlock samples one block of src and composites its cell onto dst.
func (r *Renderer) renderBlock(src, dst *imageutil.RGBImage, atlas *GlyphAtlas,
	rect image.Rectangle, glyph imageutil.RGB) Cell {
	mean := MeanLuminance(src, rect)
	ch := r.charset.At(mean)

	bg := r.Mode.Background()
	if r.Mode.colorful() {
		mr, mg, mb := MeanChannels(src, rect)
		bg = imageutil.RGB{R: channel(mr), G: channel(mg), B: channel(mb)}
		dst.Fill(rect, bg)
	}
	atlas.Draw(dst, rect.Min, ch, glyph)

	return Cell{Rune: ch, FG: glyph, BG: bg, Mean: mean}
}

// channel truncates a mean channel value to an 8-bit level.
func channel(v float64) uint8 {
	return uint8(math.Min(math.Max(v, 0), 255))
}

// toRGBImage returns img as an RGBImage whose bounds start at the origin,
// converting only when needed.
func toRGBImage(img image.Image) *imageutil.RGBImage {
	switch src := img.(type) {
	case *imageutil.RGBImage:
		if src.Bounds().Min == (image.Point{}) {
			return src
		}
	case *image.RGBA:
		if src.Bounds().Min == (image.Point{}) && src.Opaque() {
			return &imageutil.RGBImage{RGBA: src}
		}
	}
	return imageutil.RGBImageFromImage(img)
}

// AtlasStats returns how often a render reused the cached glyph atlas.
func (r *Renderer) AtlasStats() (hits, misses int, hitRate float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := r.atlasHits + r.atlasMisses
	if total == 0 {
		return 0, 0, 0
	}
	return r.atlasHits, r.atlasMisses, float64(r.atlasHits) / float64(total)
}

// WalkTime returns the cumulative time spent sampling and compositing
// blocks.
func (r *Renderer) WalkTime() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.walkTime
}

// ResetStats resets all statistics counters. The cached atlas is kept.
func (r *Renderer) ResetStats() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.atlasHits = 0
	r.atlasMisses = 0
	r.walkTime = 0
}
