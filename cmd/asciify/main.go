// Command asciify renders images as ASCII art.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	errorsGo "github.com/go-errors/errors"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

var rootCmd = &cobra.Command{
	Use:   "asciify INPUT [OUTPUT]",
	Short: "render an image as ASCII art",
	Long: `Render an image as ASCII art.

The image is divided into blocks and every block is replaced by a character
whose brightness matches it. The result is written as an image to OUTPUT,
whose extension selects the format (png, jpg, gif, tif, bmp), and/or printed
to stdout with --text or --ansi.`,
	Args:         cobra.RangeArgs(1, 2),
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return convert(cmd.Context(), args) })
	},
}

var (
	debug   bool
	verbose bool
	flags   options
)

func init() {
	fs := rootCmd.Flags()
	fs.StringVar(&flags.charset, `charset`, img2ascii.English, `characters ordered from darkest to brightest`)
	fs.StringVar(&flags.block, `block`, img2ascii.DefaultBlockSize.String(), `block size in pixels as WxH`)
	fs.BoolVar(&flags.dark, `dark`, false, `white glyphs on black instead of black on white`)
	fs.BoolVar(&flags.color, `color`, false, `fill every cell with its mean color`)
	fs.StringVar(&flags.font, `font`, ``, `TrueType font file (default: embedded Go Mono)`)
	fs.StringVar(&flags.glyphColor, `glyph-color`, ``, `glyph color as RRGGBB`)
	fs.IntVar(&flags.workers, `workers`, 1, `goroutines walking the block grid, 0 for one per CPU`)
	fs.IntVar(&flags.width, `width`, 0, `scale the input to this pixel width first`)
	fs.StringVar(&flags.filter, `filter`, `none`, `pre-filter the input: none, sharpen or blur`)
	fs.BoolVar(&flags.text, `text`, false, `print the character grid to stdout`)
	fs.BoolVar(&flags.ansi, `ansi`, false, `print the character grid with terminal colors to stdout`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, `verbose`, `v`, false, `log pipeline steps to stderr`)
	rootCmd.PersistentFlags().BoolVar(&debug, `debug`, false, `debug errors`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(fn func() error) {
	if fn == nil {
		fn = func() error { return errorsGo.New(`nil function`) }
	}
	err := fn()
	if err == nil {
		return
	}
	if stackFramer, ok := err.(interface{ ErrorStack() string }); debug && ok {
		fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
	} else {
		fmt.Fprintln(os.Stderr, `asciify:`, err)
	}
	os.Exit(1)
}

func convert(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(args) < 2 && !flags.text && !flags.ansi {
		return errorsGo.New(`no OUTPUT given and neither --text nor --ansi set`)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts, err := flags.rendererOptions()
	if err != nil {
		return errorsGo.Wrap(err, 0)
	}
	r := img2ascii.NewRenderer(append(opts, img2ascii.WithLogger(logger))...)

	var res *img2ascii.Result
	if len(args) == 2 {
		res, err = r.RenderFileContext(ctx, args[0], args[1])
	} else {
		src, loadErr := imageutil.LoadImage(args[0])
		if loadErr != nil {
			return errorsGo.Wrap(&img2ascii.DecodeError{Path: args[0], Err: loadErr}, 0)
		}
		res, err = r.RenderContext(ctx, src)
	}
	if err != nil {
		return errorsGo.Wrap(err, 0)
	}
	logger.Debug(`rendered`, `cols`, res.Plan.Cols, `rows`, res.Plan.Rows)

	switch {
	case flags.ansi:
		err = res.WriteANSI(os.Stdout, termenv.EnvColorProfile())
	case flags.text:
		_, err = fmt.Fprint(os.Stdout, res.Text())
	}
	if err != nil {
		return errorsGo.Wrap(err, 0)
	}
	return nil
}
