package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

// options holds the raw command line flags.
type options struct {
	charset    string
	block      string
	dark       bool
	color      bool
	font       string
	glyphColor string
	workers    int
	width      int
	filter     string
	text       bool
	ansi       bool
}

func (o options) rendererOptions() ([]img2ascii.RendererOption, error) {
	charset, err := img2ascii.NewCharacterSet(o.charset)
	if err != nil {
		return nil, err
	}
	block, err := parseBlockSize(o.block)
	if err != nil {
		return nil, err
	}

	filter, err := imageutil.ParseFilter(o.filter)
	if err != nil {
		return nil, err
	}

	opts := []img2ascii.RendererOption{
		img2ascii.WithCharset(charset),
		img2ascii.WithBlockSize(block.Width, block.Height),
		img2ascii.WithDarkMode(o.dark),
		img2ascii.WithWorkers(o.workers),
		img2ascii.WithTargetWidth(o.width),
		img2ascii.WithPrefilter(filter),
	}
	if o.color {
		opts = append(opts, img2ascii.WithMode(img2ascii.ModeColorful))
	}
	if o.font != `` {
		opts = append(opts, img2ascii.WithFontFile(o.font))
	}
	if o.glyphColor != `` {
		c, err := parseRGB(o.glyphColor)
		if err != nil {
			return nil, err
		}
		opts = append(opts, img2ascii.WithGlyphColor(c))
	}
	return opts, nil
}

// parseBlockSize parses "WxH", or a single number for square blocks.
func parseBlockSize(s string) (img2ascii.BlockSize, error) {
	ws, hs, found := strings.Cut(strings.ToLower(strings.TrimSpace(s)), `x`)
	if !found {
		hs = ws
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil {
		return img2ascii.BlockSize{}, fmt.Errorf(`block size %q is not "<w>x<h>"`, s)
	}
	b := img2ascii.BlockSize{Width: w, Height: h}
	if err := b.Validate(); err != nil {
		return img2ascii.BlockSize{}, err
	}
	return b, nil
}

// parseRGB parses a hex color as RRGGBB, with or without a leading '#'.
func parseRGB(s string) (imageutil.RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), `#`)
	if len(hex) != 6 {
		return imageutil.RGB{}, fmt.Errorf(`color %q is not RRGGBB`, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return imageutil.RGB{}, fmt.Errorf(`color %q is not RRGGBB: %w`, s, err)
	}
	return imageutil.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
