package img2ascii

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/img2ascii/imageutil"
)

func testResult() *Result {
	red := imageutil.RGB{R: 255}
	return &Result{
		Plan: Plan{Cols: 3, Rows: 2, Block: DefaultBlockSize},
		Cells: [][]Cell{
			{
				{Rune: 'A', FG: imageutil.Black, BG: red},
				{Rune: 'B', FG: imageutil.Black, BG: red},
				{Rune: 'é', FG: imageutil.Black, BG: imageutil.White},
			},
			{
				{Rune: 'x', FG: imageutil.White, BG: imageutil.Black},
				{Rune: 'y', FG: imageutil.White, BG: imageutil.Black},
				{Rune: 'z', FG: imageutil.White, BG: imageutil.Black},
			},
		},
	}
}

func TestResultText(t *testing.T) {
	assert.Equal(t, "ABé\nxyz\n", testResult().Text())
}

func TestResultWriteANSIAscii(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testResult().WriteANSI(&buf, termenv.Ascii))
	assert.Equal(t, testResult().Text(), buf.String())
}

func TestResultWriteANSITrueColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testResult().WriteANSI(&buf, termenv.TrueColor))
	out := buf.String()

	// Runs: "AB", "é" and "xyz"
	assert.Equal(t, 3, strings.Count(out, "\x1b[0m"), out)
	assert.Contains(t, out, "38;2;0;0;0")
	assert.Contains(t, out, "48;2;255;0;0")
	assert.Contains(t, out, "AB")
	assert.Contains(t, out, "xyz")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}
