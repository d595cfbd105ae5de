package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is a single terminal cell: one glyph plus its tcell style.
// Rune 0 marks the cell transparent, which compositing skips entirely.
// A written space (Rune ' ') is opaque and paints over lower layers.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Transparent reports whether the cell carries no glyph
func (c Cell) Transparent() bool {
	return c.Rune == 0
}

// Frame is a fixed-size grid of cells, used as one still of a sprite
// animation. Frames are built once and composited read-only afterwards.
type Frame struct {
	width  int
	height int
	cells  []Cell
}

// NewFrame creates a fully transparent frame with the given dimensions
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Frame{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// NewFrameFromStrings builds a frame from rows of string art, all cells
// sharing one style. Width is the widest row in runes; shorter rows are
// padded transparent. Literal spaces become transparent cells so stacked
// sprite frames overlay instead of punching opaque holes.
func NewFrameFromStrings(style tcell.Style, rows ...string) *Frame {
	width := 0
	runeRows := make([][]rune, len(rows))
	for i, row := range rows {
		runeRows[i] = []rune(row)
		if len(runeRows[i]) > width {
			width = len(runeRows[i])
		}
	}
	f := NewFrame(width, len(rows))
	for y, row := range runeRows {
		for x, r := range row {
			if r == ' ' {
				continue
			}
			f.Set(x, y, Cell{Rune: r, Style: style})
		}
	}
	return f
}

// Size returns frame dimensions
func (f *Frame) Size() (int, int) {
	return f.width, f.height
}

// Set writes a cell, dropping out-of-bounds coordinates
func (f *Frame) Set(x, y int, c Cell) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.cells[y*f.width+x] = c
}

// At returns the cell at x,y, or a transparent cell out of bounds
func (f *Frame) At(x, y int) Cell {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Cell{}
	}
	return f.cells[y*f.width+x]
}
