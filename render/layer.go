// @lixen: #focus{render[layer,cell,transparent]}
// @lixen: #interact{state[layer],trigger[composite]}
package render

import (
	"github.com/gdamore/tcell/v2"
)

// Layer is a positioned cell grid implementing Surface. Coordinates
// passed to Surface methods are layer-local; the origin places the
// layer in screen space when the compositor paints it.
type Layer struct {
	id     string
	x, y   int
	width  int
	height int
	z      int
	cells  []Cell
}

// NewLayer creates a transparent layer. Host code normally goes through
// Compositor.AcquireLayer instead of constructing layers directly.
func NewLayer(id string, x, y, width, height, z int) *Layer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Layer{
		id:     id,
		x:      x,
		y:      y,
		width:  width,
		height: height,
		z:      z,
		cells:  make([]Cell, width*height),
	}
}

// ID returns the layer identifier
func (l *Layer) ID() string {
	return l.id
}

// Origin returns the layer position in screen space
func (l *Layer) Origin() (int, int) {
	return l.x, l.y
}

// Move repositions the layer origin in screen space
func (l *Layer) Move(x, y int) {
	l.x = x
	l.y = y
}

// Size returns layer dimensions
func (l *Layer) Size() (int, int) {
	return l.width, l.height
}

// Z returns the layer's paint order, higher painted later
func (l *Layer) Z() int {
	return l.z
}

// inBounds returns true if in layer bounds
func (l *Layer) inBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// ClearTransparent resets all cells to empty using exponential copy
func (l *Layer) ClearTransparent() {
	if len(l.cells) == 0 {
		return
	}
	l.cells[0] = Cell{}
	for filled := 1; filled < len(l.cells); filled *= 2 {
		copy(l.cells[filled:], l.cells[:filled])
	}
}

// WriteText writes runes left-to-right at x,y with one style.
// Out-of-bounds cells are silently dropped.
func (l *Layer) WriteText(x, y int, text string, style tcell.Style) {
	if y < 0 || y >= l.height {
		return
	}
	col := x
	for _, r := range text {
		if col >= l.width {
			break
		}
		if col >= 0 {
			l.cells[y*l.width+col] = Cell{Rune: r, Style: style}
		}
		col++
	}
}

// Fill paints the whole layer with one opaque cell
func (l *Layer) Fill(r rune, style tcell.Style) {
	if len(l.cells) == 0 {
		return
	}
	l.cells[0] = Cell{Rune: r, Style: style}
	for filled := 1; filled < len(l.cells); filled *= 2 {
		copy(l.cells[filled:], l.cells[:filled])
	}
}

// CompositeFrame overlays f anchored at the layer origin. Transparent
// frame cells keep whatever the layer already holds; the part of the
// frame outside the layer is dropped.
func (l *Layer) CompositeFrame(f *Frame) {
	if f == nil {
		return
	}
	fw, fh := f.Size()
	maxY := min(fh, l.height)
	maxX := min(fw, l.width)
	for y := 0; y < maxY; y++ {
		for x := 0; x < maxX; x++ {
			c := f.At(x, y)
			if c.Transparent() {
				continue
			}
			l.cells[y*l.width+x] = c
		}
	}
}

// CellAt returns the cell at layer-local x,y, transparent out of bounds
func (l *Layer) CellAt(x, y int) Cell {
	if !l.inBounds(x, y) {
		return Cell{}
	}
	return l.cells[y*l.width+x]
}
