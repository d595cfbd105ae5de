// @lixen: #dev{base(render),feature[scene(script,render)]}
package render

import (
	"github.com/gdamore/tcell/v2"
)

type layerEntry struct {
	layer *Layer
	index int // acquisition order for stable sort
}

// Compositor owns the layer stack and paints it onto a tcell screen.
// Layers are kept sorted by z then acquisition order, so equal-z layers
// paint in the order they were acquired.
type Compositor struct {
	layers   []layerEntry
	byID     map[string]*Layer
	acqCount int
}

// NewCompositor creates an empty compositor
func NewCompositor() *Compositor {
	return &Compositor{
		layers: make([]layerEntry, 0, 16),
		byID:   make(map[string]*Layer),
	}
}

// AcquireLayer creates a layer and inserts it into the stack.
// Re-acquiring an existing id releases the old layer first, so the
// caller always gets a fresh transparent surface back.
func (c *Compositor) AcquireLayer(id string, x, y, width, height, z int) *Layer {
	if _, exists := c.byID[id]; exists {
		c.ReleaseLayer(id)
	}

	l := NewLayer(id, x, y, width, height, z)
	entry := layerEntry{
		layer: l,
		index: c.acqCount,
	}
	c.acqCount++

	// Insertion sort: find position and insert
	pos := len(c.layers)
	for i, e := range c.layers {
		if l.z < e.layer.z || (l.z == e.layer.z && entry.index < e.index) {
			pos = i
			break
		}
	}

	c.layers = append(c.layers, layerEntry{})
	copy(c.layers[pos+1:], c.layers[pos:])
	c.layers[pos] = entry

	c.byID[id] = l
	return l
}

// ReleaseLayer removes a layer from the stack. Unknown ids are a no-op,
// which lets it back the engine's surface-release hook directly.
func (c *Compositor) ReleaseLayer(id string) {
	l, exists := c.byID[id]
	if !exists {
		return
	}
	delete(c.byID, id)
	for i, e := range c.layers {
		if e.layer == l {
			c.layers = append(c.layers[:i], c.layers[i+1:]...)
			return
		}
	}
}

// Layer returns the layer registered under id
func (c *Compositor) Layer(id string) (*Layer, bool) {
	l, ok := c.byID[id]
	return l, ok
}

// Len returns the number of acquired layers
func (c *Compositor) Len() int {
	return len(c.layers)
}

// CompositeTo paints all layers bottom-up onto the screen. Transparent
// cells are skipped so lower layers and the screen default show through.
func (c *Compositor) CompositeTo(screen tcell.Screen) {
	for _, e := range c.layers {
		l := e.layer
		for y := 0; y < l.height; y++ {
			rowBase := y * l.width
			for x := 0; x < l.width; x++ {
				cell := l.cells[rowBase+x]
				if cell.Transparent() {
					continue
				}
				screen.SetContent(l.x+x, l.y+y, cell.Rune, nil, cell.Style)
			}
		}
	}
}

// CellAt resolves the visible cell at screen coordinates: the topmost
// non-transparent cell across the stack. ok is false when every layer
// is transparent there. Used by tests and tooling, not the paint path.
func (c *Compositor) CellAt(x, y int) (Cell, bool) {
	for i := len(c.layers) - 1; i >= 0; i-- {
		l := c.layers[i].layer
		cell := l.CellAt(x-l.x, y-l.y)
		if !cell.Transparent() {
			return cell, true
		}
	}
	return Cell{}, false
}
