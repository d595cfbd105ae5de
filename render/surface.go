package render

import (
	"github.com/gdamore/tcell/v2"
)

// Surface is the drawing capability handed to animation executors.
// It is the full extent of what the animation engine can do to a
// display: executors never touch a terminal, a screen, or each other's
// surfaces. All writes land in cell storage owned by the host; nothing
// here blocks or fails.
type Surface interface {
	// ClearTransparent resets every cell to "no glyph" (rune 0).
	// Distinct from writing spaces: cleared cells let lower layers
	// show through when composited.
	ClearTransparent()

	// WriteText writes text left-to-right starting at x,y in surface
	// coordinates. Cells falling outside the surface are dropped, not
	// reported; partial visibility during a slide is normal operation.
	WriteText(x, y int, text string, style tcell.Style)

	// CompositeFrame overlays a sprite frame anchored at the surface
	// origin. Transparent frame cells leave the surface untouched.
	CompositeFrame(f *Frame)
}
