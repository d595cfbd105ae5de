package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestWriteTextOpaqueSpace(t *testing.T) {
	l := NewLayer("test", 0, 0, 10, 3, 0)
	l.WriteText(0, 1, "a b", tcell.StyleDefault)

	if got := l.CellAt(0, 1).Rune; got != 'a' {
		t.Errorf("Expected 'a' at (0,1), got %q", got)
	}
	if got := l.CellAt(1, 1); got.Transparent() {
		t.Error("Expected written space to be opaque, got transparent cell")
	}
	if got := l.CellAt(1, 1).Rune; got != ' ' {
		t.Errorf("Expected ' ' at (1,1), got %q", got)
	}
	// Never written: transparent, not space
	if got := l.CellAt(3, 1); !got.Transparent() {
		t.Errorf("Expected untouched cell to be transparent, got %q", got.Rune)
	}
}

func TestWriteTextClipping(t *testing.T) {
	l := NewLayer("test", 0, 0, 5, 2, 0)

	// Partially off the left edge
	l.WriteText(-2, 0, "hello", tcell.StyleDefault)
	if got := l.CellAt(0, 0).Rune; got != 'l' {
		t.Errorf("Expected 'l' at (0,0) after left clip, got %q", got)
	}

	// Partially off the right edge
	l.WriteText(3, 1, "hello", tcell.StyleDefault)
	if got := l.CellAt(3, 1).Rune; got != 'h' {
		t.Errorf("Expected 'h' at (3,1), got %q", got)
	}
	if got := l.CellAt(4, 1).Rune; got != 'e' {
		t.Errorf("Expected 'e' at (4,1), got %q", got)
	}

	// Entirely out of bounds rows must not panic or write
	l.WriteText(0, -1, "x", tcell.StyleDefault)
	l.WriteText(0, 2, "x", tcell.StyleDefault)
	l.WriteText(99, 0, "x", tcell.StyleDefault)
}

func TestWriteTextRunes(t *testing.T) {
	l := NewLayer("test", 0, 0, 10, 1, 0)
	l.WriteText(0, 0, "héllo", tcell.StyleDefault)

	if got := l.CellAt(1, 0).Rune; got != 'é' {
		t.Errorf("Expected 'é' at (1,0), got %q", got)
	}
	if got := l.CellAt(2, 0).Rune; got != 'l' {
		t.Errorf("Expected 'l' at (2,0), got %q", got)
	}
}

func TestClearTransparent(t *testing.T) {
	l := NewLayer("test", 0, 0, 8, 4, 0)
	l.Fill('#', tcell.StyleDefault)

	l.ClearTransparent()

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if !l.CellAt(x, y).Transparent() {
				t.Fatalf("Expected transparent cell at (%d,%d) after clear", x, y)
			}
		}
	}
}

func TestFill(t *testing.T) {
	l := NewLayer("test", 0, 0, 3, 3, 0)
	style := tcell.StyleDefault.Background(tcell.ColorNavy)
	l.Fill('.', style)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			c := l.CellAt(x, y)
			if c.Rune != '.' || c.Style != style {
				t.Fatalf("Expected filled cell at (%d,%d), got %+v", x, y, c)
			}
		}
	}
}

func TestCompositeFrameOverlay(t *testing.T) {
	l := NewLayer("test", 0, 0, 4, 2, 0)
	l.WriteText(0, 0, "abcd", tcell.StyleDefault)

	f := NewFrame(4, 2)
	f.Set(1, 0, Cell{Rune: 'X', Style: tcell.StyleDefault})
	f.Set(0, 1, Cell{Rune: 'Y', Style: tcell.StyleDefault})
	l.CompositeFrame(f)

	// Opaque frame cells replace, transparent ones leave the layer alone
	if got := l.CellAt(0, 0).Rune; got != 'a' {
		t.Errorf("Expected 'a' preserved at (0,0), got %q", got)
	}
	if got := l.CellAt(1, 0).Rune; got != 'X' {
		t.Errorf("Expected 'X' at (1,0), got %q", got)
	}
	if got := l.CellAt(0, 1).Rune; got != 'Y' {
		t.Errorf("Expected 'Y' at (0,1), got %q", got)
	}
}

func TestCompositeFrameClipsToLayer(t *testing.T) {
	l := NewLayer("test", 0, 0, 2, 2, 0)
	f := NewFrame(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			f.Set(x, y, Cell{Rune: '*'})
		}
	}

	l.CompositeFrame(f)

	if got := l.CellAt(1, 1).Rune; got != '*' {
		t.Errorf("Expected '*' at (1,1), got %q", got)
	}
	// Larger frame must not panic; out-of-layer cells are dropped
	l.CompositeFrame(nil)
}

func TestNewFrameFromStrings(t *testing.T) {
	f := NewFrameFromStrings(tcell.StyleDefault,
		"<o>",
		" | ",
		"/",
	)

	w, h := f.Size()
	if w != 3 || h != 3 {
		t.Fatalf("Expected 3x3 frame, got %dx%d", w, h)
	}
	if got := f.At(1, 0).Rune; got != 'o' {
		t.Errorf("Expected 'o' at (1,0), got %q", got)
	}
	// Literal spaces and padding are transparent
	if !f.At(0, 1).Transparent() {
		t.Error("Expected space cell to be transparent")
	}
	if !f.At(2, 2).Transparent() {
		t.Error("Expected padded cell to be transparent")
	}
	if got := f.At(0, 2).Rune; got != '/' {
		t.Errorf("Expected '/' at (0,2), got %q", got)
	}
}

func TestFrameBounds(t *testing.T) {
	f := NewFrame(2, 2)
	f.Set(-1, 0, Cell{Rune: 'x'})
	f.Set(0, 5, Cell{Rune: 'x'})

	if !f.At(-1, 0).Transparent() || !f.At(0, 5).Transparent() {
		t.Error("Expected out-of-bounds reads to return transparent cells")
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if !f.At(x, y).Transparent() {
				t.Errorf("Expected out-of-bounds writes to be dropped, found cell at (%d,%d)", x, y)
			}
		}
	}
}
