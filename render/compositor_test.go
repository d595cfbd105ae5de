package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestCompositorZOrder(t *testing.T) {
	c := NewCompositor()
	back := c.AcquireLayer("back", 0, 0, 4, 1, 0)
	front := c.AcquireLayer("front", 0, 0, 4, 1, 10)

	back.WriteText(0, 0, "bbbb", tcell.StyleDefault)
	front.WriteText(0, 0, "f", tcell.StyleDefault)

	cell, ok := c.CellAt(0, 0)
	if !ok || cell.Rune != 'f' {
		t.Errorf("Expected front layer to win at (0,0), got %q ok=%v", cell.Rune, ok)
	}
	// Front is transparent past its text, back shows through
	cell, ok = c.CellAt(1, 0)
	if !ok || cell.Rune != 'b' {
		t.Errorf("Expected back layer at (1,0), got %q ok=%v", cell.Rune, ok)
	}
}

func TestCompositorEqualZInsertionOrder(t *testing.T) {
	c := NewCompositor()
	first := c.AcquireLayer("first", 0, 0, 2, 1, 5)
	second := c.AcquireLayer("second", 0, 0, 2, 1, 5)

	first.WriteText(0, 0, "1", tcell.StyleDefault)
	second.WriteText(0, 0, "2", tcell.StyleDefault)

	// Later acquisition paints later at equal z
	cell, ok := c.CellAt(0, 0)
	if !ok || cell.Rune != '2' {
		t.Errorf("Expected later layer to win at equal z, got %q ok=%v", cell.Rune, ok)
	}
}

func TestCompositorLayerOffset(t *testing.T) {
	c := NewCompositor()
	l := c.AcquireLayer("off", 3, 2, 4, 2, 0)
	l.WriteText(0, 0, "x", tcell.StyleDefault)

	if _, ok := c.CellAt(0, 0); ok {
		t.Error("Expected nothing at screen (0,0) for offset layer")
	}
	cell, ok := c.CellAt(3, 2)
	if !ok || cell.Rune != 'x' {
		t.Errorf("Expected 'x' at screen (3,2), got %q ok=%v", cell.Rune, ok)
	}
}

func TestCompositorReacquireReplaces(t *testing.T) {
	c := NewCompositor()
	old := c.AcquireLayer("hud", 0, 0, 4, 1, 0)
	old.WriteText(0, 0, "old", tcell.StyleDefault)

	fresh := c.AcquireLayer("hud", 0, 0, 4, 1, 0)
	if c.Len() != 1 {
		t.Fatalf("Expected 1 layer after re-acquire, got %d", c.Len())
	}
	if got, _ := c.Layer("hud"); got != fresh {
		t.Error("Expected lookup to return the fresh layer")
	}
	if _, ok := c.CellAt(0, 0); ok {
		t.Error("Expected fresh layer to start transparent")
	}
}

func TestCompositorRelease(t *testing.T) {
	c := NewCompositor()
	c.AcquireLayer("a", 0, 0, 2, 2, 0)
	c.AcquireLayer("b", 0, 0, 2, 2, 1)

	c.ReleaseLayer("a")
	if c.Len() != 1 {
		t.Fatalf("Expected 1 layer after release, got %d", c.Len())
	}
	if _, ok := c.Layer("a"); ok {
		t.Error("Expected released layer to be gone")
	}

	// Releasing unknown ids is a no-op
	c.ReleaseLayer("a")
	c.ReleaseLayer("never-existed")
	if c.Len() != 1 {
		t.Errorf("Expected release of unknown id to change nothing, got %d layers", c.Len())
	}
}

func TestCompositeToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.Init()
	defer screen.Fini()
	screen.SetSize(10, 4)

	c := NewCompositor()
	back := c.AcquireLayer("back", 0, 0, 10, 4, 0)
	front := c.AcquireLayer("front", 2, 1, 4, 1, 5)
	back.Fill('.', tcell.StyleDefault)
	front.WriteText(0, 0, "hi", tcell.StyleDefault)

	c.CompositeTo(screen)
	screen.Show()

	cells, w, _ := screen.GetContents()
	if got := cells[1*w+2].Runes[0]; got != 'h' {
		t.Errorf("Expected 'h' at screen (2,1), got %q", got)
	}
	if got := cells[0].Runes[0]; got != '.' {
		t.Errorf("Expected back fill at screen (0,0), got %q", got)
	}
	// Transparent front cells leave the back layer visible
	if got := cells[1*w+6].Runes[0]; got != '.' {
		t.Errorf("Expected back fill at screen (6,1), got %q", got)
	}
}
