// @lixen: #focus{lifecycle[animation,effect,factory]}
// @lixen: #interact{state[animation]}
package anim

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glint/easing"
	"github.com/lixenwraith/glint/render"
)

// Kind identifies the effect an animation runs. The set is closed:
// executor dispatch switches exhaustively over it.
type Kind uint8

const (
	Typewriter Kind = iota
	Slide
	FadeIn
	FadeOut
	Wave
	Rainbow
	Sprite
)

// String returns the script name of the kind
func (k Kind) String() string {
	switch k {
	case Typewriter:
		return "typewriter"
	case Slide:
		return "slide"
	case FadeIn:
		return "fade-in"
	case FadeOut:
		return "fade-out"
	case Wave:
		return "wave"
	case Rainbow:
		return "rainbow"
	case Sprite:
		return "sprite"
	default:
		return "unknown"
	}
}

// ParseKind resolves a script name to a Kind
func ParseKind(name string) (Kind, error) {
	switch name {
	case "typewriter":
		return Typewriter, nil
	case "slide":
		return Slide, nil
	case "fade-in":
		return FadeIn, nil
	case "fade-out":
		return FadeOut, nil
	case "wave":
		return Wave, nil
	case "rainbow":
		return Rainbow, nil
	case "sprite":
		return Sprite, nil
	}
	return Typewriter, fmt.Errorf("unknown animation kind %q", name)
}

// State is the animation lifecycle state. Transitions are one-way per
// run; only a looping chain resets a member back to Running.
type State uint8

const (
	Running State = iota
	Finished
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Animation is one live visual effect with its own timeline and target.
// Fields are exported for host inspection; while an animation belongs to
// a chain (ChainID non-empty), Active and State are driven by the chain
// and must not be flipped by the caller.
type Animation struct {
	ID     string
	Kind   Kind
	Target render.Surface // exclusively written while active

	Duration float64 // seconds; <= 0 means instant for bounded kinds
	Elapsed  float64 // accumulated seconds; Sprite resets it per frame cycle
	State    State

	X, Y   int // anchor on the target surface
	Text   string
	Style  tcell.Style // base style; fades scale it, rainbow recolors it
	Easing easing.Kind

	// Kind-specific parameters
	Speed       float64 // slide distance in columns, wave angular rate, sprite seconds per frame
	Amplitude   float64 // wave vertical swing in cells
	ColorOffset float64 // rainbow phase rate
	Frames      []*render.Frame
	FrameIndex  int

	Active  bool
	ChainID string // empty for standalone animations
}

// NewTypewriter reveals text one rune at a time over duration seconds
func NewTypewriter(id string, target render.Surface, x, y int, text string, style tcell.Style, duration float64, ease easing.Kind) *Animation {
	return &Animation{
		ID:       id,
		Kind:     Typewriter,
		Target:   target,
		Duration: duration,
		X:        x,
		Y:        y,
		Text:     text,
		Style:    style,
		Easing:   ease,
	}
}

// NewSlide moves text in from distance columns left of the anchor,
// settling on the anchor as progress completes. Negative distance
// slides in from the right.
func NewSlide(id string, target render.Surface, x, y int, text string, style tcell.Style, duration float64, ease easing.Kind, distance float64) *Animation {
	return &Animation{
		ID:       id,
		Kind:     Slide,
		Target:   target,
		Duration: duration,
		X:        x,
		Y:        y,
		Text:     text,
		Style:    style,
		Easing:   ease,
		Speed:    distance,
	}
}

// NewFadeIn brightens text from black to its base foreground
func NewFadeIn(id string, target render.Surface, x, y int, text string, style tcell.Style, duration float64, ease easing.Kind) *Animation {
	return &Animation{
		ID:       id,
		Kind:     FadeIn,
		Target:   target,
		Duration: duration,
		X:        x,
		Y:        y,
		Text:     text,
		Style:    style,
		Easing:   ease,
	}
}

// NewFadeOut dims text from its base foreground to cleared
func NewFadeOut(id string, target render.Surface, x, y int, text string, style tcell.Style, duration float64, ease easing.Kind) *Animation {
	return &Animation{
		ID:       id,
		Kind:     FadeOut,
		Target:   target,
		Duration: duration,
		X:        x,
		Y:        y,
		Text:     text,
		Style:    style,
		Easing:   ease,
	}
}

// NewWave oscillates each rune vertically, phase-shifted along the text.
// Runs until removed; speed is the angular rate, amplitude the swing in
// cells.
func NewWave(id string, target render.Surface, x, y int, text string, style tcell.Style, speed, amplitude float64) *Animation {
	return &Animation{
		ID:        id,
		Kind:      Wave,
		Target:    target,
		X:         x,
		Y:         y,
		Text:      text,
		Style:     style,
		Speed:     speed,
		Amplitude: amplitude,
	}
}

// NewRainbow cycles per-rune foreground hues along the text. Runs until
// removed; colorOffset is the phase rate in radians per second.
func NewRainbow(id string, target render.Surface, x, y int, text string, style tcell.Style, colorOffset float64) *Animation {
	return &Animation{
		ID:          id,
		Kind:        Rainbow,
		Target:      target,
		X:           x,
		Y:           y,
		Text:        text,
		Style:       style,
		ColorOffset: colorOffset,
	}
}

// NewSprite cycles pre-built frames onto the target every secsPerFrame
// seconds. Runs until removed; an empty frame set finishes immediately.
func NewSprite(id string, target render.Surface, frames []*render.Frame, secsPerFrame float64) *Animation {
	return &Animation{
		ID:     id,
		Kind:   Sprite,
		Target: target,
		Frames: frames,
		Speed:  secsPerFrame,
	}
}
