package script

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/glint/anim"
	"github.com/lixenwraith/glint/easing"
	"github.com/lixenwraith/glint/render"
)

// Build registers the whole scene: acquires every declared layer on the
// compositor, constructs every animation, wires chains in declaration
// order, and adds the remaining animations standalone. The scene is
// validated first so a hand-constructed Scene fails just as loudly as a
// malformed file.
func (s *Scene) Build(eng *anim.Engine, comp *render.Compositor) error {
	if err := s.validate(); err != nil {
		return err
	}

	for _, ld := range s.Layers {
		comp.AcquireLayer(ld.ID, ld.X, ld.Y, ld.Width, ld.Height, ld.Z)
	}

	built := make(map[string]*anim.Animation, len(s.Animations))
	for _, d := range s.Animations {
		layer, _ := comp.Layer(d.Layer)
		a, err := buildAnimation(d, layer)
		if err != nil {
			return err
		}
		built[d.ID] = a
	}

	owned := make(map[string]bool)
	for _, cd := range s.Chains {
		members := make([]*anim.Animation, len(cd.Steps))
		for i, step := range cd.Steps {
			members[i] = built[step]
			owned[step] = true
		}
		eng.AddChain(cd.ID, members, cd.Loop)
	}

	for _, d := range s.Animations {
		if !owned[d.ID] {
			eng.Add(built[d.ID])
		}
	}
	return nil
}

// buildAnimation constructs the declared animation through the factory
// for its kind. The declaration has already passed validation.
func buildAnimation(d AnimationDecl, target render.Surface) (*anim.Animation, error) {
	style, err := parseStyle(d)
	if err != nil {
		return nil, err
	}
	kind, err := anim.ParseKind(d.Kind)
	if err != nil {
		return nil, fmt.Errorf("animation %q: %w", d.ID, err)
	}
	ease, err := easing.ParseKind(d.Easing)
	if err != nil {
		return nil, fmt.Errorf("animation %q: %w", d.ID, err)
	}

	switch kind {
	case anim.Typewriter:
		return anim.NewTypewriter(d.ID, target, d.X, d.Y, d.Text, style, d.Duration, ease), nil
	case anim.Slide:
		return anim.NewSlide(d.ID, target, d.X, d.Y, d.Text, style, d.Duration, ease, d.Speed), nil
	case anim.FadeIn:
		return anim.NewFadeIn(d.ID, target, d.X, d.Y, d.Text, style, d.Duration, ease), nil
	case anim.FadeOut:
		return anim.NewFadeOut(d.ID, target, d.X, d.Y, d.Text, style, d.Duration, ease), nil
	case anim.Wave:
		return anim.NewWave(d.ID, target, d.X, d.Y, d.Text, style, d.Speed, d.Amplitude), nil
	case anim.Rainbow:
		return anim.NewRainbow(d.ID, target, d.X, d.Y, d.Text, style, d.ColorOffset), nil
	case anim.Sprite:
		frames := make([]*render.Frame, len(d.Frames))
		for i, rows := range d.Frames {
			frames[i] = render.NewFrameFromStrings(style, rows...)
		}
		return anim.NewSprite(d.ID, target, frames, d.Speed), nil
	}
	return nil, fmt.Errorf("animation %q: unhandled kind %q", d.ID, d.Kind)
}

// parseStyle builds the base tcell style from the declared hex colors
func parseStyle(d AnimationDecl) (tcell.Style, error) {
	style := tcell.StyleDefault
	if d.Fg != "" {
		col, err := colorful.Hex(d.Fg)
		if err != nil {
			return style, fmt.Errorf("animation %q: bad fg color %q: %w", d.ID, d.Fg, err)
		}
		r, g, b := col.RGB255()
		style = style.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	if d.Bg != "" {
		col, err := colorful.Hex(d.Bg)
		if err != nil {
			return style, fmt.Errorf("animation %q: bad bg color %q: %w", d.ID, d.Bg, err)
		}
		r, g, b := col.RGB255()
		style = style.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	if d.Bold {
		style = style.Bold(true)
	}
	return style, nil
}
