package anim

import (
	"github.com/lixenwraith/glint/render"
)

// updateFadeIn scales the foreground up from black toward the base
// style. The text occupies the same cells every frame, so each write
// fully replaces the previous one without clearing.
func updateFadeIn(a *Animation, dt float64) {
	a.Elapsed += dt

	if a.Duration <= 0 {
		a.Target.WriteText(a.X, a.Y, a.Text, a.Style)
		a.State = Finished
		return
	}

	p := progress(a)
	a.Target.WriteText(a.X, a.Y, a.Text, render.ScaleFg(a.Style, p))

	if p >= 1 {
		a.State = Finished
	}
}

// updateFadeOut scales the foreground down from the base style and
// clears the target once fully dark, so a finished fade-out leaves no
// black-on-black text behind.
func updateFadeOut(a *Animation, dt float64) {
	a.Elapsed += dt

	if a.Duration <= 0 {
		a.Target.ClearTransparent()
		a.State = Finished
		return
	}

	inv := 1 - progress(a)
	if inv <= 0 {
		a.Target.ClearTransparent()
		a.State = Finished
		return
	}

	a.Target.WriteText(a.X, a.Y, a.Text, render.ScaleFg(a.Style, inv))
}
