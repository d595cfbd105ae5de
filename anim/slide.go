package anim

import (
	"math"
)

// updateSlide writes the text offset from its anchor by the remaining
// fraction of the slide distance, settling on the anchor at completion.
// Positive Speed enters from the left, negative from the right.
func updateSlide(a *Animation, dt float64) {
	a.Elapsed += dt

	if a.Duration <= 0 {
		a.Target.ClearTransparent()
		a.Target.WriteText(a.X, a.Y, a.Text, a.Style)
		a.State = Finished
		return
	}

	p := progress(a)
	offset := int(math.Round((1 - p) * a.Speed))

	a.Target.ClearTransparent()
	a.Target.WriteText(a.X-offset, a.Y, a.Text, a.Style)

	if p >= 1 {
		a.State = Finished
	}
}
